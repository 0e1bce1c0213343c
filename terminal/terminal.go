// This file is part of Wmach.
//
// Wmach is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wmach is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wmach.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal switches a terminal into raw mode for the duration of an
// interactive run. In raw mode every byte typed reaches the machine's input
// immediately, without line buffering and without echo, which is what a
// program consuming its input bit by bit wants.
//
// Wraps "github.com/pkg/term/termios". A file that is not attached to a
// terminal is left untouched and Restore() is a no-op for it.
package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/wmach/wmach/curated"
)

// Error pattern for errors generated by the terminal package.
const TerminalError = "terminal: %v"

// RawInput records the state needed to restore a terminal that has been
// switched into raw mode.
type RawInput struct {
	input *os.File
	saved unix.Termios

	// whether the terminal attributes have actually been changed
	active bool
}

// NewRawInput switches the terminal attached to the input file into raw
// mode. The caller must arrange for Restore() to run before the process
// exits or the user's shell will be left in raw mode too.
func NewRawInput(input *os.File) (*RawInput, error) {
	rt := &RawInput{input: input}

	info, err := input.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		// not a terminal. nothing to do, now or at Restore() time
		return rt, nil
	}

	if err := termios.Tcgetattr(input.Fd(), &rt.saved); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	raw := rt.saved
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(input.Fd(), termios.TCSANOW, &raw); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	rt.active = true

	return rt, nil
}

// Restore the terminal attributes saved by NewRawInput().
func (rt *RawInput) Restore() error {
	if !rt.active {
		return nil
	}
	rt.active = false

	if err := termios.Tcsetattr(rt.input.Fd(), termios.TCSANOW, &rt.saved); err != nil {
		return curated.Errorf(TerminalError, err)
	}

	return nil
}
