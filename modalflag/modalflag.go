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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes provides a convenient way of handling command line arguments that are
// divided into program modes. The Output field should be specified before
// calling Parse() or you will not see any help messages.
type Modes struct {
	// where to print output (help messages etc). defaults to io.Discard
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. argsIdx
	// advances past a recognised sub-mode argument
	args    []string
	argsIdx int

	// the list of sub-modes specified with AddSubModes(). the first entry is
	// the default
	subModes []string

	// the mode found during the most recent call to Parse()
	mode string
}

// Mode returns the mode found by the most recent call to Parse(). The empty
// string if no sub-modes were defined.
func (md *Modes) Mode() string {
	return md.mode
}

// NewArgs initialises the Modes instance with a list of arguments (from the
// command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.newFlagset()
}

// NewMode prepares the Modes instance for parsing the flags of the sub-mode
// found by the previous call to Parse().
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.mode = ""
	md.newFlagset()
}

func (md *Modes) newFlagset() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes adds to the list of sub-modes recognised by the next call to
// Parse(). The first sub-mode added is the default. Sub-mode comparison is
// case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were defined then
	// the Mode() function says which one was found.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the current layer of arguments. Help requests are serviced by the
// function itself; the ParseHelp return value indicates that nothing more
// needs to be printed.
func (md *Modes) Parse() (ParseResult, error) {
	if md.Output == nil {
		md.Output = io.Discard
	}

	md.flags.SetOutput(md.Output)
	md.flags.Usage = func() {
		if len(md.subModes) > 0 {
			fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
			fmt.Fprintf(md.Output, "  default: %s\n\n", md.subModes[0])
		}
		fmt.Fprintln(md.Output, "available flags:")
		md.flags.PrintDefaults()
	}

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		// assume the default sub-mode until the first argument says otherwise
		md.mode = md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				md.mode = arg
				md.argsIdx += md.numFlagArgs() + 1
				break // for loop
			}
		}
	}

	return ParseContinue, nil
}

// the number of arguments consumed as flags by the current flagset.
func (md *Modes) numFlagArgs() int {
	return len(md.args) - md.argsIdx - md.flags.NArg()
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that aren't flags or a recognised sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or a recognised
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}
