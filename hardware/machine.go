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

package hardware

import (
	"io"

	"github.com/wmach/wmach/hardware/bitio"
	"github.com/wmach/wmach/hardware/tape"
	"github.com/wmach/wmach/program"
)

// Error patterns for errors generated by the hardware package.
const (
	NoProgram    = "machine: no program attached"
	UnknownLabel = "machine: no block with label '%s'"
)

// Machine is the context a program executes against: one tape and one pair
// of bit streams. A Machine belongs to exactly one program run at a time and
// must never be shared between concurrent runs - create a new Machine (with
// its own backing storage and streams) for every concurrent program.
type Machine struct {
	Tape *tape.Tape
	IO   *bitio.IO

	prog *program.Program

	// the label of the block the machine will execute next
	current program.Label
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The backing storage for the tape is supplied by the caller, pre-allocated
// and zeroed; input and output are the byte streams the program's bit I/O
// operates on.
func NewMachine(memory []tape.Cell, input io.Reader, output io.Writer) (*Machine, error) {
	tp, err := tape.NewTape(memory)
	if err != nil {
		return nil, err
	}

	return &Machine{
		Tape: tp,
		IO:   bitio.NewIO(input, output),
	}, nil
}

// Attach a program to the machine, making it ready to Run(). The program is
// validated before it is accepted.
func (mach *Machine) Attach(prog *program.Program) error {
	if err := prog.Validate(); err != nil {
		return err
	}

	mach.prog = prog
	mach.current = prog.Entry()

	return nil
}

// Current returns the label of the block the machine will execute next.
func (mach *Machine) Current() program.Label {
	return mach.current
}

// halt commits the observable results of the run: trailing output bits are
// drained (zero padded) and the tape cache is flushed to backing storage.
func (mach *Machine) halt() error {
	if err := mach.IO.Drain(); err != nil {
		return err
	}
	mach.Tape.Flush()
	return nil
}
