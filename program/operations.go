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

package program

import "fmt"

// OpKind distinguishes the primitive operations a block can perform.
type OpKind int

// List of primitive operations.
const (
	// move the head towards the start of the tape
	ShiftLeft OpKind = iota

	// move the head towards the end of the tape
	ShiftRight

	// set the bit under the head
	Set

	// clear the bit under the head
	Clear

	// read one bit from the input stream and write it under the head
	Input

	// write the bit under the head to the output stream
	Output

	// log the machine state. compiled from the '!' statement
	Debug
)

// Operation is one primitive operation in a block. The Bits field is only
// meaningful for the ShiftLeft and ShiftRight kinds.
type Operation struct {
	Kind OpKind
	Bits uint64
}

// String returns the operation in source form.
func (op Operation) String() string {
	switch op.Kind {
	case ShiftLeft:
		if op.Bits == 1 {
			return "<"
		}
		return fmt.Sprintf("< (x%d)", op.Bits)
	case ShiftRight:
		if op.Bits == 1 {
			return ">"
		}
		return fmt.Sprintf("> (x%d)", op.Bits)
	case Set:
		return "+"
	case Clear:
		return "-"
	case Input:
		return ","
	case Output:
		return "."
	case Debug:
		return "!"
	}
	return fmt.Sprintf("unknown operation (%d)", op.Kind)
}

// TerminatorKind distinguishes the ways a block can end. There is no implicit
// fallthrough between blocks; every block ends in exactly one terminator.
type TerminatorKind int

// List of block terminators.
const (
	// unconditional transfer to another block
	Jump TerminatorKind = iota

	// transfer to one of two blocks depending on the bit under the head
	Branch

	// stop the machine
	Halt
)

// Terminator is the explicit exit of a block. The To field is used by the
// Jump kind; True and False by the Branch kind.
type Terminator struct {
	Kind TerminatorKind

	To Label

	True  Label
	False Label
}

// String returns the terminator in source form.
func (tm Terminator) String() string {
	switch tm.Kind {
	case Jump:
		return fmt.Sprintf("jmp %s", tm.To)
	case Branch:
		return fmt.Sprintf("jmp %s, %s", tm.True, tm.False)
	case Halt:
		return "halt"
	}
	return fmt.Sprintf("unknown terminator (%d)", tm.Kind)
}
