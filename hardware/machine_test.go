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

package hardware_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wmach/wmach/compiler"
	"github.com/wmach/wmach/hardware"
	"github.com/wmach/wmach/hardware/bitio"
	"github.com/wmach/wmach/hardware/tape"
	"github.com/wmach/wmach/program"
	"github.com/wmach/wmach/test"
)

// newTestMachine compiles the source and attaches it to a fresh machine with
// the supplied backing storage and streams.
func newTestMachine(t *testing.T, src string, memory []tape.Cell, input []byte, output *bytes.Buffer) *hardware.Machine {
	t.Helper()

	mach, err := hardware.NewMachine(memory, bytes.NewReader(input), output)
	test.ExpectSuccess(t, err)

	prog, err := compiler.Compile(src)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mach.Attach(prog))

	return mach
}

func TestNoProgram(t *testing.T) {
	mach, err := hardware.NewMachine(make([]tape.Cell, 2), &bytes.Buffer{}, &bytes.Buffer{})
	test.ExpectSuccess(t, err)

	err = mach.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, hardware.NoProgram)
}

// a branch whose targets both lead to a halt exits cleanly with the tape
// untouched, whichever way the bit under the head sends it.
func TestBranchBothTargetsHalt(t *testing.T) {
	backing := make([]tape.Cell, 2)
	out := &bytes.Buffer{}
	mach := newTestMachine(t, "jmp end, end end:", backing, nil, out)

	test.ExpectSuccess(t, mach.Run(nil))

	test.ExpectEquality(t, backing[0], tape.Cell(0))
	test.ExpectEquality(t, backing[1], tape.Cell(0))
	test.ExpectEquality(t, out.Len(), 0)
}

// shifting from the mid-tape origin to the start of the tape and setting the
// bit there. two words, word 0 becomes 1, word 1 stays 0.
func TestSetFirstBit(t *testing.T) {
	backing := make([]tape.Cell, 2)

	prog := program.NewProgram("main")
	err := prog.AddBlock(&program.Block{
		Label: "main",
		Ops: []program.Operation{
			{Kind: program.ShiftLeft, Bits: tape.CellBits},
			{Kind: program.Set},
		},
		End: program.Terminator{Kind: program.Halt},
	})
	test.ExpectSuccess(t, err)

	mach, err := hardware.NewMachine(backing, &bytes.Buffer{}, &bytes.Buffer{})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mach.Attach(prog))
	test.ExpectSuccess(t, mach.Run(nil))

	// the halt flushed the cache so the backing storage is current
	test.ExpectEquality(t, backing[0], tape.Cell(1))
	test.ExpectEquality(t, backing[1], tape.Cell(0))
}

// one byte in, the same byte out.
func TestEcho(t *testing.T) {
	src := `
		/* read eight bits onto the tape */
		,>,>,>,>,>,>,>,>
		<<<<<<<<
		/* and write them back out */
		.>.>.>.>.>.>.>.>
	`

	out := &bytes.Buffer{}
	mach := newTestMachine(t, src, make([]tape.Cell, 2), []byte{'G'}, out)

	test.ExpectSuccess(t, mach.Run(nil))
	test.ExpectEquality(t, out.Len(), 1)
	test.ExpectEquality(t, out.Bytes()[0], uint8('G'))
}

// a clean halt drains the partially accumulated output byte, zero padded.
func TestDrainOnHalt(t *testing.T) {
	out := &bytes.Buffer{}
	mach := newTestMachine(t, "+ . . .", make([]tape.Cell, 2), nil, out)

	test.ExpectSuccess(t, mach.Run(nil))
	test.ExpectEquality(t, out.Len(), 1)
	test.ExpectEquality(t, out.Bytes()[0], uint8(0b111))
}

// an input operation on an exhausted source aborts the run. tape mutations
// already made by the program survive the abort.
func TestInputExhausted(t *testing.T) {
	mach := newTestMachine(t, "+ > ,", make([]tape.Cell, 2), nil, &bytes.Buffer{})

	err := mach.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, bitio.ReadError)

	// the set operation before the failed input is still visible. head
	// started at bit 64, the first bit of word 1
	v, err := mach.Tape.Peek(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, tape.Cell(1))
}

// a shift that takes the head off the tape only fails at the next access.
func TestRunOffTape(t *testing.T) {
	src := strings.Repeat(">", 200) + "+"
	mach := newTestMachine(t, src, make([]tape.Cell, 1), nil, &bytes.Buffer{})

	err := mach.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, tape.OutOfBounds)
}

func TestStep(t *testing.T) {
	backing := make([]tape.Cell, 2)
	mach := newTestMachine(t, "+ mid: -", backing, nil, &bytes.Buffer{})

	test.ExpectEquality(t, mach.Current(), program.Label("@0"))

	state, err := mach.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, hardware.Running)
	test.ExpectEquality(t, mach.Current(), program.Label("mid"))

	state, err = mach.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, hardware.Ending)

	// the final step committed the run. the set from the first block was
	// cleared again by the second
	test.ExpectEquality(t, backing[1], tape.Cell(0))
}

// stopping a run from outside through the continue check commits results the
// same way a halt does.
func TestExternalStop(t *testing.T) {
	backing := make([]tape.Cell, 2)
	mach := newTestMachine(t, "loop: + jmp loop", backing, nil, &bytes.Buffer{})

	blocks := 0
	err := mach.Run(func() (hardware.State, error) {
		blocks++
		if blocks >= 5 {
			return hardware.Ending, nil
		}
		return hardware.Running, nil
	})
	test.ExpectSuccess(t, err)

	// the set at the mid-tape origin was flushed by the stop
	test.ExpectEquality(t, backing[1], tape.Cell(1))
}
