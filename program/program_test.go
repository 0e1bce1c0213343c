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

package program_test

import (
	"testing"

	"github.com/wmach/wmach/program"
	"github.com/wmach/wmach/test"
)

func TestValidate(t *testing.T) {
	pr := program.NewProgram("main")

	// the entry block does not exist yet
	err := pr.Validate()
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, program.NoEntry)

	err = pr.AddBlock(&program.Block{
		Label: "main",
		Ops:   []program.Operation{{Kind: program.Set}},
		End:   program.Terminator{Kind: program.Jump, To: "loop"},
	})
	test.ExpectSuccess(t, err)

	// the jump target does not exist yet
	err = pr.Validate()
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, program.UnknownTarget)

	err = pr.AddBlock(&program.Block{
		Label: "loop",
		End:   program.Terminator{Kind: program.Branch, True: "loop", False: "main"},
	})
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, pr.Validate())
}

func TestDuplicateLabel(t *testing.T) {
	pr := program.NewProgram("main")

	err := pr.AddBlock(&program.Block{Label: "main", End: program.Terminator{Kind: program.Halt}})
	test.ExpectSuccess(t, err)

	err = pr.AddBlock(&program.Block{Label: "main", End: program.Terminator{Kind: program.Halt}})
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, program.DuplicateLabel)
}

func TestBranchTargets(t *testing.T) {
	pr := program.NewProgram("main")

	err := pr.AddBlock(&program.Block{
		Label: "main",
		End:   program.Terminator{Kind: program.Branch, True: "main", False: "gone"},
	})
	test.ExpectSuccess(t, err)

	// the false target of a branch is checked too
	err = pr.Validate()
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, program.UnknownTarget)
}

// the listing places the entry block first regardless of insertion order.
func TestListing(t *testing.T) {
	pr := program.NewProgram("main")

	err := pr.AddBlock(&program.Block{
		Label: "loop",
		Ops:   []program.Operation{{Kind: program.ShiftRight, Bits: 3}},
		End:   program.Terminator{Kind: program.Branch, True: "loop", False: "main"},
	})
	test.ExpectSuccess(t, err)

	err = pr.AddBlock(&program.Block{
		Label: "main",
		Ops:   []program.Operation{{Kind: program.Output}},
		End:   program.Terminator{Kind: program.Halt}})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, pr.String(), "main:\n\t.\n\thalt\nloop:\n\t> (x3)\n\tjmp loop, main\n")
}

func TestOperationStrings(t *testing.T) {
	test.ExpectEquality(t, program.Operation{Kind: program.ShiftLeft, Bits: 1}.String(), "<")
	test.ExpectEquality(t, program.Operation{Kind: program.ShiftLeft, Bits: 12}.String(), "< (x12)")
	test.ExpectEquality(t, program.Operation{Kind: program.Input}.String(), ",")
	test.ExpectEquality(t, program.Operation{Kind: program.Debug}.String(), "!")
	test.ExpectEquality(t, program.Terminator{Kind: program.Jump, To: "a"}.String(), "jmp a")
	test.ExpectEquality(t, program.Terminator{Kind: program.Halt}.String(), "halt")
}
