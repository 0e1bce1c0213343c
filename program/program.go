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

import (
	"fmt"
	"strings"

	"github.com/wmach/wmach/curated"
)

// Label identifies a block in a program.
type Label string

// Error patterns for errors generated by the program package.
const (
	DuplicateLabel = "program: duplicate label '%s'"
	UnknownTarget  = "program: block '%s': unknown target '%s'"
	NoEntry        = "program: entry block '%s' does not exist"
)

// Block is a labeled sequence of primitive operations ending in a
// terminator.
type Block struct {
	Label Label
	Ops   []Operation
	End   Terminator
}

func (bl *Block) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s:\n", bl.Label))
	for _, op := range bl.Ops {
		s.WriteString(fmt.Sprintf("\t%s\n", op))
	}
	s.WriteString(fmt.Sprintf("\t%s\n", bl.End))
	return s.String()
}

// Program is a static directed graph of blocks. It is built ahead of
// execution and never mutated by the machine that runs it.
type Program struct {
	entry Label

	blocks map[Label]*Block

	// block labels in the order they were added, for deterministic listing
	order []Label
}

// NewProgram is the preferred method of initialisation for the Program type.
// The entry label names the block execution starts at; the block itself can
// be added later.
func NewProgram(entry Label) *Program {
	return &Program{
		entry:  entry,
		blocks: make(map[Label]*Block),
	}
}

// Entry returns the label of the block execution starts at.
func (pr *Program) Entry() Label {
	return pr.entry
}

// AddBlock appends a block to the program.
func (pr *Program) AddBlock(bl *Block) error {
	if _, ok := pr.blocks[bl.Label]; ok {
		return curated.Errorf(DuplicateLabel, bl.Label)
	}
	pr.blocks[bl.Label] = bl
	pr.order = append(pr.order, bl.Label)
	return nil
}

// Block returns the named block, or nil if there is no block with that label.
func (pr *Program) Block(label Label) *Block {
	return pr.blocks[label]
}

// Blocks returns every block in the program, in the order they were added.
func (pr *Program) Blocks() []*Block {
	bls := make([]*Block, 0, len(pr.order))
	for _, l := range pr.order {
		bls = append(bls, pr.blocks[l])
	}
	return bls
}

// Validate checks that the entry block and the target of every jump and
// branch exist. A program that validates cleanly can only fail at run time
// through the tape or the I/O streams, never through a dangling transfer.
func (pr *Program) Validate() error {
	if _, ok := pr.blocks[pr.entry]; !ok {
		return curated.Errorf(NoEntry, pr.entry)
	}

	check := func(from *Block, target Label) error {
		if _, ok := pr.blocks[target]; !ok {
			return curated.Errorf(UnknownTarget, from.Label, target)
		}
		return nil
	}

	for _, l := range pr.order {
		bl := pr.blocks[l]
		switch bl.End.Kind {
		case Jump:
			if err := check(bl, bl.End.To); err != nil {
				return err
			}
		case Branch:
			if err := check(bl, bl.End.True); err != nil {
				return err
			}
			if err := check(bl, bl.End.False); err != nil {
				return err
			}
		case Halt:
			// no target
		}
	}

	return nil
}

// String returns the program as a source listing. The entry block is listed
// first.
func (pr *Program) String() string {
	s := strings.Builder{}
	if bl, ok := pr.blocks[pr.entry]; ok {
		s.WriteString(bl.String())
	}
	for _, l := range pr.order {
		if l == pr.entry {
			continue
		}
		s.WriteString(pr.blocks[l].String())
	}
	return s.String()
}
