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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// graphNode mirrors a block as a linked structure so that memviz renders the
// transfers between blocks as edges. Fields are exported for the benefit of
// the reflection in the memviz package.
type graphNode struct {
	Label string
	Ops   []string

	Jump  *graphNode
	True  *graphNode
	False *graphNode
}

// WriteGraph renders the program's block graph in graphviz dot format,
// suitable for piping into the dot command. The rendering starts at the
// entry block; blocks unreachable from the entry do not appear.
func (pr *Program) WriteGraph(output io.Writer) error {
	if err := pr.Validate(); err != nil {
		return err
	}

	nodes := make(map[Label]*graphNode)
	for _, l := range pr.order {
		bl := pr.blocks[l]
		n := &graphNode{Label: string(l)}
		for _, op := range bl.Ops {
			n.Ops = append(n.Ops, op.String())
		}
		nodes[l] = n
	}

	for _, l := range pr.order {
		bl := pr.blocks[l]
		n := nodes[l]
		switch bl.End.Kind {
		case Jump:
			n.Jump = nodes[bl.End.To]
		case Branch:
			n.True = nodes[bl.End.True]
			n.False = nodes[bl.End.False]
		}
	}

	memviz.Map(output, nodes[pr.entry])

	return nil
}
