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

package compiler

import (
	"fmt"
	"os"

	"github.com/wmach/wmach/curated"
	"github.com/wmach/wmach/logger"
	"github.com/wmach/wmach/program"
)

// Error patterns for errors generated by the compiler package. Errors about
// the program structure itself (duplicate labels, dangling targets) use the
// patterns exported by the program package.
const (
	Empty               = "compiler: empty program"
	Unexpected          = "compiler: unexpected input near '%s'"
	UnterminatedComment = "compiler: unterminated comment"
	ReadError           = "compiler: %v"
)

// the label of the synthesised block a program halts through when it runs
// off the end of its source. the @ prefix cannot appear in a source label so
// synthesised labels can never collide with real ones.
const haltLabel = program.Label("@halt")

// Compile translates source text into a block graph. The returned program
// has been validated: its entry block exists and no jump or branch dangles.
//
// Blocks are not part of the source language. The compiler starts a new
// block at every label declaration and after every jmp statement, making the
// fallthrough of the source form explicit in the graph: a label boundary
// becomes an unconditional jump and a jmp statement without a false target
// branches to the block that follows it. Runs of shifts in the same
// direction coalesce into a single operation.
func Compile(src string) (*program.Program, error) {
	stmts, err := scan(src)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, curated.Errorf(Empty)
	}

	// synthesised labels for block starts that have no source label
	synth := 0
	newSynth := func() program.Label {
		l := program.Label(fmt.Sprintf("@%d", synth))
		synth++
		return l
	}

	var entry program.Label
	var cur *program.Block

	if stmts[0].kind == stmtLabel {
		entry = stmts[0].name
	} else {
		entry = newSynth()
		cur = &program.Block{Label: entry}
	}

	prog := program.NewProgram(entry)
	needHalt := false

	for i, st := range stmts {
		switch st.kind {
		case stmtLabel:
			if cur != nil {
				cur.End = program.Terminator{Kind: program.Jump, To: st.name}
				if err := prog.AddBlock(cur); err != nil {
					return nil, err
				}
			}
			cur = &program.Block{Label: st.name}

		case stmtJmp:
			f := st.falseTarget
			if !st.hasFalse {
				// an omitted false target falls through to whatever comes
				// next in the source
				if i+1 >= len(stmts) {
					f = haltLabel
					needHalt = true
				} else if stmts[i+1].kind == stmtLabel {
					f = stmts[i+1].name
				} else {
					f = newSynth()
				}
			}

			cur.End = program.Terminator{Kind: program.Branch, True: st.trueTarget, False: f}
			if err := prog.AddBlock(cur); err != nil {
				return nil, err
			}

			// open the block the next statement belongs to. a label
			// declaration opens its own block; statements with no label of
			// their own get a synthesised one
			if i+1 >= len(stmts) || stmts[i+1].kind == stmtLabel {
				cur = nil
			} else if st.hasFalse {
				cur = &program.Block{Label: newSynth()}
			} else {
				cur = &program.Block{Label: f}
			}

		default:
			op := operationFor(st.kind)

			// coalesce runs of shifts in the same direction
			if n := len(cur.Ops); n > 0 && op.Bits > 0 && cur.Ops[n-1].Kind == op.Kind {
				cur.Ops[n-1].Bits += op.Bits
			} else {
				cur.Ops = append(cur.Ops, op)
			}
		}
	}

	if cur != nil {
		cur.End = program.Terminator{Kind: program.Halt}
		if err := prog.AddBlock(cur); err != nil {
			return nil, err
		}
	}

	if needHalt {
		hb := &program.Block{Label: haltLabel, End: program.Terminator{Kind: program.Halt}}
		if err := prog.AddBlock(hb); err != nil {
			return nil, err
		}
	}

	if err := prog.Validate(); err != nil {
		return nil, err
	}

	logger.Logf("compiler", "%d statements compiled to %d blocks", len(stmts), len(prog.Blocks()))

	return prog, nil
}

// CompileFile reads source text from a file and compiles it.
func CompileFile(filename string) (*program.Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	return Compile(string(src))
}

func operationFor(k stmtKind) program.Operation {
	switch k {
	case stmtLeft:
		return program.Operation{Kind: program.ShiftLeft, Bits: 1}
	case stmtRight:
		return program.Operation{Kind: program.ShiftRight, Bits: 1}
	case stmtSet:
		return program.Operation{Kind: program.Set}
	case stmtClear:
		return program.Operation{Kind: program.Clear}
	case stmtInput:
		return program.Operation{Kind: program.Input}
	case stmtOutput:
		return program.Operation{Kind: program.Output}
	}
	return program.Operation{Kind: program.Debug}
}
