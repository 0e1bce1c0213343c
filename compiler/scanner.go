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
	"strings"
	"unicode/utf8"

	"github.com/wmach/wmach/curated"
	"github.com/wmach/wmach/program"
)

// the kinds of statement that appear in source form. one source statement
// does not necessarily correspond to one block or even one operation in the
// compiled program.
type stmtKind int

const (
	stmtLabel stmtKind = iota
	stmtJmp
	stmtSet
	stmtClear
	stmtLeft
	stmtRight
	stmtInput
	stmtOutput
	stmtDebug
)

type stmt struct {
	kind stmtKind

	// the label being declared (stmtLabel only)
	name program.Label

	// branch targets (stmtJmp only). a missing false target means the branch
	// falls through to whatever follows the jmp statement
	trueTarget  program.Label
	falseTarget program.Label
	hasFalse    bool
}

type scanner struct {
	src string
	pos int
}

func isLabelChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '\'' || c == '_':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.src)
}

func (sc *scanner) peek() byte {
	return sc.src[sc.pos]
}

// remaining returns a short excerpt of the unconsumed input, for error
// messages. The excerpt is cut on a rune boundary so that multi-byte input
// never produces a mangled message.
func (sc *scanner) remaining() string {
	r := strings.TrimSpace(sc.src[sc.pos:])
	if len(r) > 20 {
		n := 20
		for n > 0 && !utf8.RuneStart(r[n]) {
			n--
		}
		r = r[:n] + "..."
	}
	return r
}

// skip whitespace and comments. comments are delimited by /* and */ and do
// not nest.
func (sc *scanner) skip() error {
	for !sc.eof() {
		if isSpace(sc.peek()) {
			sc.pos++
			continue
		}

		if strings.HasPrefix(sc.src[sc.pos:], "/*") {
			end := strings.Index(sc.src[sc.pos+2:], "*/")
			if end == -1 {
				return curated.Errorf(UnterminatedComment)
			}
			sc.pos += 2 + end + 2
			continue
		}

		break // for loop
	}
	return nil
}

// word consumes and returns a run of label characters. The empty string if
// the next character cannot appear in a label.
func (sc *scanner) word() string {
	start := sc.pos
	for !sc.eof() && isLabelChar(sc.peek()) {
		sc.pos++
	}
	return sc.src[start:sc.pos]
}

// scan the source into a statement list.
func scan(src string) ([]stmt, error) {
	sc := &scanner{src: src}
	var stmts []stmt

	for {
		if err := sc.skip(); err != nil {
			return nil, err
		}
		if sc.eof() {
			break // for loop
		}

		switch sc.peek() {
		case '+':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtSet})
			continue // for loop
		case '-':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtClear})
			continue // for loop
		case '<':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtLeft})
			continue // for loop
		case '>':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtRight})
			continue // for loop
		case ',':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtInput})
			continue // for loop
		case '.':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtOutput})
			continue // for loop
		case '!':
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtDebug})
			continue // for loop
		}

		w := sc.word()
		if w == "" {
			return nil, curated.Errorf(Unexpected, sc.remaining())
		}

		// a word followed by a colon is a label declaration, even if the
		// word is "jmp"
		mark := sc.pos
		for !sc.eof() && (sc.peek() == ' ' || sc.peek() == '\t') {
			sc.pos++
		}
		if !sc.eof() && sc.peek() == ':' {
			sc.pos++
			stmts = append(stmts, stmt{kind: stmtLabel, name: program.Label(w)})
			continue // for loop
		}
		sc.pos = mark

		if w != "jmp" {
			return nil, curated.Errorf(Unexpected, sc.remaining())
		}

		if err := sc.skip(); err != nil {
			return nil, err
		}
		t := sc.word()
		if t == "" {
			return nil, curated.Errorf(Unexpected, sc.remaining())
		}

		jmp := stmt{kind: stmtJmp, trueTarget: program.Label(t)}

		// the false target is optional. if a comma is not followed by a
		// label then the comma is not part of the jmp statement - it is the
		// input operation - and the scan backtracks
		mark = sc.pos
		if err := sc.skip(); err != nil {
			return nil, err
		}
		if !sc.eof() && sc.peek() == ',' {
			sc.pos++
			if err := sc.skip(); err != nil {
				return nil, err
			}
			if f := sc.word(); f != "" {
				jmp.falseTarget = program.Label(f)
				jmp.hasFalse = true
			} else {
				sc.pos = mark
			}
		} else {
			sc.pos = mark
		}

		stmts = append(stmts, jmp)
	}

	return stmts, nil
}
