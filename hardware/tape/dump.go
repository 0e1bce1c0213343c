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

package tape

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/wmach/wmach/curated"
)

// DumpError is the error pattern returned when the dump target fails.
const DumpError = "tape: dump: %v"

// number of words shown per row by the String() function
const dumpWidth = 4

func (tp *Tape) String() string {
	s := strings.Builder{}
	s.WriteString("        ")
	for x := 0; x < dumpWidth; x++ {
		s.WriteString(fmt.Sprintf("-%-16d", x))
	}
	s.WriteString("\n")

	for y := 0; y < len(tp.memory); y += dumpWidth {
		s.WriteString(fmt.Sprintf("%04x- |", y))
		for x := y; x < y+dumpWidth && x < len(tp.memory); x++ {
			s.WriteString(fmt.Sprintf(" %016x", uint64(tp.word(uint64(x)))))
		}
		s.WriteString("\n")
	}

	return strings.Trim(s.String(), "\n")
}

// Dump writes the tape contents as raw bytes in word order, each word
// little-endian. This is a diagnostic aid and not a format with any
// compatibility guarantee, but word 0 always comes first since that is the
// natural reading of tape state.
func (tp *Tape) Dump(output io.Writer) error {
	b := make([]byte, 8)
	for i := range tp.memory {
		binary.LittleEndian.PutUint64(b, uint64(tp.word(uint64(i))))
		if _, err := output.Write(b); err != nil {
			return curated.Errorf(DumpError, err)
		}
	}
	return nil
}
