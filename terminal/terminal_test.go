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

package terminal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wmach/wmach/terminal"
	"github.com/wmach/wmach/test"
)

// input redirected from a regular file is not a terminal. nothing is
// switched and Restore() is a no-op.
func TestNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	test.ExpectSuccess(t, err)
	defer f.Close()

	rt, err := terminal.NewRawInput(f)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rt.Restore())

	// Restore() stays a no-op however often it is called
	test.ExpectSuccess(t, rt.Restore())
}
