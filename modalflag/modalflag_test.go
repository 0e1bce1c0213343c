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

package modalflag_test

import (
	"testing"

	"github.com/wmach/wmach/modalflag"
	"github.com/wmach/wmach/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"program.wm"})

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "program.wm")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"program.wm"})
	md.AddSubModes("run", "check", "version")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)

	// the first argument is not a recognised sub-mode so the default is
	// assumed and the argument survives for the next layer
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "program.wm")
}

func TestExplicitSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"check", "program.wm"})
	md.AddSubModes("run", "check")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)

	// sub-mode comparison is case insensitive
	test.ExpectEquality(t, md.Mode(), "CHECK")

	// the sub-mode argument has been consumed. the next layer starts after it
	md.NewMode()
	res, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.GetArg(0), "program.wm")
}

func TestFlagsBeforeSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "run", "program.wm"})
	md.AddSubModes("run", "check")
	log := md.AddBool("log", false, "echo log to stderr")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	words := md.AddInt("words", 64, "tape length in words")

	res, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, *words, 64)
	test.ExpectEquality(t, md.GetArg(0), "program.wm")
}

func TestSubModeFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "-words", "128", "program.wm"})
	md.AddSubModes("run", "check")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	words := md.AddInt("words", 64, "tape length in words")

	res, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, *words, 128)
	test.ExpectEquality(t, md.GetArg(0), "program.wm")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})

	res, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, res, modalflag.ParseError)
}
