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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes, with
// different flags for each mode.
//
// Parsing happens in layers. The top layer finds the program mode and any
// global flags; the caller then starts the next layer with NewMode(), adds
// the flags specific to that mode, and calls Parse() again:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "check")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		dump := md.AddBool("dump", false, "print the tape after the run")
//		_, _ = md.Parse()
//		...
//	}
//
// Sub-mode names are case insensitive and the first sub-mode added is the
// default when no recognisable mode appears on the command line.
package modalflag
