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

// Package version records the version number of the project and the vcs
// state it was built from.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "wmach"

// number is empty unless set at build time through the linker.
var number string

// revision contains the vcs revision. If the source had been modified but not
// committed at build time then the revision string is suffixed with "+dirty".
var revision string

// Version returns the version string and the revision string.
//
// If the version string is "unreleased" then the project was built outside of
// a release build. If it is "local" then there is no version number and no
// vcs information at all, which can happen when running with "go run .".
func Version() (string, string) {
	version := number
	if version == "" {
		if revision == "" {
			version = "local"
		} else {
			version = "unreleased"
		}
	}
	return version, revision
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified && revision != "" {
		revision += "+dirty"
	}
}
