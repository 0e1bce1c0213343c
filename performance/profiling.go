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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/wmach/wmach/curated"
)

// Profile selects which profiles RunProfiler() should gather.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0b00
	ProfileCPU  Profile = 0b01
	ProfileMem  Profile = 0b10
	ProfileAll  Profile = 0b11
)

// Output files written by RunProfiler().
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// ParseProfileString converts a list of comma separated profile names to a
// Profile value. Recognised names are "none", "cpu", "mem" and "all".
func ParseProfileString(spec string) (Profile, error) {
	p := ProfileNone

	for _, s := range strings.Split(spec, ",") {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "none", "":
			// no change
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(PerformanceError, "unrecognised profile: "+s)
		}
	}

	return p, nil
}

// RunProfiler gathers the requested profiles around the run function. The
// CPU profile covers the whole of the run; the memory profile is a snapshot
// taken after the run has completed.
func RunProfiler(profile Profile, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(cpuProfileFile)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(memProfileFile)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	return nil
}
