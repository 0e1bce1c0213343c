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

// Package performance measures the performance of the machine and provides
// profiling.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/wmach/wmach/hardware"
)

// Error pattern for errors generated by the performance package.
const PerformanceError = "performance: %v"

// Check the performance of the machine running the attached program.
//
// The run is stopped after the specified duration; a duration of zero lets
// the program run to its own halt. A CPU profile and/or a memory profile is
// written as requested by the profile argument. The block execution rate is
// reported to the output writer either way.
func Check(output io.Writer, profile Profile, mach *hardware.Machine, duration time.Duration) error {
	blocks := 0

	runner := func() error {
		// expired is closed when the measurement period is over. a zero
		// duration never expires
		expired := make(chan struct{})
		if duration > 0 {
			time.AfterFunc(duration, func() { close(expired) })
		}

		// checking the expired channel on every block costs more than
		// executing most blocks does. PerformanceBrake filters the check
		performanceBrake := 0

		start := time.Now()
		err := mach.Run(func() (hardware.State, error) {
			blocks++

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-expired:
					return hardware.Ending, nil
				default:
				}
			}

			return hardware.Running, nil
		})
		if err != nil {
			return err
		}

		elapsed := time.Since(start)
		if elapsed > 0 {
			fmt.Fprintf(output, "%d blocks in %s (%.0f blocks/sec)\n",
				blocks, elapsed.Round(time.Millisecond), float64(blocks)/elapsed.Seconds())
		}

		return nil
	}

	return RunProfiler(profile, runner)
}
