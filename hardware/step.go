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

package hardware

import (
	"github.com/wmach/wmach/curated"
)

// Step executes exactly one block of the attached program. It returns
// Running while there is more program to execute and Ending once the program
// has halted, at which point the results of the run have been committed as
// they would be by Run().
//
// Step() and Run() can be freely interleaved by a caller that wants to
// instrument part of a run block by block.
func (mach *Machine) Step() (State, error) {
	if mach.prog == nil {
		return Ending, curated.Errorf(NoProgram)
	}

	halted, err := mach.executeBlock()
	if err != nil {
		return Ending, err
	}

	if halted {
		return Ending, mach.halt()
	}

	return Running, nil
}
