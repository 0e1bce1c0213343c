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
	"github.com/wmach/wmach/logger"
	"github.com/wmach/wmach/program"
)

// State describes where a run is in its lifecycle. The continueCheck
// function passed to Run() returns a State to keep the run going or to stop
// it from outside.
type State int

// List of valid State values.
const (
	Running State = iota
	Ending
)

// A full continue check on every block can be expensive for a caller that
// consults a clock or a channel. PerformanceBrake is a standard value for
// filtering the expensive path within a continueCheck implementation:
//
//	filter++
//	if filter >= hardware.PerformanceBrake {
//		filter = 0
//		// expensive check here
//	}
//	return hardware.Running, nil
const PerformanceBrake = 100

// Run executes the attached program until it halts, until an error aborts
// it, or until the continueCheck function returns the Ending state. A nil
// continueCheck runs the program to completion - which, this being a Wang
// machine, may be never. The engine imposes no step bound of its own.
//
// A clean halt drains any partially accumulated output byte (zero padded)
// and flushes the tape cache. Errors from the tape or the bit streams abort
// the run immediately and propagate to the caller unchanged.
func (mach *Machine) Run(continueCheck func() (State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (State, error) { return Running, nil }
	}

	if mach.prog == nil {
		return curated.Errorf(NoProgram)
	}

	logger.Logf("machine", "run: entry '%s', tape %d words", mach.prog.Entry(), mach.Tape.Size())

	state := Running
	for state == Running {
		halted, err := mach.executeBlock()
		if err != nil {
			return err
		}
		if halted {
			logger.Log("machine", "run: halted")
			return mach.halt()
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	// the run was stopped from outside. commit results as for a halt so the
	// tape can be inspected
	return mach.halt()
}

// executeBlock runs the operations of the current block and follows its
// terminator. Returns true if the terminator was a halt.
func (mach *Machine) executeBlock() (bool, error) {
	bl := mach.prog.Block(mach.current)
	if bl == nil {
		return false, curated.Errorf(UnknownLabel, mach.current)
	}

	for _, op := range bl.Ops {
		switch op.Kind {
		case program.ShiftLeft:
			mach.Tape.ShiftLeft(op.Bits)

		case program.ShiftRight:
			mach.Tape.ShiftRight(op.Bits)

		case program.Set:
			if err := mach.Tape.WriteBit(true); err != nil {
				return false, err
			}

		case program.Clear:
			if err := mach.Tape.WriteBit(false); err != nil {
				return false, err
			}

		case program.Input:
			bit, err := mach.IO.GetBit()
			if err != nil {
				return false, err
			}
			if err := mach.Tape.WriteBit(bit); err != nil {
				return false, err
			}

		case program.Output:
			bit, err := mach.Tape.ReadBit()
			if err != nil {
				return false, err
			}
			if err := mach.IO.PutBit(bit); err != nil {
				return false, err
			}

		case program.Debug:
			logger.Logf("machine", "%s: head at bit %d", bl.Label, mach.Tape.Head())
		}
	}

	switch bl.End.Kind {
	case program.Jump:
		mach.current = bl.End.To

	case program.Branch:
		bit, err := mach.Tape.ReadBit()
		if err != nil {
			return false, err
		}
		if bit {
			mach.current = bl.End.True
		} else {
			mach.current = bl.End.False
		}

	case program.Halt:
		return true, nil
	}

	return false, nil
}
