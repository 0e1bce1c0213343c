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

// Package hardware assembles the components of the Wang machine and
// executes programs against them.
//
// The Machine type bundles a tape (package tape) and a pair of bit streams
// (package bitio). A compiled program (package program) is attached with
// Attach() and driven with Run() or Step(). Execution is a dispatch loop
// over the program's block graph: the operations of the current block run in
// sequence and the block's terminator selects the next block, with branches
// deciding on the bit under the tape head.
//
// Execution is single threaded and fully synchronous. The machine blocks on
// the byte streams it was given and imposes no timeout, no cancellation and
// no step bound; a run completes when the program halts, when a tape or I/O
// error aborts it, or when the caller's continueCheck function stops it.
package hardware
