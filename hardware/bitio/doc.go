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

// Package bitio layers a bit stream over a pair of byte streams. The machine
// reads and writes individual bits; the outside world deals in bytes.
//
// Bits fill and drain each byte least significant bit first, in both
// directions. Feeding the eight bits read from a byte straight back through
// PutBit() reproduces the original byte exactly.
//
// A full output byte is pushed to the sink immediately, so at most seven
// bits are ever held back. The Drain() function pads and pushes those
// trailing bits at the end of a run.
package bitio
