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

// Package tape implements the bit addressable memory of the Wang machine.
//
// The tape is a fixed array of 64-bit words supplied by the caller, addressed
// one bit at a time through a cursor called the head. Bit 0 of a word is the
// least significant bit. The head starts at the midpoint of the tape.
//
// All reads and writes resolve through a single-slot write-back cache holding
// the word most recently touched. A write dirties the cached word; the dirty
// word is flushed to the backing storage when the head next reaches a
// different word (or on an explicit Flush()). The cache is purely an
// implementation detail of the Tape type: observable read/write behaviour is
// identical to operating on the backing storage directly.
//
// Moving the head with ShiftLeft() and ShiftRight() is unchecked arithmetic.
// A head that has been moved off either end of the tape only causes an error
// at the next read or write, when the word it addresses is actually needed.
// The error is the exported OutOfBounds pattern and indicates a defect in the
// executed program rather than a recoverable condition.
package tape
