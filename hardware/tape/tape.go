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

package tape

import (
	"github.com/wmach/wmach/curated"
)

// Cell is the fixed-width word that physically stores bits on the tape.
type Cell uint64

// CellBits is the number of bits in a Cell.
const CellBits = 64

// Error patterns for errors generated by the tape package.
const (
	NoBacking   = "tape: no backing storage"
	ZeroSized   = "tape: backing storage is zero words long"
	OutOfBounds = "tape: head out of bounds (bit %d, word %d of %d)"
)

// the word of backing storage that contains the bit address
func asIndex(bit uint64) uint64 {
	return bit / CellBits
}

// the position within the containing word of the bit address
func asOffset(bit uint64) uint64 {
	return bit % CellBits
}

// cacheSlot holds the one word of backing storage most recently touched by a
// read or write. While dirty is true the value field is the authoritative
// content for the word and the backing storage is stale.
type cacheSlot struct {
	head  uint64
	value Cell
	dirty bool
}

// Tape implements the bit addressable memory a machine program operates on.
// The backing storage is a fixed array of Cells, addressed one bit at a time
// through the head. All access goes through a single-slot write-back cache.
//
// The head is free to move off the ends of the tape between accesses. The
// bounds check happens at the next read or write, which is the only point
// where it matters.
type Tape struct {
	head uint64

	memory []Cell

	cache cacheSlot
}

// NewTape is the preferred method of initialisation for the Tape type. The
// backing storage is supplied by the caller and is never reallocated. The
// head starts at the midpoint of the tape so a program can move in either
// direction from a neutral origin.
func NewTape(memory []Cell) (*Tape, error) {
	if memory == nil {
		return nil, curated.Errorf(NoBacking)
	}
	if len(memory) == 0 {
		return nil, curated.Errorf(ZeroSized)
	}

	tp := &Tape{memory: memory}
	tp.head = uint64(len(memory)) * CellBits / 2

	// the complement of any in-range head is in a different word, marking
	// the cache as invalid and forcing a load on first access
	tp.cache.head = ^tp.head

	return tp, nil
}

// sync is the single coherence operation that all reads and writes funnel
// through. If the head has moved to a different word since the last access,
// any dirty cache content is flushed before the cache is repointed.
func (tp *Tape) sync() error {
	idx := asIndex(tp.head)

	if idx == asIndex(tp.cache.head) {
		return nil
	}

	// the head is adjusted by the program without any checks. a head that
	// has fallen off either end of the tape is a defect in the program and
	// is surfaced here, at the moment of access
	if idx >= uint64(len(tp.memory)) {
		return curated.Errorf(OutOfBounds, tp.head, idx, len(tp.memory))
	}

	if tp.cache.dirty {
		tp.memory[asIndex(tp.cache.head)] = tp.cache.value
		tp.cache.dirty = false
	}

	tp.cache.head = tp.head
	tp.cache.value = tp.memory[idx]

	return nil
}

// WriteBit sets or clears the bit under the head.
func (tp *Tape) WriteBit(bit bool) error {
	if err := tp.sync(); err != nil {
		return err
	}

	mask := Cell(1) << asOffset(tp.head)
	if bit {
		tp.cache.value |= mask
	} else {
		tp.cache.value &^= mask
	}
	tp.cache.dirty = true

	return nil
}

// ReadBit returns the bit under the head.
func (tp *Tape) ReadBit() (bool, error) {
	if err := tp.sync(); err != nil {
		return false, err
	}

	return tp.cache.value&(Cell(1)<<asOffset(tp.head)) != 0, nil
}

// ShiftLeft moves the head the specified number of bits towards the start of
// the tape. No bounds check happens until the next read or write.
func (tp *Tape) ShiftLeft(bits uint64) {
	tp.head -= bits
}

// ShiftRight moves the head the specified number of bits towards the end of
// the tape. No bounds check happens until the next read or write.
func (tp *Tape) ShiftRight(bits uint64) {
	tp.head += bits
}

// Head returns the bit address currently under the head.
func (tp *Tape) Head() uint64 {
	return tp.head
}

// Size returns the length of the tape in words.
func (tp *Tape) Size() int {
	return len(tp.memory)
}

// Flush pushes any dirty cache content to the backing storage. Necessary
// before the backing storage is inspected directly, at the end of a run for
// example.
func (tp *Tape) Flush() {
	if tp.cache.dirty {
		tp.memory[asIndex(tp.cache.head)] = tp.cache.value
		tp.cache.dirty = false
	}
}

// word returns the current content of the numbered word, honouring any dirty
// cache content, without disturbing the cache or the head.
func (tp *Tape) word(idx uint64) Cell {
	if tp.cache.dirty && asIndex(tp.cache.head) == idx {
		return tp.cache.value
	}
	return tp.memory[idx]
}

// Peek returns the current content of the numbered word. Unlike ReadBit() it
// never disturbs the cache or the head, making it suitable for diagnostic
// inspection mid-run.
func (tp *Tape) Peek(idx uint64) (Cell, error) {
	if idx >= uint64(len(tp.memory)) {
		return 0, curated.Errorf(OutOfBounds, idx*CellBits, idx, len(tp.memory))
	}
	return tp.word(idx), nil
}
