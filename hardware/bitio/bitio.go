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

package bitio

import (
	"io"

	"github.com/wmach/wmach/curated"
)

// Error patterns for errors generated by the bitio package.
const (
	ReadError  = "bitio: read: %v"
	WriteError = "bitio: write: %v"
)

// number of bits accumulated per byte of the underlying stream.
const lastOffset = 8

// mask returns the bit mask for the numbered position within a byte. Bits
// move through the accumulators least significant bit first; this function is
// the only place the convention appears.
func mask(offset int) uint8 {
	return 1 << offset
}

// accumulator is a partially filled byte and a count of the bits consumed or
// produced so far.
type accumulator struct {
	value  uint8
	offset int
}

func (a *accumulator) reset() {
	a.value = 0
	a.offset = 0
}

// IO converts a byte source and a byte sink into a bit source and a bit
// sink. Input bits are pulled a byte at a time from the reader; output bits
// accumulate until a whole byte can be pushed to the writer.
type IO struct {
	input  io.Reader
	output io.Writer

	inputAcc  accumulator
	outputAcc accumulator
}

// NewIO is the preferred method of initialisation for the IO type.
func NewIO(input io.Reader, output io.Writer) *IO {
	return &IO{
		input:  input,
		output: output,
	}
}

// GetBit returns the next bit from the input stream, refilling the input
// accumulator from the byte source as required. An exhausted source is a
// ReadError like any other read failure.
func (b *IO) GetBit() (bool, error) {
	if b.inputAcc.offset == 0 {
		buf := make([]byte, 1)
		if _, err := io.ReadFull(b.input, buf); err != nil {
			return false, curated.Errorf(ReadError, err)
		}
		b.inputAcc.value = buf[0]
	}

	bit := b.inputAcc.value&mask(b.inputAcc.offset) != 0
	b.inputAcc.offset++

	if b.inputAcc.offset == lastOffset {
		b.inputAcc.reset()
	}

	return bit, nil
}

// PutBit accumulates a bit into the output byte, pushing the byte to the sink
// once it is full.
func (b *IO) PutBit(bit bool) error {
	if bit {
		b.outputAcc.value |= mask(b.outputAcc.offset)
	}
	b.outputAcc.offset++

	if b.outputAcc.offset == lastOffset {
		if _, err := b.output.Write([]byte{b.outputAcc.value}); err != nil {
			return curated.Errorf(WriteError, err)
		}
		b.outputAcc.reset()
	}

	return nil
}

// Drain writes any partially accumulated output byte to the sink, padded
// with zero bits. Silently dropping trailing bits would lose program output,
// so the owning machine calls this at the end of a clean run. A no-op when
// the accumulator is empty.
func (b *IO) Drain() error {
	if b.outputAcc.offset == 0 {
		return nil
	}

	if _, err := b.output.Write([]byte{b.outputAcc.value}); err != nil {
		return curated.Errorf(WriteError, err)
	}
	b.outputAcc.reset()

	return nil
}
