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

package bitio_test

import (
	"bytes"
	"testing"

	"github.com/wmach/wmach/curated"
	"github.com/wmach/wmach/hardware/bitio"
	"github.com/wmach/wmach/test"
)

// bits leave a byte least significant bit first.
func TestGetBitOrder(t *testing.T) {
	io := bitio.NewIO(bytes.NewReader([]byte{0xa5}), &bytes.Buffer{})

	for offset := 0; offset < 8; offset++ {
		b, err := io.GetBit()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, b, 0xa5&(1<<offset) != 0)
	}
}

// bits enter a byte least significant bit first.
func TestPutBitOrder(t *testing.T) {
	out := &bytes.Buffer{}
	io := bitio.NewIO(&bytes.Buffer{}, out)

	for offset := 0; offset < 8; offset++ {
		test.ExpectSuccess(t, io.PutBit(0x5a&(1<<offset) != 0))
	}

	test.ExpectEquality(t, out.Len(), 1)
	test.ExpectEquality(t, out.Bytes()[0], uint8(0x5a))
}

// whole bytes read bit by bit and written bit by bit reproduce the input
// exactly.
func TestRoundTrip(t *testing.T) {
	src := []byte("wang machines\x00\xff\x80\x01")
	out := &bytes.Buffer{}
	io := bitio.NewIO(bytes.NewReader(src), out)

	for i := 0; i < len(src)*8; i++ {
		b, err := io.GetBit()
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, io.PutBit(b))
	}

	test.ExpectEquality(t, bytes.Equal(out.Bytes(), src), true)
}

// the output byte is pushed to the sink only when full.
func TestPutBitFlushBoundary(t *testing.T) {
	out := &bytes.Buffer{}
	io := bitio.NewIO(&bytes.Buffer{}, out)

	for i := 0; i < 7; i++ {
		test.ExpectSuccess(t, io.PutBit(true))
	}
	test.ExpectEquality(t, out.Len(), 0)

	test.ExpectSuccess(t, io.PutBit(false))
	test.ExpectEquality(t, out.Len(), 1)
	test.ExpectEquality(t, out.Bytes()[0], uint8(0x7f))
}

// an exhausted source is an error, not a default value.
func TestExhaustedSource(t *testing.T) {
	io := bitio.NewIO(bytes.NewReader([]byte{0x01}), &bytes.Buffer{})

	for i := 0; i < 8; i++ {
		_, err := io.GetBit()
		test.ExpectSuccess(t, err)
	}

	_, err := io.GetBit()
	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, bitio.ReadError)
}

func TestDrain(t *testing.T) {
	out := &bytes.Buffer{}
	io := bitio.NewIO(&bytes.Buffer{}, out)

	// three bits: 1, 0, 1. drain pads the rest of the byte with zeros
	test.ExpectSuccess(t, io.PutBit(true))
	test.ExpectSuccess(t, io.PutBit(false))
	test.ExpectSuccess(t, io.PutBit(true))
	test.ExpectSuccess(t, io.Drain())

	test.ExpectEquality(t, out.Len(), 1)
	test.ExpectEquality(t, out.Bytes()[0], uint8(0b101))

	// draining an empty accumulator produces nothing
	test.ExpectSuccess(t, io.Drain())
	test.ExpectEquality(t, out.Len(), 1)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, curated.Errorf("sink full")
}

func TestSinkFailure(t *testing.T) {
	io := bitio.NewIO(&bytes.Buffer{}, failingWriter{})

	var err error
	for i := 0; i < 8; i++ {
		err = io.PutBit(true)
	}

	test.ExpectFailure(t, err)
	test.ExpectCuratedError(t, err, bitio.WriteError)
}
