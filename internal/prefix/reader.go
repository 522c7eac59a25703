// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"bytes"
	"io"

	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
	"github.com/icza/bitio"
)

// Reader unpacks bits from bytes, most-significant bit first.
// It never reads past the logical end of the data, which excludes the
// padding bits of the final byte.
type Reader struct {
	rd    bytes.Reader
	br    *bitio.Reader
	limit uint64 // Number of logical bits in the input
	cnt   uint64 // Number of bits read
}

// Init resets the Reader to read data, of which the last pads bits are
// padding. It reports an error if pads is not in 0..7, or if padding is
// declared for empty data.
func (pr *Reader) Init(data []byte, pads uint) error {
	if pads > 7 {
		return errorf(errors.Malformed, "padding count %d out of range", pads)
	}
	if len(data) == 0 && pads > 0 {
		return errorf(errors.Malformed, "padding count %d without data", pads)
	}
	pr.rd.Reset(data)
	pr.br = bitio.NewReader(&pr.rd)
	pr.limit = 8*uint64(len(data)) - uint64(pads)
	pr.cnt = 0
	return nil
}

// BitsRead reports the number of bits consumed so far.
func (pr *Reader) BitsRead() uint64 { return pr.cnt }

// BitsRemaining reports the number of logical bits yet to be read.
func (pr *Reader) BitsRemaining() uint64 { return pr.limit - pr.cnt }

// ReadBit reads a single bit. It returns io.EOF at the logical end.
func (pr *Reader) ReadBit() (bool, error) {
	if pr.cnt >= pr.limit {
		return false, io.EOF
	}
	b, err := pr.br.ReadBool()
	if err != nil {
		return false, err
	}
	pr.cnt++
	return b, nil
}

// ReadBits reads n bits and returns them in the low bits of the result, with
// the first bit read in the most-significant position. It returns io.EOF if no
// bits remain and io.ErrUnexpectedEOF if fewer than n bits remain, in which
// case nothing is consumed.
func (pr *Reader) ReadBits(n uint) (uint64, error) {
	switch {
	case n == 0:
		return 0, nil
	case n > 64:
		return 0, errorf(errors.Internal, "cannot read %d bits at once", n)
	case pr.cnt >= pr.limit:
		return 0, io.EOF
	case uint64(n) > pr.limit-pr.cnt:
		return 0, io.ErrUnexpectedEOF
	}
	v, err := pr.br.ReadBits(uint8(n))
	if err != nil {
		return 0, err
	}
	pr.cnt += uint64(n)
	return v, nil
}

// ReadAligned discards bits up to the next byte boundary and reports whether
// all of them were zero.
func (pr *Reader) ReadAligned() (bool, error) {
	v, err := pr.ReadBits(internal.NumPads(pr.cnt))
	return v == 0, err
}

// Unpack is the inverse of Pack.
func Unpack(data []byte, pads uint) ([]bool, error) {
	var pr Reader
	if err := pr.Init(data, pads); err != nil {
		return nil, err
	}
	bits := make([]bool, 0, pr.BitsRemaining())
	for {
		b, err := pr.ReadBit()
		if err == io.EOF {
			return bits, nil
		}
		if err != nil {
			return nil, err
		}
		bits = append(bits, b)
	}
}
