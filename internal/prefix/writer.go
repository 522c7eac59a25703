// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"bytes"

	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
	"github.com/icza/bitio"
)

// Writer packs bits into bytes, most-significant bit first.
// The zero value is ready for use.
//
// For performance reasons, the write methods do not return errors but panic
// with them instead. Callers are expected to use errors.Recover.
type Writer struct {
	bb  bytes.Buffer
	bw  *bitio.Writer
	cnt uint64 // Number of bits written
}

// Reset discards all written bits.
func (pw *Writer) Reset() {
	pw.bb.Reset()
	pw.bw = bitio.NewWriter(&pw.bb)
	pw.cnt = 0
}

// Grow ensures there is room for at least n more bits without reallocating.
func (pw *Writer) Grow(n uint64) {
	pw.bb.Grow(internal.DivCeil(int(n), 8))
}

// BitsWritten reports the number of logical bits written since the last
// Reset, excluding padding.
func (pw *Writer) BitsWritten() uint64 { return pw.cnt }

// WriteBits writes the n lowest bits of v, highest of those first.
func (pw *Writer) WriteBits(v uint64, n uint) {
	if n > 64 {
		errors.Panic(errorf(errors.Internal, "cannot write %d bits at once", n))
	}
	if n == 0 {
		return
	}
	if n < 64 {
		v &= 1<<n - 1
	}
	pw.init()
	if err := pw.bw.WriteBits(v, uint8(n)); err != nil {
		errors.Panic(err)
	}
	pw.cnt += uint64(n)
}

// WriteBit writes a single bit.
func (pw *Writer) WriteBit(b bool) {
	pw.init()
	if err := pw.bw.WriteBool(b); err != nil {
		errors.Panic(err)
	}
	pw.cnt++
}

// WriteCode writes the prefix code c.
func (pw *Writer) WriteCode(c PrefixCode) {
	if c.Len == 0 {
		errors.Panic(errorf(errors.Internal, "no code for symbol %d", c.Sym))
	}
	pw.WriteBits(c.Val, uint(c.Len))
}

// Align pads the output with zero bits up to the next byte boundary and
// reports how many were added.
func (pw *Writer) Align() (pads uint) {
	pw.init()
	skipped, err := pw.bw.Align()
	if err != nil {
		errors.Panic(err)
	}
	if uint(skipped) != internal.NumPads(pw.cnt) {
		errors.Panic(errorf(errors.Internal, "mismatching padding: %d bits", skipped))
	}
	pw.cnt += uint64(skipped)
	return uint(skipped)
}

// Bytes returns the packed output. It is only valid after Align.
func (pw *Writer) Bytes() []byte {
	if pw.cnt%8 != 0 {
		errors.Panic(errorf(errors.Internal, "unaligned output"))
	}
	return pw.bb.Bytes()
}

func (pw *Writer) init() {
	if pw.bw == nil {
		pw.bw = bitio.NewWriter(&pw.bb)
	}
}

// Pack packs the bit sequence into bytes and reports the number of zero bits
// appended to fill the final byte.
func Pack(bits []bool) (data []byte, pads uint8, err error) {
	defer errors.Recover(&err)

	var pw Writer
	pw.Grow(uint64(len(bits)))
	for _, b := range bits {
		pw.WriteBit(b)
	}
	pads = uint8(pw.Align())
	return pw.Bytes(), pads, nil
}
