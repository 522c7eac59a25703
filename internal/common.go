// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the Huffman codec
// packages.
//
// For performance reasons, these helpers lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

const (
	// NumSyms is the size of the byte alphabet.
	NumSyms = 256

	// MaxCodeLen is the longest code that fits in a PrefixCode value.
	MaxCodeLen = 64
)

var (
	// IdentityLUT returns the input key itself.
	IdentityLUT [256]byte

	// ReverseLUT returns the input key with its bits reversed.
	ReverseLUT [256]byte
)

func init() {
	for i := range IdentityLUT {
		IdentityLUT[i] = uint8(i)
	}
	for i := range ReverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		ReverseLUT[i] = b
	}
}

// ReverseUint64 reverses all bits of v.
func ReverseUint64(v uint64) (x uint64) {
	for i := uint(0); i < 64; i += 8 {
		x |= uint64(ReverseLUT[byte(v>>i)]) << (56 - i)
	}
	return x
}

// ReverseUint64N reverses the lower n bits of v.
func ReverseUint64N(v uint64, n uint) (x uint64) {
	if n == 0 {
		return 0
	}
	return ReverseUint64(v << (64 - n))
}

// NumPads computes the number of bits needed to pad n bits to a byte
// alignment.
func NumPads(n uint64) uint {
	return uint(-n & 7)
}

// DivCeil divides n by m, rounding up.
func DivCeil(n, m int) int {
	return (n + m - 1) / m
}
