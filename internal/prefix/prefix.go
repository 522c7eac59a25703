// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package prefix implements the building blocks of a byte-oriented Huffman
// coder: frequency counting, prefix tree construction, code generation, and
// MSB-first bit packing.
package prefix

import (
	"fmt"

	"github.com/dsnet/huffman/internal/errors"
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "prefix", Msg: fmt.Sprintf(f, a...)}
}

// Frequencies is a histogram of byte values.
// The sum of all counts is the length of the input that produced it.
type Frequencies [256]uint64

// Count computes the histogram of b. An empty input yields an all-zero table.
func Count(b []byte) (f Frequencies) {
	for _, c := range b {
		f[c]++
	}
	return f
}

// Total reports the number of bytes that were counted.
func (f *Frequencies) Total() (n uint64) {
	for _, c := range f {
		n += c
	}
	return n
}

// NumSyms reports the number of distinct byte values present.
func (f *Frequencies) NumSyms() (n int) {
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}
