// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_huff_lib
// +build !no_huff_lib

package bench

import (
	"io"

	"github.com/dsnet/huffman"
)

func init() {
	RegisterEncoder("huff",
		func(w io.Writer) io.WriteCloser {
			return huffman.NewWriter(w)
		})
	RegisterDecoder("huff",
		func(r io.Reader) io.ReadCloser {
			return huffman.NewReader(r)
		})
}
