// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterEncoder("kp",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.HuffmanOnly)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("kp",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})

	// Zstandard is included as a reference for a full LZ77 and entropy
	// coding pipeline.
	RegisterEncoder("zstd",
		func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithZeroFrames(true))
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder("zstd",
		func(r io.Reader) io.ReadCloser {
			zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				panic(err)
			}
			return zr.IOReadCloser()
		})
}
