// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package huffman

import (
	"bytes"
	"io"

	"github.com/dsnet/huffman"
)

func Fuzz(data []byte) int {
	out, ok := testDecoders(data)
	testEncoder(data)
	if ok {
		testEncoder(out)
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders tests that the block and streaming decoders agree on whether
// the input is valid and on what it decodes to.
func testDecoders(data []byte) ([]byte, bool) {
	b1, err1 := huffman.Decompress(data)
	zr := huffman.NewReader(bytes.NewReader(data))
	b2, err2 := io.ReadAll(zr)

	switch {
	case err1 == nil && err2 == nil:
		if !bytes.Equal(b1, b2) {
			panic("mismatching bytes")
		}
		if err := zr.Close(); err != nil {
			panic(err)
		}
		return b1, true
	case err1 != nil && err2 != nil:
		if _, ok := err1.(huffman.Error); !ok {
			panic(err1)
		}
		if err1.Error() != err2.Error() {
			panic("mismatching errors")
		}
		return nil, false
	default:
		panic("decoders disagree on validity")
	}
}

// testEncoder checks that the compressed form of data decodes back to data,
// and that compressing the same input again yields the same bytes.
func testEncoder(data []byte) {
	comp, err := huffman.Compress(data)
	if err != nil {
		panic(err)
	}
	again, err := huffman.Compress(data)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(comp, again) {
		panic("non-deterministic output")
	}

	out, err := huffman.Decompress(comp)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(out, data) {
		panic("mismatching bytes")
	}
}
