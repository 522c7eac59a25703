// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build go1.18
// +build go1.18

package huffman

import (
	"bytes"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
)

func FuzzRoundTrip(f *testing.F) {
	for _, input := range testInputs() {
		f.Add(input)
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		comp, err := Compress(input)
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		output, err := Decompress(comp)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(input, output) {
			t.Fatalf("mismatching output:\ngot  %x\nwant %x", output, input)
		}
	})
}

func FuzzDecompress(f *testing.F) {
	f.Add(testutil.MustDecodeHex("485546010000"))
	f.Add(testutil.MustDecodeHex("4855460106" + "50543a10" + "07" + "1f00"))
	f.Add(testutil.MustDecodeHex("4855460104" + "9500" + "04" + "00"))
	f.Fuzz(func(t *testing.T, input []byte) {
		output, err := Decompress(input)
		if err != nil {
			if _, ok := err.(Error); !ok {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}

		// Any accepted container must be the canonical encoding of its output.
		comp, err := Compress(output)
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		got, err := Decompress(comp)
		if err != nil || !bytes.Equal(got, output) {
			t.Fatalf("re-encoded container does not round-trip: %v", err)
		}
	})
}
