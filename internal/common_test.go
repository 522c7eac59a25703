// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import "testing"

func TestReverse(t *testing.T) {
	vectors := []struct {
		in   uint64
		n    uint
		want uint64
	}{
		{0x0, 0, 0x0},
		{0x1, 1, 0x1},
		{0x1, 8, 0x80},
		{0x3, 5, 0x18},
		{0x0123456789abcdef, 64, 0xf7b3d591e6a2c480},
		{0x6, 3, 0x3},
	}
	for i, v := range vectors {
		if got := ReverseUint64N(v.in, v.n); got != v.want {
			t.Errorf("test %d, ReverseUint64N(0x%x, %d): got 0x%x, want 0x%x", i, v.in, v.n, got, v.want)
		}
	}
	for i := range ReverseLUT {
		if got := ReverseLUT[ReverseLUT[i]]; got != IdentityLUT[i] {
			t.Errorf("ReverseLUT is not an involution at %d: got %d", i, got)
		}
	}
}

func TestNumPads(t *testing.T) {
	for n := uint64(0); n < 64; n++ {
		want := uint((8 - n%8) % 8)
		if got := NumPads(n); got != want {
			t.Errorf("NumPads(%d): got %d, want %d", n, got, want)
		}
		if got := DivCeil(int(n), 8)*8 - int(n); uint(got) != want {
			t.Errorf("DivCeil(%d, 8): mismatching padding %d", n, got)
		}
	}
}
