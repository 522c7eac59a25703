// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates skewed.bin. Byte values in this file follow a roughly geometric
// distribution, so prefix coding shrinks it well. Symbols are drawn
// independently, so there are few repeated strings for LZ77 to exploit.
package main

import (
	"math/rand"
	"os"
)

const (
	name = "skewed.bin"
	size = 1 << 18
)

func main() {
	var r = rand.New(rand.NewSource(0))

	// Most symbols come from a small alphabet. A few are drawn from the full
	// byte range so that long codes appear as well.
	randSym := func() byte {
		p := r.Float32()
		switch {
		case p <= 0.95:
			var c byte
			for c < 63 && r.Intn(3) != 0 {
				c++
			}
			return 'A' + c
		default:
			return byte(r.Int())
		}
	}

	b := make([]byte, size)
	for i := range b {
		b[i] = randSym()
	}

	if err := os.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
