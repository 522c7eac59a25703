// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/dsnet/huffman"
)

func Example() {
	input := []byte("AAABBC")

	comp, err := huffman.Compress(input)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x\n", comp)

	output, err := huffman.Decompress(comp)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", output)

	// Output:
	// 485546010650543a10071f00
	// AAABBC
}

func ExampleCompressContainer() {
	c, err := huffman.CompressContainer([]byte("AAABBC"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.RawSize, c.Tree, c.Pads)

	// Output:
	// 6 (65 (67 66)) 7
}

func ExampleNewWriter() {
	var bb bytes.Buffer
	zw := huffman.NewWriter(&bb)
	io.WriteString(zw, "hello, ")
	io.WriteString(zw, "world")
	if err := zw.Close(); err != nil {
		log.Fatal(err)
	}

	zr := huffman.NewReader(&bb)
	output, err := io.ReadAll(zr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", output)

	// Output:
	// hello, world
}
