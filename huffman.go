// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/dsnet/huffman/internal/container"
	"github.com/dsnet/huffman/internal/errors"
	"github.com/dsnet/huffman/internal/prefix"
)

// Compress encodes b into a container.
// An empty input produces a container that only holds the header.
func Compress(b []byte) ([]byte, error) {
	c, err := CompressContainer(b)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Decompress decodes a container produced by Compress.
func Decompress(b []byte) ([]byte, error) {
	c, err := container.Deserialize(b)
	if err != nil {
		return nil, err
	}
	return DecompressContainer(&c)
}

// CompressContainer runs the compression pipeline on b without encoding the
// result into bytes.
func CompressContainer(b []byte) (c Container, err error) {
	defer errors.Recover(&err)

	if len(b) == 0 {
		return container.Serialize(0, nil, 0, nil), nil
	}

	freqs := prefix.Count(b)
	tree, err := prefix.BuildTree(&freqs)
	if err != nil {
		return Container{}, err
	}
	codes, err := prefix.GenerateCodes(tree)
	if err != nil {
		return Container{}, err
	}

	var pw prefix.Writer
	pw.Grow(codes.BitLength(&freqs))
	for _, sym := range b {
		pw.WriteCode(codes[sym])
	}
	pads := pw.Align()
	return container.Serialize(uint64(len(b)), tree, uint8(pads), pw.Bytes()), nil
}

// DecompressContainer decodes the data of c by walking its tree: a 0 bit
// moves left, a 1 bit moves right, and reaching a leaf emits its symbol and
// returns to the root. A tree made of a single leaf accepts only 0 bits.
//
// The bitstream must decode to exactly c.RawSize bytes, use every symbol of
// the tree, and end on a symbol boundary.
func DecompressContainer(c *Container) ([]byte, error) {
	if c.RawSize == 0 {
		if c.Tree != nil || c.Pads != 0 || len(c.Data) > 0 {
			return nil, errorf(errors.Malformed, "trailing data in empty container")
		}
		return []byte{}, nil
	}
	if c.Tree == nil {
		return nil, errorf(errors.Malformed, "missing prefix tree")
	}

	var pr prefix.Reader
	if err := pr.Init(c.Data, uint(c.Pads)); err != nil {
		return nil, err
	}

	// Every symbol takes at least one bit, which bounds the allocation.
	if c.RawSize > pr.BitsRemaining() {
		return nil, errorf(errors.Malformed, "%d bits cannot hold %d bytes", pr.BitsRemaining(), c.RawSize)
	}
	out := make([]byte, 0, c.RawSize)

	var used [256]bool
	root := c.Tree
	for n := root; uint64(len(out)) < c.RawSize; {
		bit, err := pr.ReadBit()
		if err == io.EOF {
			if n != root {
				return nil, errorf(errors.Malformed, "bitstream ends mid-code")
			}
			return nil, errorf(errors.Malformed, "bitstream ends after %d of %d bytes", len(out), c.RawSize)
		}
		if err != nil {
			return nil, err
		}

		switch {
		case root.IsLeaf():
			if bit {
				return nil, errorf(errors.Malformed, "invalid code for single-symbol tree")
			}
		case bit:
			n = n.Right
		default:
			n = n.Left
		}
		if n == nil {
			return nil, errorf(errors.Malformed, "code leads to a missing node")
		}
		if n.IsLeaf() {
			out = append(out, n.Sym)
			used[n.Sym] = true
			n = root
		}
	}
	if pr.BitsRemaining() > 0 {
		return nil, errorf(errors.Malformed, "%d trailing bits after %d bytes", pr.BitsRemaining(), c.RawSize)
	}
	for _, l := range root.Leaves() {
		if !used[l.Sym] {
			return nil, errorf(errors.Malformed, "tree holds unused symbol %d", l.Sym)
		}
	}
	return out, nil
}
