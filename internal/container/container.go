// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package container implements the self-describing Huffman container format.
//
// A container carries everything needed to decode it:
//
//	magic    3 bytes   "HUF"
//	version  1 byte    currently 1
//	rawSize  uvarint   length of the decompressed output
//	tree     variable  pre-order tree descriptor, zero padded to a byte
//	pads     1 byte    number of padding bits in the last data byte (0..7)
//	data     rest      Huffman coded bitstream, MSB-first
//
// The tree descriptor writes a 0 bit for an internal node, followed by its
// left and then its right subtree, and a 1 bit followed by the 8-bit symbol
// for a leaf. It is omitted entirely when rawSize is zero.
package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
	"github.com/dsnet/huffman/internal/prefix"
)

const (
	magic   = "HUF"
	hdrLen  = len(magic) + 1
	Version = 1

	// A full binary tree over the byte alphabet has at most this many
	// internal nodes.
	maxInternal = internal.NumSyms - 1
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "container", Msg: fmt.Sprintf(f, a...)}
}

// Container is the decoded form of a compressed artifact.
//
// The zero value is the container for an empty input.
type Container struct {
	RawSize uint64       // Number of bytes the data decodes to
	Tree    *prefix.Node // Nil if and only if RawSize is zero
	Pads    uint8        // Padding bits in the last byte of Data
	Data    []byte
}

// Serialize assembles a container from the outputs of the compression
// pipeline.
func Serialize(rawSize uint64, tree *prefix.Node, pads uint8, data []byte) Container {
	return Container{RawSize: rawSize, Tree: tree, Pads: pads, Data: data}
}

// Deserialize parses b into a Container. The Data of the result aliases b.
func Deserialize(b []byte) (Container, error) {
	var c Container
	if err := c.UnmarshalBinary(b); err != nil {
		return Container{}, err
	}
	return c, nil
}

// MarshalBinary encodes the container in the wire format.
func (c *Container) MarshalBinary() (b []byte, err error) {
	defer errors.Recover(&err)

	switch {
	case c.Pads > 7:
		return nil, errorf(errors.Invalid, "padding count %d out of range", c.Pads)
	case c.RawSize == 0 && (c.Tree != nil || c.Pads != 0 || len(c.Data) > 0):
		return nil, errorf(errors.Invalid, "empty container with payload")
	case c.RawSize > 0 && (c.Tree == nil || len(c.Data) == 0):
		return nil, errorf(errors.Invalid, "missing tree or data for %d bytes", c.RawSize)
	}

	b = make([]byte, 0, hdrLen+binary.MaxVarintLen64+internal.NumSyms*2+1+len(c.Data))
	b = append(b, magic...)
	b = append(b, Version)
	b = binary.AppendUvarint(b, c.RawSize)
	if c.Tree != nil {
		b = append(b, encodeTree(c.Tree)...)
	}
	b = append(b, c.Pads)
	b = append(b, c.Data...)
	return b, nil
}

// UnmarshalBinary decodes the wire format into c. The Data field aliases b.
func (c *Container) UnmarshalBinary(b []byte) (err error) {
	defer errors.Recover(&err)

	*c = Container{}
	if len(b) < hdrLen || string(b[:len(magic)]) != magic {
		return errorf(errors.Malformed, "missing magic header")
	}
	if v := b[len(magic)]; v != Version {
		return errorf(errors.Unsupported, "version %d", v)
	}
	b = b[hdrLen:]

	rawSize, n := binary.Uvarint(b)
	if n <= 0 {
		return errorf(errors.Malformed, "invalid raw size")
	}
	b = b[n:]

	var tree *prefix.Node
	if rawSize > 0 {
		tree, n = decodeTree(b, rawSize)
		b = b[n:]
	}

	if len(b) == 0 {
		return errorf(errors.Malformed, "missing padding count")
	}
	pads, data := b[0], b[1:]
	switch {
	case pads > 7:
		return errorf(errors.Malformed, "padding count %d out of range", pads)
	case rawSize == 0 && (pads != 0 || len(data) > 0):
		return errorf(errors.Malformed, "trailing data in empty container")
	case rawSize > 0 && len(data) == 0:
		return errorf(errors.Malformed, "missing data for %d bytes", rawSize)
	}

	*c = Serialize(rawSize, tree, pads, data)
	return nil
}

// encodeTree produces the byte-aligned descriptor of the tree.
func encodeTree(root *prefix.Node) []byte {
	var pw prefix.Writer
	stack := []*prefix.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case n.IsLeaf():
			pw.WriteBits(1, 1)
			pw.WriteBits(uint64(n.Sym), 8)
		case n.Left != nil && n.Right != nil:
			pw.WriteBits(0, 1)
			stack = append(stack, n.Right, n.Left)
		default:
			errors.Panic(errorf(errors.Invalid, "internal node with a single child"))
		}
	}
	pw.Align()
	return pw.Bytes()
}

// decodeTree parses the descriptor at the start of b and reports the number
// of bytes it occupied. The tree must not hold more symbols than the rawSize
// bytes it is meant to decode.
func decodeTree(b []byte, rawSize uint64) (*prefix.Node, int) {
	var pr prefix.Reader
	if err := pr.Init(b, 0); err != nil {
		errors.Panic(err)
	}
	readBits := func(n uint) uint64 {
		v, err := pr.ReadBits(n)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			errors.Panic(errorf(errors.Malformed, "truncated tree descriptor"))
		}
		if err != nil {
			errors.Panic(err)
		}
		return v
	}

	var seen [256]bool
	var numLeaves, numInternal int
	root := new(prefix.Node)
	stack := []*prefix.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if readBits(1) == 1 {
			sym := byte(readBits(8))
			if seen[sym] {
				errors.Panic(errorf(errors.Malformed, "duplicate symbol %d in tree", sym))
			}
			seen[sym] = true
			n.Sym = sym
			numLeaves++
			continue
		}
		if numInternal++; numInternal > maxInternal {
			errors.Panic(errorf(errors.Malformed, "tree has more than %d internal nodes", maxInternal))
		}
		n.Left, n.Right = new(prefix.Node), new(prefix.Node)
		stack = append(stack, n.Right, n.Left)
	}
	if uint64(numLeaves) > rawSize {
		errors.Panic(errorf(errors.Malformed, "tree declares %d symbols for %d bytes", numLeaves, rawSize))
	}
	if zeros, err := pr.ReadAligned(); err != nil || !zeros {
		errors.Panic(errorf(errors.Malformed, "non-zero tree descriptor padding"))
	}
	return root, int(pr.BitsRead() / 8)
}
