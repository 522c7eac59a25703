// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
)

// PrefixCode is the code assigned to a single symbol.
// The Len lowest bits of Val hold the code with the first bit to be written
// in the most-significant position.
type PrefixCode struct {
	Sym byte  // The symbol being mapped
	Len uint8 // Bit-length of the prefix code
	Val uint64
}

// CodeTable maps every byte value to its prefix code.
// Symbols that never occurred have a zero Len.
type CodeTable [256]PrefixCode

// GenerateCodes walks the tree and assigns each leaf the path that reaches
// it, where a left branch is a 0 bit and a right branch is a 1 bit.
// A tree made of a single leaf assigns the 1-bit code "0" to that leaf.
func GenerateCodes(root *Node) (ct CodeTable, err error) {
	if root == nil {
		return ct, errorf(errors.Invalid, "nil prefix tree")
	}
	if root.IsLeaf() {
		ct[root.Sym] = PrefixCode{Sym: root.Sym, Len: 1}
		return ct, nil
	}

	type frame struct {
		n   *Node
		val uint64
		len uint8
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.IsLeaf() {
			ct[f.n.Sym] = PrefixCode{Sym: f.n.Sym, Len: f.len, Val: f.val}
			continue
		}
		if f.n.Left == nil || f.n.Right == nil {
			return CodeTable{}, errorf(errors.Invalid, "internal node with a single child")
		}
		if f.len >= internal.MaxCodeLen {
			return CodeTable{}, errorf(errors.Internal, "code longer than %d bits", internal.MaxCodeLen)
		}
		stack = append(stack,
			frame{f.n.Right, f.val<<1 | 1, f.len + 1},
			frame{f.n.Left, f.val << 1, f.len + 1},
		)
	}
	return ct, nil
}

// Codes returns the codes of all present symbols in ascending symbol order.
func (ct *CodeTable) Codes() (pc []PrefixCode) {
	for _, c := range ct {
		if c.Len > 0 {
			pc = append(pc, c)
		}
	}
	return pc
}

// Inverse returns the decoding map of the table.
// Keys are codes with the Sym field cleared.
func (ct *CodeTable) Inverse() map[PrefixCode]byte {
	m := make(map[PrefixCode]byte)
	for _, c := range ct.Codes() {
		m[PrefixCode{Len: c.Len, Val: c.Val}] = c.Sym
	}
	return m
}

// BitLength reports the number of bits needed to encode an input with the
// given histogram.
func (ct *CodeTable) BitLength(f *Frequencies) (n uint64) {
	for sym, cnt := range f {
		n += cnt * uint64(ct[sym].Len)
	}
	return n
}
