// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"container/heap"

	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/errors"
)

// Node is a node in a prefix tree.
//
// A leaf has no children and carries a symbol. An internal node has exactly
// two children and its Sym is meaningless. Cnt is the total frequency of all
// leaves below the node; trees rebuilt from a container have Cnt set to zero.
type Node struct {
	Sym   byte
	Cnt   uint64
	Left  *Node // Reached by a 0 bit
	Right *Node // Reached by a 1 bit
}

// IsLeaf reports whether n carries a symbol.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Leaves returns the leaves of the tree in left-to-right order.
func (n *Node) Leaves() (leaves []*Node) {
	stack := []*Node{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case n == nil:
		case n.IsLeaf():
			leaves = append(leaves, n)
		default:
			stack = append(stack, n.Right, n.Left)
		}
	}
	return leaves
}

// Depth reports the length of the longest root-to-leaf path.
func (n *Node) Depth() (depth int) {
	type frame struct {
		n *Node
		d int
	}
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			continue
		}
		if f.d > depth {
			depth = f.d
		}
		stack = append(stack, frame{f.n.Left, f.d + 1}, frame{f.n.Right, f.d + 1})
	}
	return depth
}

// heapNode orders candidate nodes by count, breaking ties with seq.
// Leaves use their symbol as seq; the k-th internal node uses 256+k.
type heapNode struct {
	*Node
	seq int
}

type nodeHeap []heapNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].Cnt != h[j].Cnt {
		return h[i].Cnt < h[j].Cnt
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapNode)) }
func (h *nodeHeap) Pop() interface{} {
	n := len(*h) - 1
	x := (*h)[n]
	*h = (*h)[:n]
	return x
}

// BuildTree constructs a Huffman tree from the histogram.
//
// The two nodes with the lowest counts are repeatedly merged; the first one
// removed becomes the left child. Equal counts are ordered so that leaves come
// before internal nodes, lower symbols before higher ones, and older internal
// nodes before newer ones. The result is therefore fully determined by f.
//
// If only one symbol is present, the tree is that single leaf.
// It reports an error if no symbol is present.
func BuildTree(f *Frequencies) (*Node, error) {
	h := make(nodeHeap, 0, internal.NumSyms)
	for sym, cnt := range f {
		if cnt > 0 {
			h = append(h, heapNode{&Node{Sym: byte(sym), Cnt: cnt}, sym})
		}
	}
	switch len(h) {
	case 0:
		return nil, errorf(errors.Empty, "no symbols to encode")
	case 1:
		return h[0].Node, nil
	}

	heap.Init(&h)
	for seq := internal.NumSyms; h.Len() > 1; seq++ {
		l := heap.Pop(&h).(heapNode)
		r := heap.Pop(&h).(heapNode)
		heap.Push(&h, heapNode{&Node{Cnt: l.Cnt + r.Cnt, Left: l.Node, Right: r.Node}, seq})
	}
	return h[0].Node, nil
}
