// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"
	"strings"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func padBase2(v uint64, n uint8, m int) string {
	var s string
	if n > 0 {
		s = fmt.Sprintf(fmt.Sprintf("%%0%db", n), v)
	}
	if pad := m - len(s); pad > 0 {
		s = s + strings.Repeat(" ", pad)
	}
	return s
}

// String renders the tree in pre-order, with internal nodes as parenthesized
// pairs and leaves as their symbol value.
//
//	(65 (67 66))
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	var sb strings.Builder
	stack := []interface{}{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch x := x.(type) {
		case string:
			sb.WriteString(x)
		case *Node:
			if x == nil {
				sb.WriteString("()")
				continue
			}
			if x.IsLeaf() {
				fmt.Fprintf(&sb, "%d", x.Sym)
				continue
			}
			sb.WriteString("(")
			stack = append(stack, ")", x.Right, " ", x.Left)
		}
	}
	return sb.String()
}

// String renders the present codes, one per line.
func (ct *CodeTable) String() string {
	codes := ct.Codes()
	var maxLen int
	for _, c := range codes {
		if maxLen < int(c.Len) {
			maxLen = int(c.Len)
		}
	}

	var ss []string
	ss = append(ss, "{")
	for _, c := range codes {
		ss = append(ss, fmt.Sprintf("\t%s:  %s,",
			padBase10(c.Sym, lenBase10(255)),
			padBase2(c.Val, c.Len, maxLen),
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}

// String renders the present symbols of f with a bar proportional to their
// counts.
func (f *Frequencies) String() string {
	var maxCnt uint64
	for _, c := range f {
		if maxCnt < c {
			maxCnt = c
		}
	}
	maxCntStr := lenBase10(int(maxCnt))

	var ss []string
	ss = append(ss, "{")
	for sym, c := range f {
		if c == 0 {
			continue
		}
		bar := int(32*float64(c)/float64(maxCnt) + 0.5)
		ss = append(ss, fmt.Sprintf("\t%s:  %s |%s",
			padBase10(sym, lenBase10(255)),
			padBase10(c, maxCntStr),
			strings.Repeat("#", bar),
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
