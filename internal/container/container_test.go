// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package container

import (
	"testing"

	"github.com/dsnet/huffman/internal/errors"
	"github.com/dsnet/huffman/internal/prefix"
	"github.com/dsnet/huffman/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUnmarshal(t *testing.T) {
	db := testutil.MustDecodeBitGen
	dh := testutil.MustDecodeHex

	vectors := []struct {
		desc    string // Description of the test
		input   []byte // Test input string
		rawSize uint64 // Expected decompressed length
		tree    string // Expected tree as rendered by Node.String
		pads    uint8  // Expected padding count
		data    []byte // Expected packed data
		errf    func(error) bool
	}{{
		desc: "empty string",
		errf: errors.IsMalformed,
	}, {
		desc: "empty container",
		input: db(`>>> >
			X:48554601 # Magic and version
			D8:0       # RawSize: 0
			D8:0       # Pads: 0
		`),
		tree: "()",
	}, {
		desc: "AAABBC",
		input: db(`>>> >
			X:48554601
			D8:6              # RawSize: 6
			0 1 D8:65         # (A
			0 1 D8:67 1 D8:66 #   (C B))
			000               # Alignment
			D8:7              # Pads: 7
			000 11 11 10 0*7  # A A A B B C
		`),
		rawSize: 6,
		tree:    "(65 (67 66))",
		pads:    7,
		data:    dh("1f00"),
	}, {
		desc:    "single symbol",
		input:   dh("4855460104" + "9500" + "04" + "00"),
		rawSize: 4,
		tree:    "42",
		pads:    4,
		data:    dh("00"),
	}, {
		desc:  "truncated magic",
		input: dh("4855"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "wrong magic",
		input: dh("485547010000"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "unknown version",
		input: dh("485546020000"),
		errf:  errors.IsUnsupported,
	}, {
		desc:  "truncated raw size",
		input: dh("4855460180"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "overflowing raw size",
		input: dh("48554601" + "ffffffffffffffffffff01" + "00"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "missing padding count",
		input: dh("4855460100"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "empty container with trailing data",
		input: dh("48554601000000"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "empty container with padding",
		input: dh("485546010003"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "padding count out of range",
		input: dh("4855460106" + "50543a10" + "08" + "1f00"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "missing data",
		input: dh("4855460106" + "50543a10" + "00"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "truncated tree descriptor",
		input: dh("4855460106" + "5054"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "non-zero descriptor padding",
		input: dh("4855460106" + "50543a11" + "07" + "1f00"),
		errf:  errors.IsMalformed,
	}, {
		desc:  "more symbols than bytes",
		input: dh("4855460102" + "50543a10" + "07" + "1f00"),
		errf:  errors.IsMalformed,
	}, {
		desc: "duplicate symbol",
		input: db(`>>> >
			X:48554601 D8:2
			0 1 D8:65 1 D8:65 0*5 # (A A)
			D8:6 00
		`),
		errf: errors.IsMalformed,
	}, {
		desc: "too many internal nodes",
		input: db(`>>> >
			X:48554601 D8:1
			0*256
		`),
		errf: errors.IsMalformed,
	}}

	for i, v := range vectors {
		c, err := Deserialize(v.input)
		if v.errf != nil {
			if !v.errf(err) {
				t.Errorf("test %d (%s), mismatching error: got %v", i, v.desc, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d (%s), unexpected error: %v", i, v.desc, err)
			continue
		}
		assert.Equal(t, v.rawSize, c.RawSize, "test %d (%s)", i, v.desc)
		assert.Equal(t, v.tree, c.Tree.String(), "test %d (%s)", i, v.desc)
		assert.Equal(t, v.pads, c.Pads, "test %d (%s)", i, v.desc)
		assert.Equal(t, len(v.data), len(c.Data), "test %d (%s)", i, v.desc)
		if len(v.data) > 0 {
			assert.Equal(t, v.data, c.Data, "test %d (%s)", i, v.desc)
		}
	}
}

func TestMarshal(t *testing.T) {
	tree := &prefix.Node{
		Left: &prefix.Node{Sym: 'A'},
		Right: &prefix.Node{
			Left:  &prefix.Node{Sym: 'C'},
			Right: &prefix.Node{Sym: 'B'},
		},
	}
	vectors := []struct {
		desc   string
		input  Container
		output []byte
		errf   func(error) bool
	}{{
		desc:   "empty container",
		output: testutil.MustDecodeHex("485546010000"),
	}, {
		desc:   "AAABBC",
		input:  Serialize(6, tree, 7, []byte{0x1f, 0x00}),
		output: testutil.MustDecodeHex("4855460106" + "50543a10" + "07" + "1f00"),
	}, {
		desc:   "single symbol",
		input:  Serialize(4, &prefix.Node{Sym: 42}, 4, []byte{0x00}),
		output: testutil.MustDecodeHex("4855460104" + "9500" + "04" + "00"),
	}, {
		desc:   "multi-byte raw size",
		input:  Serialize(300, &prefix.Node{Sym: 0}, 4, make([]byte, 38)),
		output: append(testutil.MustDecodeHex("48554601"+"ac02"+"8000"+"04"), make([]byte, 38)...),
	}, {
		desc:  "padding out of range",
		input: Serialize(6, tree, 8, []byte{0x1f, 0x00}),
		errf:  errors.IsInvalid,
	}, {
		desc:  "empty container with data",
		input: Serialize(0, nil, 0, []byte{0x00}),
		errf:  errors.IsInvalid,
	}, {
		desc:  "missing tree",
		input: Serialize(6, nil, 7, []byte{0x1f, 0x00}),
		errf:  errors.IsInvalid,
	}, {
		desc:  "incomplete internal node",
		input: Serialize(1, &prefix.Node{Left: &prefix.Node{Sym: 1}}, 7, []byte{0x00}),
		errf:  errors.IsInvalid,
	}}

	for i, v := range vectors {
		got, err := v.input.MarshalBinary()
		if v.errf != nil {
			if !v.errf(err) {
				t.Errorf("test %d (%s), mismatching error: got %v", i, v.desc, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d (%s), unexpected error: %v", i, v.desc, err)
			continue
		}
		assert.Equal(t, v.output, got, "test %d (%s)", i, v.desc)

		// Every marshaled container must parse back to the same shape.
		c, err := Deserialize(got)
		assert.Nil(t, err, "test %d (%s)", i, v.desc)
		assert.Equal(t, v.input.RawSize, c.RawSize, "test %d (%s)", i, v.desc)
		assert.Equal(t, v.input.Tree.String(), c.Tree.String(), "test %d (%s)", i, v.desc)
		assert.Equal(t, v.input.Pads, c.Pads, "test %d (%s)", i, v.desc)
		assert.Equal(t, len(v.input.Data), len(c.Data), "test %d (%s)", i, v.desc)
	}
}

func TestFullAlphabet(t *testing.T) {
	f := prefix.Count(testutil.NewRand(0).Uniform(256 * 2))
	tree, err := prefix.BuildTree(&f)
	assert.Nil(t, err)

	b, err := (&Container{RawSize: 512, Tree: tree, Data: make([]byte, 512)}).MarshalBinary()
	assert.Nil(t, err)

	// 255 internal bits and 256 leaves of 9 bits each.
	const descLen = (255 + 256*9 + 7) / 8
	assert.Equal(t, hdrLen+2+descLen+1+512, len(b))

	c, err := Deserialize(b)
	assert.Nil(t, err)
	assert.Equal(t, tree.String(), c.Tree.String())
	assert.Equal(t, 256, len(c.Tree.Leaves()))
}
