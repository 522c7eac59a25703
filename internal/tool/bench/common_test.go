// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetName(t *testing.T) {
	vectors := []struct {
		file string
		size int
		want string
	}{
		{"huffman.txt", 1e4, "huffman.txt:1e4"},
		{"../testdata/huffman.txt", 1e6, "huffman.txt:1e6"},
	}
	for _, v := range vectors {
		assert.Equal(t, v.want, getName(v.file, v.size))
	}

	// Other sizes use binary prefixes.
	name := getName("skewed.bin", 1<<16)
	assert.Regexp(t, `^skewed\.bin:64 ?Ki`, name)
	assert.NotContains(t, name, ".00")
}

func TestRatioSuite(t *testing.T) {
	Paths = []string{"../../../testdata"}
	defer func() { Paths = nil }()

	codecs := []string{"huff", "std"}
	var ticks int
	results, names := BenchmarkRatioSuite(codecs, []string{"huffman.txt"}, []int{1e4, 1e5}, func() { ticks++ })
	assert.Equal(t, len(codecs)*2, ticks)
	assert.Equal(t, []string{"huffman.txt:1e4", "huffman.txt:1e5"}, names)
	for _, row := range results {
		assert.Len(t, row, len(codecs))
		assert.Greater(t, row[0].R, 1.0, "text must compress")
		assert.Equal(t, 1.0, row[0].D)
	}

	// Missing files yield zero results rather than failing.
	results, _ = BenchmarkRatioSuite(codecs, []string{"missing.bin"}, []int{1e4}, nil)
	assert.Zero(t, results[0][1].R)
}
