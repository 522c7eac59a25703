// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() map[string][]byte {
	rand := testutil.NewRand(0)
	return map[string][]byte{
		"empty":   {},
		"single":  {'x'},
		"zeros":   make([]byte, 1<<17+100),
		"skewed":  rand.Skewed(1 << 18),
		"uniform": rand.Uniform(1 << 16),
		"random":  rand.Bytes(1 << 16),
		"text":    testutil.MustLoadFile("../../../testdata/huffman.txt", 1<<16),
	}
}

// TestCodecs tests that every registered encoder produces output that the
// decoder of the same name restores.
func TestCodecs(t *testing.T) {
	for name, dd := range testData() {
		dd := dd
		t.Run(fmt.Sprintf("Data:%v", name), func(t *testing.T) {
			t.Parallel()
			for _, c := range Codecs() {
				c := c
				t.Run(fmt.Sprintf("Codec:%v", c), func(t *testing.T) {
					de, err := Encode(c, dd)
					require.NoError(t, err)
					output, err := Decode(c, de)
					require.NoError(t, err)
					assert.True(t, bytes.Equal(dd, output), "data mismatch")
				})
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	codecs := Codecs()
	for _, c := range []string{"huff", "std", "kp", "huff0", "zstd", "xz"} {
		assert.Contains(t, codecs, c)
	}

	_, err := Encode("missing", nil)
	assert.Error(t, err)
	_, err = Decode("missing", nil)
	assert.Error(t, err)
}
