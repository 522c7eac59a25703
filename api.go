// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a lossless byte compressor based on static
// Huffman coding.
//
// The output of Compress is a self-describing container: it holds the
// original length, the shape of the prefix tree used for coding, and the
// packed bitstream. Decompress needs nothing else to rebuild the input.
//
// Codes are derived from a tree built with a fixed tie-breaking rule, so the
// same input always compresses to the same bytes.
package huffman

import (
	"fmt"

	"github.com/dsnet/huffman/internal/container"
	"github.com/dsnet/huffman/internal/errors"
)

// Error is the wrapper type for errors specific to this library.
type Error interface {
	error
	CompressError()

	// IsEmpty reports whether a prefix tree was requested for an input
	// without any symbols.
	IsEmpty() bool

	// IsMalformed reports whether the input is not a valid container:
	// it is truncated, declares impossible values, or its bitstream does
	// not decode to exactly the declared number of bytes.
	IsMalformed() bool

	// IsUnsupported reports whether the container declares a format version
	// that this package does not implement.
	IsUnsupported() bool
}

var _ Error = errors.Error{}

// Container is the parsed form of a compressed artifact.
type Container = container.Container

// Version is the container format version written by this package.
const Version = container.Version

var errClosed = errors.Error{Code: errors.Closed, Pkg: "huffman"}

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "huffman", Msg: fmt.Sprintf(f, a...)}
}
