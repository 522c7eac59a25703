// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
)

// Reader decompresses a single container read from an io.Reader.
// The container is read in its entirety on the first call to Read.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     io.Reader    // Underlying reader
	buf    bytes.Buffer // Compressed bytes read from rd
	toRead []byte       // Uncompressed data ready to be emitted from Read
	done   bool         // Whether the container has been decoded
	err    error        // Persistent error
}

// NewReader creates a new Reader that decompresses the container read from r.
func NewReader(r io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(r)
	return hr
}

func (hr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(hr.toRead) > 0 {
			cnt := copy(buf, hr.toRead)
			hr.toRead = hr.toRead[cnt:]
			hr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if hr.err != nil {
			return 0, hr.err
		}
		if hr.done {
			hr.err = io.EOF
			continue
		}

		cnt, err := hr.buf.ReadFrom(hr.rd)
		hr.InputOffset += cnt
		if err != nil {
			hr.err = err
			continue
		}
		hr.toRead, hr.err = Decompress(hr.buf.Bytes())
		hr.done = true
	}
}

// Close ends the Reader. Reads after Close report an error.
// It does not close the underlying io.Reader.
func (hr *Reader) Close() error {
	if hr.err == io.EOF || hr.err == errClosed {
		hr.toRead = nil // Make sure future reads fail
		hr.err = errClosed
		return nil
	}
	if hr.err == nil {
		hr.toRead = nil
		hr.err = errClosed
		return nil
	}
	return hr.err // Return the persistent error
}

// Reset discards the Reader's state and makes it equivalent to the result of
// NewReader, but reading from r instead.
func (hr *Reader) Reset(r io.Reader) error {
	*hr = Reader{rd: r, buf: hr.buf}
	hr.buf.Reset()
	return nil
}
