// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
)

// Writer compresses everything written to it into a single container.
// The prefix tree depends on the whole input, so nothing reaches the
// underlying io.Writer until Close is called.
type Writer struct {
	InputOffset  int64 // Total number of bytes passed to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr  io.Writer    // Underlying writer
	buf bytes.Buffer // Raw bytes collected until Close
	err error        // Persistent error
}

// NewWriter creates a new Writer that emits a container to w upon Close.
func NewWriter(w io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(w)
	return hw
}

func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	cnt, _ := hw.buf.Write(buf)
	hw.InputOffset += int64(cnt)
	return cnt, nil
}

// Close compresses the buffered input and writes the container.
// It does not close the underlying io.Writer.
func (hw *Writer) Close() error {
	if hw.err == errClosed {
		return nil
	}
	if hw.err != nil {
		return hw.err
	}

	b, err := Compress(hw.buf.Bytes())
	if err != nil {
		hw.err = err
		return err
	}
	cnt, err := hw.wr.Write(b)
	hw.OutputOffset += int64(cnt)
	if err == nil && cnt < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		hw.err = err
		return err
	}
	hw.buf.Reset()
	hw.err = errClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result of
// NewWriter, but writing to w instead.
func (hw *Writer) Reset(w io.Writer) error {
	*hw = Writer{wr: w, buf: hw.buf}
	hw.buf.Reset()
	return nil
}
