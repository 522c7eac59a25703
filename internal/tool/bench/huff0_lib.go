// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kp_lib
// +build !no_kp_lib

package bench

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/klauspost/compress/huff0"
)

// The huff0 package only codes single blocks, so the "huff0" codec frames
// each block as:
//	mode    byte     // One of the block modes below
//	rawLen  uvarint  // Number of decoded bytes
//	compLen uvarint  // Number of payload bytes, only for modeHuff
//	payload []byte   // Table and 1X stream for modeHuff, raw bytes for modeRaw
const (
	modeRaw  = 0
	modeRLE  = 1 // Payload is the single repeated byte
	modeHuff = 2
)

var errHuff0Corrupt = errors.New("huff0: corrupted block")

func init() {
	RegisterEncoder("huff0",
		func(w io.Writer) io.WriteCloser {
			return &huff0Writer{wr: w}
		})
	RegisterDecoder("huff0",
		func(r io.Reader) io.ReadCloser {
			return &huff0Reader{rd: bufio.NewReader(r)}
		})
}

type huff0Writer struct {
	wr  io.Writer
	buf []byte
	s   huff0.Scratch
	err error
}

func (hw *huff0Writer) Write(buf []byte) (int, error) {
	cnt := len(buf)
	for len(buf) > 0 && hw.err == nil {
		n := huff0.BlockSizeMax - len(hw.buf)
		if n > len(buf) {
			n = len(buf)
		}
		hw.buf = append(hw.buf, buf[:n]...)
		buf = buf[n:]
		if len(hw.buf) == huff0.BlockSizeMax {
			hw.flush()
		}
	}
	if hw.err != nil {
		return 0, hw.err
	}
	return cnt, nil
}

func (hw *huff0Writer) Close() error {
	if hw.err == nil && len(hw.buf) > 0 {
		hw.flush()
	}
	return hw.err
}

func (hw *huff0Writer) flush() {
	hdr := binary.AppendUvarint([]byte{modeHuff}, uint64(len(hw.buf)))
	var payload []byte

	hw.s.Reuse = huff0.ReusePolicyNone
	out, _, err := huff0.Compress1X(hw.buf, &hw.s)
	switch err {
	case nil:
		hdr = binary.AppendUvarint(hdr, uint64(len(out)))
		payload = out
	case huff0.ErrUseRLE:
		hdr[0] = modeRLE
		payload = hw.buf[:1]
	case huff0.ErrIncompressible:
		hdr[0] = modeRaw
		payload = hw.buf
	default:
		hw.err = err
		return
	}
	if _, hw.err = hw.wr.Write(hdr); hw.err == nil {
		_, hw.err = hw.wr.Write(payload)
	}
	hw.buf = hw.buf[:0]
}

type huff0Reader struct {
	rd     *bufio.Reader
	toRead []byte
	s      huff0.Scratch
	err    error
}

func (hr *huff0Reader) Read(buf []byte) (int, error) {
	for len(hr.toRead) == 0 && hr.err == nil {
		hr.toRead, hr.err = hr.readBlock()
	}
	if len(hr.toRead) > 0 {
		cnt := copy(buf, hr.toRead)
		hr.toRead = hr.toRead[cnt:]
		return cnt, nil
	}
	return 0, hr.err
}

func (hr *huff0Reader) Close() error {
	if hr.err == io.EOF {
		return nil
	}
	return hr.err
}

func (hr *huff0Reader) readBlock() ([]byte, error) {
	mode, err := hr.rd.ReadByte()
	if err != nil {
		return nil, err // Clean io.EOF between blocks
	}
	rawLen, err := binary.ReadUvarint(hr.rd)
	if err != nil || rawLen == 0 || rawLen > huff0.BlockSizeMax {
		return nil, errHuff0Corrupt
	}

	switch mode {
	case modeRaw:
		b := make([]byte, rawLen)
		if _, err := io.ReadFull(hr.rd, b); err != nil {
			return nil, errHuff0Corrupt
		}
		return b, nil
	case modeRLE:
		c, err := hr.rd.ReadByte()
		if err != nil {
			return nil, errHuff0Corrupt
		}
		b := make([]byte, rawLen)
		for i := range b {
			b[i] = c
		}
		return b, nil
	case modeHuff:
		compLen, err := binary.ReadUvarint(hr.rd)
		if err != nil || compLen > huff0.BlockSizeMax {
			return nil, errHuff0Corrupt
		}
		b := make([]byte, compLen)
		if _, err := io.ReadFull(hr.rd, b); err != nil {
			return nil, errHuff0Corrupt
		}
		s, remain, err := huff0.ReadTable(b, &hr.s)
		if err != nil {
			return nil, err
		}
		out, err := s.Decompress1X(remain)
		if err != nil {
			return nil, err
		}
		if uint64(len(out)) != rawLen {
			return nil, errHuff0Corrupt
		}
		return append([]byte(nil), out...), nil
	default:
		return nil, errHuff0Corrupt
	}
}
