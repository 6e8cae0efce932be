// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codes

import (
	"io"

	"github.com/dsnet/bvgraph"
)

// Factory builds Decoders over freshly opened byte streams, satisfying
// bvgraph.DecoderFactory. Open is called once per live Iterator, so it
// should return independent readers (e.g. by re-opening a file or slicing a
// shared in-memory buffer) rather than sharing one across calls.
type Factory struct {
	Open  func() (io.ByteReader, error)
	Codes FieldCodes
}

// NewFactory returns a Factory that re-reads buf from the start for every
// call to NewDecoder, which is the common case for graphs loaded entirely
// into memory.
func NewFactory(buf []byte, fc FieldCodes) *Factory {
	return &Factory{
		Open: func() (io.ByteReader, error) {
			return &byteSliceReader{buf: buf}, nil
		},
		Codes: fc,
	}
}

func (f *Factory) NewDecoder() (bvgraph.Decoder, error) {
	rd, err := f.Open()
	if err != nil {
		return nil, err
	}
	return NewDecoder(rd, f.Codes), nil
}

// byteSliceReader is a minimal io.ByteReader over a slice, avoiding a
// bytes.Reader allocation's unused Read/Seek surface for the common case of
// decoding a graph held entirely in memory.
type byteSliceReader struct {
	buf []byte
	pos int
}

func (r *byteSliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}
