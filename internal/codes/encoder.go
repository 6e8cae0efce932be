// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codes

import "io"

// Encoder is the write-side counterpart of Decoder, used by tests and
// internal/tool/fuzz to produce streams that Decoder can read back, and by
// internal/testutil's synthetic graph builder.
type Encoder struct {
	w     *Writer
	codes FieldCodes
}

// NewEncoder returns an Encoder appending to wr under the given field-code
// assignment.
func NewEncoder(wr io.ByteWriter, fc FieldCodes) *Encoder {
	return &Encoder{w: NewWriter(wr), codes: fc}
}

func (e *Encoder) write(c Code, x uint64) {
	switch c {
	case Unary:
		WriteUnary(e.w, x)
	case Gamma:
		WriteGamma(e.w, x)
	case Delta:
		WriteDelta(e.w, x)
	case Zeta:
		WriteZeta(e.w, x, e.codes.ZetaK)
	default:
		panic(Error("unknown code"))
	}
}

// Flush pads and writes out any partial final byte. Callers must call it
// after the last field of the last node.
func (e *Encoder) Flush() (err error) {
	defer errRecover(&err)
	e.w.Flush()
	return nil
}

func (e *Encoder) WriteOutdegree(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.Outdegree, x)
	return nil
}

func (e *Encoder) WriteReferenceOffset(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.ReferenceOffset, x)
	return nil
}

func (e *Encoder) WriteBlockCount(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.BlockCount, x)
	return nil
}

func (e *Encoder) WriteBlock(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.Block, x)
	return nil
}

func (e *Encoder) WriteIntervalCount(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.IntervalCount, x)
	return nil
}

func (e *Encoder) WriteIntervalStart(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.IntervalStart, x)
	return nil
}

func (e *Encoder) WriteIntervalLen(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.IntervalLen, x)
	return nil
}

func (e *Encoder) WriteFirstResidual(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.FirstResidual, x)
	return nil
}

func (e *Encoder) WriteResidual(x uint64) (err error) {
	defer errRecover(&err)
	e.write(e.codes.Residual, x)
	return nil
}
