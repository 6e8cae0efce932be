// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codes

import "io"

// Decoder implements bvgraph.Decoder and bvgraph.BitPositioner over a single
// bitstream, dispatching each of the nine fields to the wire code assigned
// to it by its FieldCodes.
type Decoder struct {
	r     *Reader
	codes FieldCodes
}

// NewDecoder returns a Decoder reading from rd under the given field-code
// assignment.
func NewDecoder(rd io.ByteReader, fc FieldCodes) *Decoder {
	return &Decoder{r: NewReader(rd), codes: fc}
}

func (d *Decoder) read(c Code) uint64 {
	switch c {
	case Unary:
		return ReadUnary(d.r)
	case Gamma:
		return ReadGamma(d.r)
	case Delta:
		return ReadDelta(d.r)
	case Zeta:
		return ReadZeta(d.r, d.codes.ZetaK)
	default:
		panic(Error("unknown code"))
	}
}

// BitPosition reports the number of bits consumed so far.
func (d *Decoder) BitPosition() (int64, error) { return d.r.BitPosition() }

func (d *Decoder) ReadOutdegree() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.Outdegree), nil
}

func (d *Decoder) ReadReferenceOffset() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.ReferenceOffset), nil
}

func (d *Decoder) ReadBlockCount() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.BlockCount), nil
}

func (d *Decoder) ReadBlock() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.Block), nil
}

func (d *Decoder) ReadIntervalCount() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.IntervalCount), nil
}

func (d *Decoder) ReadIntervalStart() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.IntervalStart), nil
}

func (d *Decoder) ReadIntervalLen() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.IntervalLen), nil
}

func (d *Decoder) ReadFirstResidual() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.FirstResidual), nil
}

func (d *Decoder) ReadResidual() (v uint64, err error) {
	defer errRecover(&err)
	return d.read(d.codes.Residual), nil
}
