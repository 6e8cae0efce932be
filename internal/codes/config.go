// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codes

// Code identifies one of the four wire codes the BV format allows per field.
type Code int

const (
	Unary Code = iota
	Gamma
	Delta
	Zeta
)

// FieldCodes assigns a wire code to each of the nine fields decodeNode
// reads, matching the BV format's convention of a fixed code per field
// (rather than per record). ZetaK is the k parameter shared by every field
// configured as Zeta; it is ignored otherwise.
type FieldCodes struct {
	Outdegree       Code
	ReferenceOffset Code
	BlockCount      Code
	Block           Code
	IntervalCount   Code
	IntervalStart   Code
	IntervalLen     Code
	FirstResidual   Code
	Residual        Code
	ZetaK           uint
}

// DefaultFieldCodes returns the assignment the reference graphs in the BV
// literature commonly use: gamma for the small structural counters, unary
// for the reference offset (which is usually 0 or 1), and zeta-3 for the
// residual gaps, which tend to follow a Zipfian distribution zeta codes were
// designed for.
func DefaultFieldCodes() FieldCodes {
	return FieldCodes{
		Outdegree:       Gamma,
		ReferenceOffset: Unary,
		BlockCount:      Gamma,
		Block:           Gamma,
		IntervalCount:   Gamma,
		IntervalStart:   Gamma,
		IntervalLen:     Gamma,
		FirstResidual:   Zeta,
		Residual:        Zeta,
		ZetaK:           3,
	}
}
