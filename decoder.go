// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

// Decoder is the capability set the per-node decoding algorithm drives. Each
// method consumes some bits from the underlying stream and returns a plain
// non-negative integer; the concrete choice of variable-length code (gamma,
// delta, zeta-k, unary) backing each field is opaque to this package. See
// internal/codes for a reference implementation of the BV format's own wire
// codes.
//
// Methods are invoked by decodeNode in the exact order documented on that
// function; a Decoder implementation must not reorder or skip reads on its
// own, since doing so desynchronizes the bit position from the stream.
type Decoder interface {
	// ReadOutdegree reads the degree of the current node.
	ReadOutdegree() (uint64, error)

	// ReadReferenceOffset reads the back-reference distance; 0 means no
	// reference. Only invoked when the graph's compression window is
	// non-zero.
	ReadReferenceOffset() (uint64, error)

	// ReadBlockCount reads the number of copy blocks.
	ReadBlockCount() (uint64, error)

	// ReadBlock reads one copy-block length.
	ReadBlock() (uint64, error)

	// ReadIntervalCount reads the number of intervals.
	ReadIntervalCount() (uint64, error)

	// ReadIntervalStart reads a non-negative integer. For a node's first
	// interval it is passed through nat2int to obtain a signed delta from
	// the current node id; for each later interval it is used as is, as the
	// gap from the end of the previous interval.
	ReadIntervalStart() (uint64, error)

	// ReadIntervalLen reads an interval's excess length above the graph's
	// minimum interval length.
	ReadIntervalLen() (uint64, error)

	// ReadFirstResidual reads the first residual, meant to be passed
	// through nat2int to obtain a signed delta from the current node id.
	ReadFirstResidual() (uint64, error)

	// ReadResidual reads a subsequent residual gap.
	ReadResidual() (uint64, error)
}

// BitPositioner is implemented by Decoders that can report their current bit
// offset in the stream, for diagnostics. Implementing it is optional.
type BitPositioner interface {
	BitPosition() (int64, error)
}

// DecoderFactory builds fresh Decoders positioned at the start of the
// bitstream. A Graph calls NewDecoder once per live Iterator, so two
// iterators over the same Graph never share mutable reader state.
type DecoderFactory interface {
	NewDecoder() (Decoder, error)
}
