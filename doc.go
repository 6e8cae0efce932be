// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bvgraph implements a sequential reader for the BV compressed-graph
// format, a binary encoding for very large web and social graphs where each
// node's successor list is reconstructed from a reference copy of an earlier
// node's list, runs of consecutive destinations, and residual gap codes.
//
// This package decodes one node at a time in strictly increasing node-id
// order; it never seeks and has no notion of random access. The concrete
// choice of variable-length bit codes (gamma, delta, zeta, unary) is left to
// a pluggable Decoder, so this package can drive any conforming bitstream
// implementation. See the internal/codes package for a reference Decoder
// that implements the BV format's own wire codes.
package bvgraph
