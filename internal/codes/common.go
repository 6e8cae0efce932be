// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package codes implements the instantaneous variable-length integer codes
// used by the BV graph format on the wire: unary, Elias gamma, Elias delta,
// and Vigna's zeta-k. It is a reference Decoder/DecoderFactory/Encoder for
// github.com/dsnet/bvgraph, which otherwise treats the choice of wire code as
// opaque.
package codes

import "runtime"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "codes: " + string(e) }

// ErrCorrupt reports that the bit reader ran into a code whose declared
// length exceeds what a uint64 can hold. Hitting the end of the stream
// mid-code is reported as io.ErrUnexpectedEOF instead.
var ErrCorrupt error = Error("bitstream is corrupted")

// errRecover turns a panic raised by the Reader/Writer call chain into a
// returned error, mirroring the panic-internally/recover-at-the-API-edge
// idiom the reference bit reader is grounded on.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
