// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

// Package bvgraph fuzzes internal/codes's Decoder against whatever bytes
// AFL/go-fuzz hands it, checking that a malformed stream only ever produces
// a well-formed error rather than a panic, and that any stream the Decoder
// accepts can be re-encoded and read back to the same successor lists
// (testable property 5), in the shape of
// internal/tool/fuzz/bzip2/bzip2.go's "decode, re-encode, decode again,
// compare" harness.
package bvgraph

import (
	"bytes"

	"github.com/dsnet/bvgraph"
	"github.com/dsnet/bvgraph/internal/codes"
)

func Fuzz(data []byte) int {
	const numNodes = 1 << 16 // large enough that range checks rarely dominate the corpus

	adj, ok := decodeAll(data, numNodes)
	if !ok {
		return 0
	}
	testReencode(adj, numNodes)
	return 1
}

// decodeAll decodes data as a w=0, l=0 stream (matching the encoding
// testutil.EncodeGraph produces) up to numNodes nodes, reporting whether
// every node decoded without error.
func decodeAll(data []byte, numNodes uint64) ([][]uint64, bool) {
	factory := codes.NewFactory(data, codes.DefaultFieldCodes())
	g, err := bvgraph.Open(factory, 0, 0, numNodes, nil)
	if err != nil {
		panic(err)
	}

	var adj [][]uint64
	it := g.Iterate()
	for it.Active() {
		_, succ, ok, err := it.Pull()
		if err != nil {
			return nil, false
		}
		if !ok {
			break
		}
		adj = append(adj, append([]uint64(nil), succ...))
	}
	return adj, true
}

// testReencode re-encodes a successfully decoded graph and checks that
// decoding it again reproduces the same successor lists.
func testReencode(adj [][]uint64, numNodes uint64) {
	fc := codes.DefaultFieldCodes()
	var buf bytes.Buffer
	e := codes.NewEncoder(&buf, fc)
	for i, succ := range adj {
		if err := e.WriteOutdegree(uint64(len(succ))); err != nil {
			panic(err)
		}
		if len(succ) == 0 {
			continue
		}
		if err := e.WriteFirstResidual(int2nat(int64(succ[0]) - int64(i))); err != nil {
			panic(err)
		}
		prev := succ[0]
		for _, s := range succ[1:] {
			if err := e.WriteResidual(s - prev - 1); err != nil {
				panic(err)
			}
			prev = s
		}
	}
	if err := e.Flush(); err != nil {
		panic(err)
	}

	adj2, ok := decodeAll(buf.Bytes(), numNodes)
	if !ok || len(adj2) != len(adj) {
		panic("re-decode failed or length mismatch")
	}
	for i := range adj {
		if len(adj[i]) != len(adj2[i]) {
			panic("re-decode produced a different successor count")
		}
		for j := range adj[i] {
			if adj[i][j] != adj2[i][j] {
				panic("re-decode produced different successors")
			}
		}
	}
}

// int2nat mirrors bvgraph's unexported helper of the same name.
func int2nat(x int64) uint64 {
	if x >= 0 {
		return uint64(x) * 2
	}
	return uint64(-x)*2 - 1
}
