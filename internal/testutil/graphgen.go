// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"io"
	"sort"

	"github.com/dsnet/bvgraph/internal/codes"
)

// GenerateGraph produces a random adjacency list of numNodes nodes, each
// with a uniformly chosen degree in [0, maxDegree] and that many distinct,
// sorted successors drawn from the full node range. It is deterministic for
// a given Rand, so a failing test can be reproduced from its seed alone.
func GenerateGraph(r *Rand, numNodes, maxDegree int) [][]uint64 {
	adj := make([][]uint64, numNodes)
	for n := 0; n < numNodes; n++ {
		degree := r.Intn(maxDegree + 1)
		if degree == 0 {
			continue
		}
		perm := r.Perm(numNodes)
		succ := make([]uint64, degree)
		for i := 0; i < degree; i++ {
			succ[i] = uint64(perm[i])
		}
		sort.Slice(succ, func(i, j int) bool { return succ[i] < succ[j] })
		adj[n] = succ
	}
	return adj
}

// EncodeGraph writes adj to wr as a w=0, l=0 BV stream: every node's
// successors are expressed purely through the first-residual/residual-gap
// fields, skipping the reference and interval phases entirely. This is a
// deliberately uncompressed encoding — it exists to exercise decodeNode's
// residual path against arbitrary graphs, not to demonstrate real
// compression ratios (that is internal/tool/bench's job).
func EncodeGraph(wr io.ByteWriter, adj [][]uint64, fc codes.FieldCodes) error {
	e := codes.NewEncoder(wr, fc)
	for n, succ := range adj {
		if err := e.WriteOutdegree(uint64(len(succ))); err != nil {
			return err
		}
		if len(succ) == 0 {
			continue
		}
		first := int2nat(int64(succ[0]) - int64(n))
		if err := e.WriteFirstResidual(first); err != nil {
			return err
		}
		prev := succ[0]
		for _, s := range succ[1:] {
			if err := e.WriteResidual(s - prev - 1); err != nil {
				return err
			}
			prev = s
		}
	}
	return e.Flush()
}

// int2nat mirrors bvgraph's unexported helper of the same name: it maps a
// signed delta onto the naturals so every code in internal/codes, which only
// carries non-negative values, can represent it.
func int2nat(x int64) uint64 {
	if x >= 0 {
		return uint64(x) * 2
	}
	return uint64(-x)*2 - 1
}
