// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/bvgraph/internal/codes"
	"github.com/dsnet/bvgraph/internal/testutil"
)

// TestRoundTrip checks that a graph built by internal/testutil's generator,
// written out with internal/codes's Encoder, and read back through
// internal/codes's Decoder reproduces every node's successor list exactly
// (testable property 5).
func TestRoundTrip(t *testing.T) {
	const numNodes = 64

	r := testutil.NewRand(1)
	adj := testutil.GenerateGraph(r, numNodes, 6)

	fc := codes.DefaultFieldCodes()
	var buf bytes.Buffer
	if err := testutil.EncodeGraph(&buf, adj, fc); err != nil {
		t.Fatalf("EncodeGraph: %v", err)
	}

	factory := codes.NewFactory(buf.Bytes(), fc)
	g, err := Open(factory, 0, 0, numNodes, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	it := g.Iterate()
	for n := 0; n < numNodes; n++ {
		id, succ, ok, err := it.Pull()
		if err != nil {
			t.Fatalf("Pull(%d): %v", n, err)
		}
		if !ok {
			t.Fatalf("Pull(%d): iterator exhausted early", n)
		}
		if id != uint64(n) {
			t.Fatalf("Pull(%d): id = %d", n, id)
		}
		want := adj[n]
		if len(succ) == 0 && len(want) == 0 {
			continue
		}
		if diff := cmp.Diff(want, succ); diff != "" {
			t.Fatalf("Pull(%d): successors mismatch (-want +got):\n%s", n, diff)
		}
	}
	if it.Active() {
		t.Fatal("iterator still active after NumNodes pulls")
	}
}

// TestIdempotence checks that two independently constructed iterators over
// the same Graph fold the same CRC-32 checksum over their yielded successor
// lists (testable property 6).
func TestIdempotence(t *testing.T) {
	const numNodes = 64

	r := testutil.NewRand(2)
	adj := testutil.GenerateGraph(r, numNodes, 6)

	fc := codes.DefaultFieldCodes()
	var buf bytes.Buffer
	if err := testutil.EncodeGraph(&buf, adj, fc); err != nil {
		t.Fatalf("EncodeGraph: %v", err)
	}

	factory := codes.NewFactory(buf.Bytes(), fc)
	g, err := Open(factory, 0, 0, numNodes, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	sum := func() uint32 {
		it := g.Iterate()
		it.EnableChecksum()
		for it.Active() {
			if err := it.Advance(); err != nil {
				t.Fatalf("Advance: %v", err)
			}
		}
		return it.Checksum()
	}

	a, b := sum(), sum()
	if a != b {
		t.Fatalf("checksums differ across independent iterators: %d != %d", a, b)
	}
}
