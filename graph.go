// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

// Graph is an immutable descriptor for a BV-encoded graph: the decoder
// factory plus the three format parameters needed to drive it. A Graph may
// be shared freely by many concurrently live iterators, because each
// Iterate/IterateFrom call obtains a fresh Decoder from the factory and owns
// its own backrefs ring; no field of Graph is mutated after Open returns.
type Graph struct {
	factory           DecoderFactory
	numNodes          uint64
	numArcsHint       uint64
	hasNumArcsHint    bool
	compressionWindow uint64
	minIntervalLength uint64
}

// Open constructs a Graph descriptor. factory must build a fresh Decoder
// positioned at the start of the bitstream on every call. numArcsHint is
// advisory only (pass nil when unknown) and must never be enforced against
// the actual number of arcs decoded.
func Open(factory DecoderFactory, compressionWindow, minIntervalLength, numNodes uint64, numArcsHint *uint64) (*Graph, error) {
	g := &Graph{
		factory:           factory,
		numNodes:          numNodes,
		compressionWindow: compressionWindow,
		minIntervalLength: minIntervalLength,
	}
	if numArcsHint != nil {
		g.numArcsHint = *numArcsHint
		g.hasNumArcsHint = true
	}
	return g, nil
}

// NumNodes returns the upper bound on iteration length fixed at construction.
func (g *Graph) NumNodes() uint64 { return g.numNodes }

// NumArcsHint returns the advisory arc count supplied at construction, if
// any. It is never validated against the arcs actually decoded.
func (g *Graph) NumArcsHint() (uint64, bool) { return g.numArcsHint, g.hasNumArcsHint }

// Iterate returns a new Iterator positioned at node 0.
func (g *Graph) Iterate() *Iterator {
	return newIterator(g)
}

// IterateFrom returns a new Iterator positioned at node k, by pulling and
// discarding k results from a fresh iterator. This is the only way to
// advance, since no offset index is consulted by this sequential core.
func (g *Graph) IterateFrom(k uint64) (*Iterator, error) {
	it := newIterator(g)
	for i := uint64(0); i < k; i++ {
		if err := it.Advance(); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// IterateDegrees returns a degree-only iterator positioned at node 0. It
// shares decodeNode with Iterator but skips copying reference and interval
// destinations, retaining only the running degree count.
func (g *Graph) IterateDegrees() (*DegreeIterator, error) {
	dec, err := g.factory.NewDecoder()
	if err != nil {
		return nil, err
	}
	return &DegreeIterator{
		graph: g,
		dec:   dec,
		refs:  newBackrefs(g.compressionWindow + 1),
	}, nil
}
