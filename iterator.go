// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import (
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"
)

// Iterator drives the per-node decoder node by node in strictly increasing
// node-id order. It is a state machine with two states: Active
// (current < NumNodes) and Exhausted (current == NumNodes). There is no
// reverse transition and no restart on the same Iterator.
//
// Most callers use Pull. Callers who want to avoid the (id, successors, ok)
// tuple copy can instead use the two-call Advance/Successors split directly;
// Pull is implemented in terms of them. A successor-list borrow returned by
// Successors is invalidated by the next Advance; the caller must copy if it
// needs to retain the list past that point.
type Iterator struct {
	graph   *Graph
	dec     Decoder
	refs    *backrefs
	current uint64
	last    []uint64 // borrow lent out by the most recent Advance; nil before the first

	trackChecksum bool
	checksum      uint32
}

func newIterator(g *Graph) *Iterator {
	dec, err := g.factory.NewDecoder()
	if err != nil {
		return &Iterator{graph: g, dec: failedDecoder{err}, refs: newBackrefs(1)}
	}
	return &Iterator{
		graph: g,
		dec:   dec,
		refs:  newBackrefs(g.compressionWindow + 1),
	}
}

// failedDecoder makes a Graph whose factory failed at Iterate time fail
// again, uniformly, on the first Advance rather than panicking immediately.
type failedDecoder struct{ err error }

func (f failedDecoder) ReadOutdegree() (uint64, error)       { return 0, f.err }
func (f failedDecoder) ReadReferenceOffset() (uint64, error) { return 0, f.err }
func (f failedDecoder) ReadBlockCount() (uint64, error)      { return 0, f.err }
func (f failedDecoder) ReadBlock() (uint64, error)           { return 0, f.err }
func (f failedDecoder) ReadIntervalCount() (uint64, error)   { return 0, f.err }
func (f failedDecoder) ReadIntervalStart() (uint64, error)   { return 0, f.err }
func (f failedDecoder) ReadIntervalLen() (uint64, error)     { return 0, f.err }
func (f failedDecoder) ReadFirstResidual() (uint64, error)   { return 0, f.err }
func (f failedDecoder) ReadResidual() (uint64, error)        { return 0, f.err }

// Active reports whether a further Advance can be attempted.
func (it *Iterator) Active() bool { return it.current < it.graph.numNodes }

// Advance decodes the next node's successor list, evicting the oldest entry
// from the back-reference ring and installing the freshly decoded list in
// its place. Call Successors to retrieve the list and CurrentNode to
// retrieve its id. Returns ErrExhausted once the iterator has yielded node
// NumNodes-1.
//
// Advance is the recovery boundary for decodeNode's panic/recover unwinding:
// a failed field read or a corrupt-stream condition panics out of decodeNode
// and is turned back into a returned error here, exactly as flate.Reader.Read
// recovers errRecover around its own step function.
func (it *Iterator) Advance() (err error) {
	if !it.Active() {
		return ErrExhausted
	}
	defer errRecover(&err)
	n := it.current
	out := it.refs.take(n)
	it.last = nil
	out, _ = decodeNode(n, out, it.dec, it.refs, it.graph.compressionWindow, it.graph.minIntervalLength, it.graph.numNodes, false)
	out = it.refs.push(n, out)
	it.current++
	it.last = out
	if it.trackChecksum {
		it.checksum = foldChecksum(it.checksum, out)
	}
	return nil
}

// CurrentNode returns the node id of the list last produced by Advance.
func (it *Iterator) CurrentNode() uint64 {
	if it.current == 0 {
		return 0
	}
	return it.current - 1
}

// Successors returns the successor list borrowed by the most recent
// Advance. It returns ErrMisuse if Advance has not yet been called
// successfully.
func (it *Iterator) Successors() ([]uint64, error) {
	if it.last == nil && it.current == 0 {
		return nil, ErrMisuse
	}
	return it.last, nil
}

// Pull is the single-call convenience form of Advance+Successors: it
// decodes the next node and returns its id and successor list together. ok
// is false once the iterator is Exhausted, in which case id, successors,
// and err are all zero.
func (it *Iterator) Pull() (id uint64, successors []uint64, ok bool, err error) {
	if !it.Active() {
		return 0, nil, false, nil
	}
	n := it.current
	if err := it.Advance(); err != nil {
		return 0, nil, false, err
	}
	return n, it.last, true, nil
}

// BitPosition reports the current bit offset in the stream, if the
// underlying Decoder implements BitPositioner.
func (it *Iterator) BitPosition() (pos int64, ok bool, err error) {
	bp, ok := it.dec.(BitPositioner)
	if !ok {
		return 0, false, nil
	}
	pos, err = bp.BitPosition()
	return pos, true, err
}

// EnableChecksum turns on the running CRC-32 fold over every yielded
// successor list, retrievable via Checksum. It is a diagnostic aid for
// comparing two independently constructed iterators over the same Graph
// (testable property 6), not part of the core decode path.
func (it *Iterator) EnableChecksum() { it.trackChecksum = true }

// Checksum returns the CRC-32 folded over every successor list yielded so
// far. It is only meaningful if EnableChecksum was called before the first
// Advance.
func (it *Iterator) Checksum() uint32 { return it.checksum }

// foldChecksum extends the running checksum acc with one more successor
// list by combining it in, rather than feeding the new bytes back through
// crc32.Update. This mirrors bzip2/common.go's combineCRC, which stitches
// together the independent per-block checksums BZip2 computes in parallel;
// here it lets a caller fold per-node checksums computed out of order (e.g.
// by several goroutines each driving a disjoint IterateFrom range) into one
// whole-graph value, not just sequentially.
func foldChecksum(acc uint32, list []uint64) uint32 {
	buf := make([]byte, 8*len(list))
	for i, v := range list {
		putUint64(buf[i*8:], v)
	}
	next := crc32.ChecksumIEEE(buf)
	return hashutil.CombineCRC32(crc32.IEEE, acc, next, int64(len(buf)))
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// DegreeIterator is the degree-only specialization of Iterator: it drives
// the same decodeNode control flow so stream positions stay coherent, but
// never copies successors, retaining only the running degree.
type DegreeIterator struct {
	graph   *Graph
	dec     Decoder
	refs    *backrefs
	current uint64
	degree  uint64
}

// Active reports whether a further Advance can be attempted.
func (it *DegreeIterator) Active() bool { return it.current < it.graph.numNodes }

// Advance decodes the next node's degree, discarding its successors. It is
// a second recovery boundary for decodeNode's panics, alongside
// Iterator.Advance.
func (it *DegreeIterator) Advance() (err error) {
	if !it.Active() {
		return ErrExhausted
	}
	defer errRecover(&err)
	n := it.current
	_, degree := decodeNode(n, nil, it.dec, it.refs, it.graph.compressionWindow, it.graph.minIntervalLength, it.graph.numNodes, true)
	// The reference phase of later nodes only ever needs the *length* of an
	// earlier node's successor list (to size copy/skip blocks), never its
	// contents, so a zero-valued placeholder of the right length is enough.
	it.refs.push(n, make([]uint64, degree))
	it.degree = degree
	it.current++
	return nil
}

// CurrentNode returns the node id of the degree last produced by Advance.
func (it *DegreeIterator) CurrentNode() uint64 {
	if it.current == 0 {
		return 0
	}
	return it.current - 1
}

// Degree returns the degree of the node last produced by Advance.
func (it *DegreeIterator) Degree() uint64 { return it.degree }
