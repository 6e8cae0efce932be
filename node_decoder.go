// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bvgraph

import "sort"

// decodeNode reconstructs the sorted successor list of node n into out (an
// empty, recycled slice) by reading its BV-encoded record from dec in the
// exact field order fixed by the format: outdegree; reference offset; block
// count; blocks; interval count; first interval start/length; subsequent
// interval (gap, length) pairs; first residual; residual gaps.
//
// refs must already contain valid entries for every node within w positions
// before n. w == 0 disables the reference phase; l == 0 disables the
// interval phase. skipCopies, when set, still consumes every field from the
// stream and tracks how many successors each phase contributes (so interval
// and residual counts stay correct) but never appends to out; this is the
// degree-only specialization, which only needs the final count to match
// degree, not the successors themselves.
//
// decodeNode unwinds on the first read error or corrupt-stream condition by
// panicking rather than threading an error return through every field read;
// mustRead converts a failed dec.ReadX() into a panic, and format violations
// panic directly with a *DecodeError. The caller is responsible for
// recovering with errRecover at the package's public API boundary
// (Iterator.Advance, DegreeIterator.Advance).
func decodeNode(n uint64, out []uint64, dec Decoder, refs *backrefs, w, l, numNodes uint64, skipCopies bool) ([]uint64, uint64) {
	degree := mustRead(dec.ReadOutdegree())
	if degree == 0 {
		return out, 0
	}
	if !skipCopies && cap(out) < int(degree) {
		grown := make([]uint64, len(out), degree)
		copy(grown, out)
		out = grown
	}

	var count uint64 // successors assembled so far, tracked even when skipCopies discards them

	if w != 0 {
		ref := mustRead(dec.ReadReferenceOffset())
		if ref != 0 {
			if ref > w || ref > n {
				panic(&DecodeError{n, "reference", ErrCorrupt})
			}
			src, err := refs.lookup(n - ref)
			if err != nil {
				panic(&DecodeError{n, "reference", err})
			}

			blockCount := mustRead(dec.ReadBlockCount())
			if blockCount == 0 {
				if !skipCopies {
					out = append(out, src...)
				}
				count += uint64(len(src))
			} else {
				idx := mustRead(dec.ReadBlock())
				if idx > uint64(len(src)) {
					panic(&DecodeError{n, "reference", ErrCorrupt})
				}
				if !skipCopies {
					out = append(out, src[:idx]...)
				}
				count += idx
				for i := uint64(1); i < blockCount; i++ {
					block := mustRead(dec.ReadBlock())
					end := idx + block + 1
					if end > uint64(len(src)) {
						panic(&DecodeError{n, "reference", ErrCorrupt})
					}
					if i%2 == 0 {
						if !skipCopies {
							out = append(out, src[idx:end]...)
						}
						count += end - idx
					}
					idx = end
				}
				if blockCount%2 == 0 {
					if !skipCopies {
						out = append(out, src[idx:]...)
					}
					count += uint64(len(src)) - idx
				}
			}
		}
	}

	remaining := degree - count
	if remaining != 0 && l != 0 {
		intervalCount := mustRead(dec.ReadIntervalCount())
		if intervalCount != 0 {
			startOff := mustRead(dec.ReadIntervalStart())
			start, ok := addSigned(n, nat2int(startOff))
			if !ok {
				panic(&DecodeError{n, "interval", ErrCorrupt})
			}

			delta := mustRead(dec.ReadIntervalLen())
			delta += l
			if !skipCopies {
				out = appendRange(out, start, delta)
			}
			count += delta
			start += delta

			for i := uint64(1); i < intervalCount; i++ {
				gap := mustRead(dec.ReadIntervalStart())
				start += gap + 1

				delta = mustRead(dec.ReadIntervalLen())
				delta += l
				if !skipCopies {
					out = appendRange(out, start, delta)
				}
				count += delta
				start += delta
			}
		}
	}

	remaining = degree - count
	if remaining != 0 {
		firstOff := mustRead(dec.ReadFirstResidual())
		extra, ok := addSigned(n, nat2int(firstOff))
		if !ok {
			panic(&DecodeError{n, "residual", ErrCorrupt})
		}
		if !skipCopies {
			out = append(out, extra)
		}
		count++

		for i := uint64(1); i < remaining; i++ {
			gap := mustRead(dec.ReadResidual())
			extra += gap + 1
			if !skipCopies {
				out = append(out, extra)
			}
			count++
		}
	}

	if count != degree {
		panic(&DecodeError{n, "length", ErrCorrupt})
	}
	if skipCopies {
		return out, count
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	if len(out) > 0 && out[len(out)-1] >= numNodes {
		panic(&DecodeError{n, "range", ErrCorrupt})
	}
	return out, count
}

// mustRead panics with err if a field read failed, letting decodeNode read
// fields as plain expressions instead of checking an error after every
// call; see decodeNode's doc comment for the recovery boundary.
func mustRead(v uint64, err error) uint64 {
	if err != nil {
		panic(err)
	}
	return v
}

// addSigned adds a signed delta to an unsigned base, reporting whether the
// result is representable (non-negative).
func addSigned(base uint64, delta int64) (uint64, bool) {
	if delta < 0 && uint64(-delta) > base {
		return 0, false
	}
	return uint64(int64(base) + delta), true
}

func appendRange(out []uint64, start, length uint64) []uint64 {
	for i := uint64(0); i < length; i++ {
		out = append(out, start+i)
	}
	return out
}
