// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool comparing the BV wire codec (internal/codes) against
// general-purpose byte-stream compressors run over the same encoded
// payload, to see whether a generic compressor can shrink an
// already bit-packed graph any further, and at what cost to decode speed.
//
// Example usage:
//
//	$ go run internal/tool/bench/main.go -nodes 200000 -degree 12 -codecs flate,xz
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"time"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/bvgraph"
	"github.com/dsnet/bvgraph/internal/codes"
	"github.com/dsnet/bvgraph/internal/testutil"
)

// byteCodec is a general-purpose compressor benchmarked against the raw BV
// stream, distinct from bvgraph.Decoder: it operates on opaque bytes rather
// than the node/arc structure.
type byteCodec struct {
	name       string
	compress   func(w io.Writer) (io.WriteCloser, error)
	decompress func(r io.Reader) (io.ReadCloser, error)
}

var byteCodecs = map[string]byteCodec{
	"flate": {
		name: "flate",
		compress: func(w io.Writer) (io.WriteCloser, error) {
			return kflate.NewWriter(w, kflate.DefaultCompression)
		},
		decompress: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(kflate.NewReader(r)), nil
		},
	},
	"xz": {
		name: "xz",
		compress: func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		},
		decompress: func(r io.Reader) (io.ReadCloser, error) {
			rd, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(rd), nil
		},
	},
}

func main() {
	nodes := flag.Int("nodes", 20000, "number of synthetic graph nodes")
	degree := flag.Int("degree", 8, "maximum out-degree per node")
	seed := flag.Int("seed", 1, "PRNG seed for the synthetic graph")
	codecList := flag.String("codecs", "flate,xz", "comma-separated byte codecs to compare")
	flag.Parse()

	r := testutil.NewRand(*seed)
	adj := testutil.GenerateGraph(r, *nodes, *degree)

	fc := codes.DefaultFieldCodes()
	var buf bytes.Buffer
	if err := testutil.EncodeGraph(&buf, adj, fc); err != nil {
		panic(err)
	}
	raw := buf.Bytes()

	var numArcs int
	for _, succ := range adj {
		numArcs += len(succ)
	}
	fmt.Printf("graph: %d nodes, %d arcs, %d raw bytes (%.2f bytes/arc)\n",
		*nodes, numArcs, len(raw), float64(len(raw))/float64(max(numArcs, 1)))

	benchDecode(raw, fc, *nodes, numArcs)

	for _, name := range splitCSV(*codecList) {
		c, ok := byteCodecs[name]
		if !ok {
			fmt.Printf("skip: unknown codec %q\n", name)
			continue
		}
		benchByteCodec(c, raw)
	}
}

func benchDecode(raw []byte, fc codes.FieldCodes, numNodes, numArcs int) {
	factory := codes.NewFactory(raw, fc)
	g, err := bvgraph.Open(factory, 0, 0, uint64(numNodes), nil)
	if err != nil {
		panic(err)
	}

	start := time.Now()
	it := g.Iterate()
	for it.Active() {
		if err := it.Advance(); err != nil {
			panic(err)
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("bvgraph decode: %v total, %.0f nodes/s, %.0f arcs/s\n",
		elapsed, float64(numNodes)/elapsed.Seconds(), float64(numArcs)/elapsed.Seconds())
}

func benchByteCodec(c byteCodec, raw []byte) {
	var compressed bytes.Buffer
	start := time.Now()
	wr, err := c.compress(&compressed)
	if err != nil {
		panic(err)
	}
	if _, err := wr.Write(raw); err != nil {
		panic(err)
	}
	if err := wr.Close(); err != nil {
		panic(err)
	}
	encElapsed := time.Since(start)

	start = time.Now()
	rd, err := c.decompress(bytes.NewReader(compressed.Bytes()))
	if err != nil {
		panic(err)
	}
	got, err := io.ReadAll(rd)
	if err != nil {
		panic(err)
	}
	rd.Close()
	decElapsed := time.Since(start)

	if !bytes.Equal(got, raw) {
		panic(c.name + ": round trip mismatch")
	}

	ratio := float64(len(raw)) / float64(compressed.Len())
	fmt.Printf("%s on BV stream: %d -> %d bytes (%.2fx), encode %.0f MB/s, decode %.0f MB/s\n",
		c.name, len(raw), compressed.Len(), ratio,
		mbPerSec(len(raw), encElapsed), mbPerSec(len(raw), decElapsed))
}

func mbPerSec(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / 1e6 / d.Seconds()
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
