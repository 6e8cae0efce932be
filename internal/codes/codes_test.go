// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codes

import (
	"bytes"
	"testing"
)

func TestGammaRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	vectors := []uint64{0, 1, 2, 3, 4, 7, 8, 100, 1000, 1 << 20, 1 << 40}
	for _, x := range vectors {
		WriteGamma(w, x)
	}
	w.Flush()

	r := NewReader(&buf)
	for _, want := range vectors {
		if got := ReadGamma(r); got != want {
			t.Errorf("ReadGamma() = %d, want %d", got, want)
		}
	}
}

func TestGammaVectors(t *testing.T) {
	// Elias gamma of 0 is a single 1 bit; of 1 is "010"; of 2 is "011";
	// of 3 is "00100"; these are the textbook values.
	vectors := []struct {
		x    uint64
		bits string
	}{
		{0, "1"},
		{1, "010"},
		{2, "011"},
		{3, "00100"},
		{4, "00101"},
	}
	for _, v := range vectors {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		WriteGamma(w, v.x)
		w.Flush()
		if got := bitString(buf.Bytes(), len(v.bits)); got != v.bits {
			t.Errorf("WriteGamma(%d) = %s, want %s", v.x, got, v.bits)
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	vectors := []uint64{0, 1, 2, 3, 4, 7, 8, 100, 1000, 1 << 20, 1 << 40}
	for _, x := range vectors {
		WriteDelta(w, x)
	}
	w.Flush()

	r := NewReader(&buf)
	for _, want := range vectors {
		if got := ReadDelta(r); got != want {
			t.Errorf("ReadDelta() = %d, want %d", got, want)
		}
	}
}

func TestZetaRoundTrip(t *testing.T) {
	for _, k := range []uint{1, 2, 3, 5} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		vectors := []uint64{0, 1, 2, 3, 4, 7, 8, 100, 1000, 1 << 20}
		for _, x := range vectors {
			WriteZeta(w, x, k)
		}
		w.Flush()

		r := NewReader(&buf)
		for _, want := range vectors {
			if got := ReadZeta(r, k); got != want {
				t.Errorf("k=%d: ReadZeta() = %d, want %d", k, got, want)
			}
		}
	}
}

func TestUnaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	vectors := []uint64{0, 1, 2, 10, 63}
	for _, x := range vectors {
		WriteUnary(w, x)
	}
	w.Flush()

	r := NewReader(&buf)
	for _, want := range vectors {
		if got := ReadUnary(r); got != want {
			t.Errorf("ReadUnary() = %d, want %d", got, want)
		}
	}
}

func TestDecoderEncoderRoundTrip(t *testing.T) {
	fc := DefaultFieldCodes()
	var buf bytes.Buffer
	e := NewEncoder(&buf, fc)
	fields := []struct {
		write func(uint64) error
		value uint64
	}{
		{e.WriteOutdegree, 5},
		{e.WriteReferenceOffset, 0},
		{e.WriteIntervalCount, 2},
		{e.WriteIntervalStart, 17},
		{e.WriteIntervalLen, 3},
		{e.WriteFirstResidual, 9},
		{e.WriteResidual, 12},
	}
	for _, f := range fields {
		if err := f.write(f.value); err != nil {
			t.Fatalf("write %d: %v", f.value, err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := NewDecoder(bytes.NewReader(buf.Bytes()), fc)
	reads := []func() (uint64, error){
		d.ReadOutdegree,
		d.ReadReferenceOffset,
		d.ReadIntervalCount,
		d.ReadIntervalStart,
		d.ReadIntervalLen,
		d.ReadFirstResidual,
		d.ReadResidual,
	}
	for i, read := range reads {
		got, err := read()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if want := fields[i].value; got != want {
			t.Errorf("read %d = %d, want %d", i, got, want)
		}
	}
}

func TestDecoderEOFIsError(t *testing.T) {
	d := NewDecoder(bytes.NewReader(nil), DefaultFieldCodes())
	if _, err := d.ReadOutdegree(); err == nil {
		t.Fatal("ReadOutdegree on empty stream should fail")
	}
}

// bitString renders the first n bits of buf as a string of '0'/'1', for
// comparing against textbook bit patterns.
func bitString(buf []byte, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		byt := buf[i/8]
		bit := (byt >> uint(7-i%8)) & 1
		if bit == 1 {
			out = append(out, '1')
		} else {
			out = append(out, '0')
		}
	}
	return string(out)
}
