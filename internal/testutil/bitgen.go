// Copyright 2024, The bvgraph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into the raw bytes of a
// most-significant-bit-first bitstream, the packing order every wire code in
// internal/codes uses. It exists so decoder/encoder tests can spell out a
// stream's exact bit layout without hand-computing bytes.
//
// The format is a series of whitespace-separated tokens; "#" starts a
// comment that runs to end of line.
//
//   - A token matching "[01]{1,64}" is a literal bit-string, most significant
//     bit (leftmost character) written first.
//   - A token of the form "D<n>:<v>" or "H<n>:<v>" packs the decimal or
//     hexadecimal value v as n bits, most significant bit first.
//   - A token of the form "X:<hex>" inserts literal bytes; the stream must
//     already be byte-aligned at that point.
//   - Any token may be suffixed with "*n" to repeat it n times.
//
// If the resulting stream is not byte-aligned, it is padded with zero bits.
//
// Example:
//
//	H8:05 D4:2 1111 X:ff
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		for _, t := range strings.Split(s, " ") {
			t = strings.TrimSpace(t)
			if len(t) > 0 {
				toks = append(toks, t)
			}
		}
	}

	var bw bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			var v uint64
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			for i := 0; i < rep; i++ {
				bw.WriteBitsBE(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}
			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bw.WriteBitsBE(v, uint(n))
			}
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			b = bytes.Repeat(b, rep)
			if err := bw.Write(b); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// bitBuffer is a minimal most-significant-bit-first bit accumulator, kept
// independent of internal/codes.Writer to avoid a dependency cycle between
// test helpers and the package they help test.
type bitBuffer struct {
	b []byte
	n uint // valid bits in the trailing partial byte
}

func (b *bitBuffer) Write(buf []byte) error {
	if b.n != 0 {
		return errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return nil
}

func (b *bitBuffer) WriteBitsBE(v uint64, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		if b.n == 0 {
			b.b = append(b.b, 0x00)
		}
		bit := byte(v>>uint(i)) & 1
		b.b[len(b.b)-1] |= bit << (7 - b.n)
		b.n = (b.n + 1) % 8
	}
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}
