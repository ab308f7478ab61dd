//
// block.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"math/bits"
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// blocks runs the SHA-1 compression function over the complete
// 64-byte blocks of p, mixing them into the chaining state h. The
// caller owns the 80-word message schedule w; it is recomputed for
// every block and nothing in it survives across blocks. The return
// value is the number of bytes consumed so the caller can keep any
// unaligned tail.
func blocks(h *[5]uint32, w *[80]uint32, p []byte) int {
	h0, h1, h2, h3, h4 := h[0], h[1], h[2], h[3], h[4]

	var n int
	for len(p)-n >= chunk {
		block := p[n : n+chunk]
		for i := 0; i < 16; i++ {
			j := i * 4
			w[i] = uint32(block[j])<<24 | uint32(block[j+1])<<16 |
				uint32(block[j+2])<<8 | uint32(block[j+3])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		// The four 20-round groups differ only in the boolean
		// function f and the constant K.
		i := 0
		for ; i < 20; i++ {
			f := b&c | (^b)&d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K0
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; i < 40; i++ {
			f := b ^ c ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K1
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; i < 60; i++ {
			f := b&c | b&d | c&d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K2
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
		for ; i < 80; i++ {
			f := b ^ c ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K3
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		n += chunk
	}

	h[0], h[1], h[2], h[3], h[4] = h0, h1, h2, h3, h4
	return n
}
