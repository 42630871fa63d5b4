package sm3

import (
	"encoding/binary"
	"math/bits"
)

const (
	t1 = 0x79cc4519 // rounds 0-15
	t2 = 0x7a879d8a // rounds 16-63
)

func p0(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17) }

func p1(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23) }

func ff1(x, y, z uint32) uint32 { return x ^ y ^ z }

func gg1(x, y, z uint32) uint32 { return x ^ y ^ z }

func ff2(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }

func gg2(x, y, z uint32) uint32 { return (x & y) | (^x & z) }

// block runs the compression function over every 64-byte block of p.
func block(h *[8]uint32, p []byte) {
	var w [68]uint32
	var w1 [64]uint32

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		for i := 16; i < 68; i++ {
			w[i] = p1(w[i-16]^w[i-9]^bits.RotateLeft32(w[i-3], 15)) ^ bits.RotateLeft32(w[i-13], 7) ^ w[i-6]
		}
		for i := 0; i < 64; i++ {
			w1[i] = w[i] ^ w[i+4]
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for i := 0; i < 16; i++ {
			a12 := bits.RotateLeft32(a, 12)
			ss1 := bits.RotateLeft32(a12+e+bits.RotateLeft32(t1, i), 7)
			ss2 := ss1 ^ a12
			tt1 := ff1(a, b, c) + d + ss2 + w1[i]
			tt2 := gg1(e, f, g) + hh + ss1 + w[i]
			d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
			hh, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
		}

		for i := 16; i < 64; i++ {
			a12 := bits.RotateLeft32(a, 12)
			ss1 := bits.RotateLeft32(a12+e+bits.RotateLeft32(t2, i%32), 7)
			ss2 := ss1 ^ a12
			tt1 := ff2(a, b, c) + d + ss2 + w1[i]
			tt2 := gg2(e, f, g) + hh + ss1 + w[i]
			d, c, b, a = c, bits.RotateLeft32(b, 9), a, tt1
			hh, g, f, e = g, bits.RotateLeft32(f, 19), e, p0(tt2)
		}

		h[0] ^= a
		h[1] ^= b
		h[2] ^= c
		h[3] ^= d
		h[4] ^= e
		h[5] ^= f
		h[6] ^= g
		h[7] ^= hh

		p = p[BlockSize:]
	}
}
