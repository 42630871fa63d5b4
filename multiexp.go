package sm2

import (
	"math/big"
)

// SimultaneousScalarMul returns k*p + l*q in a single left-to-right pass over
// the bits of both scalars (Shamir's trick). k and l must be non-negative.
func SimultaneousScalarMul(curve Curve, k *big.Int, p Point, l *big.Int, q Point) Point {
	z := p.Add(q)

	m := k.BitLen()
	if l.BitLen() > m {
		m = l.BitLen()
	}

	r := curve.Infinity()
	for i := m - 1; i >= 0; i-- {
		r = r.Double()

		switch k.Bit(i)<<1 | l.Bit(i) {
		case 0b10:
			r = r.Add(p)
		case 0b01:
			r = r.Add(q)
		case 0b11:
			r = r.Add(z)
		}
	}

	return r
}
