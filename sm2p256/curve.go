// Package sm2p256 implements the group capability over the SM2 recommended
// 256-bit prime curve.
package sm2p256

import (
	"crypto/elliptic"
	"errors"
	"math/big"

	"github.com/athanorlabs/go-sm2/types"
	"github.com/tjfoc/gmsm/sm2"
)

type Curve = types.Curve
type Point = types.Point

var _ Curve = &CurveImpl{}
var _ Point = &PointImpl{}

const (
	coordSize = 32

	// PointSize is the length of an uncompressed encoded point.
	PointSize = 1 + 2*coordSize
)

var errInvalidPoint = errors.New("invalid sm2p256 point encoding")

type CurveImpl struct {
	inner elliptic.Curve
}

func NewCurve() Curve {
	return &CurveImpl{
		inner: sm2.P256Sm2(),
	}
}

// Params exposes the underlying curve parameters.
func (c *CurveImpl) Params() *elliptic.CurveParams {
	return c.inner.Params()
}

func (c *CurveImpl) Name() string {
	return "sm2p256v1"
}

func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(c.inner.Params().N)
}

func (c *CurveImpl) BasePoint() Point {
	params := c.inner.Params()
	return c.newPoint(params.Gx, params.Gy)
}

func (c *CurveImpl) Infinity() Point {
	return &PointImpl{
		curve:    c.inner,
		infinity: true,
	}
}

func (c *CurveImpl) ScalarBaseMul(k *big.Int) Point {
	kk := c.reduce(k)
	if kk.Sign() == 0 {
		return c.Infinity()
	}

	x, y := c.inner.ScalarBaseMult(kk.Bytes())
	return c.newPoint(x, y)
}

func (c *CurveImpl) PointSize() int {
	return PointSize
}

// DecodePoint parses an uncompressed 0x04 || X || Y encoding.
func (c *CurveImpl) DecodePoint(b []byte) (Point, error) {
	if len(b) != PointSize || b[0] != 4 {
		return nil, errInvalidPoint
	}

	x := new(big.Int).SetBytes(b[1 : 1+coordSize])
	y := new(big.Int).SetBytes(b[1+coordSize:])
	if !c.inner.IsOnCurve(x, y) {
		return nil, errInvalidPoint
	}

	return c.newPoint(x, y), nil
}

func (c *CurveImpl) newPoint(x, y *big.Int) *PointImpl {
	return &PointImpl{
		curve: c.inner,
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
	}
}

func (c *CurveImpl) reduce(k *big.Int) *big.Int {
	return new(big.Int).Mod(k, c.inner.Params().N)
}

// PointImpl is an affine point; the identity is carried as a flag because the
// underlying arithmetic has no representation for it.
type PointImpl struct {
	curve    elliptic.Curve
	x, y     *big.Int
	infinity bool
}

func (p *PointImpl) Copy() Point {
	if p.infinity {
		return &PointImpl{curve: p.curve, infinity: true}
	}

	return &PointImpl{
		curve: p.curve,
		x:     new(big.Int).Set(p.x),
		y:     new(big.Int).Set(p.y),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *sm2p256.PointImpl")
	}

	switch {
	case p.infinity:
		return pp.Copy()
	case pp.infinity:
		return p.Copy()
	case p.x.Cmp(pp.x) == 0:
		if p.y.Cmp(pp.y) == 0 {
			return p.Double()
		}
		return &PointImpl{curve: p.curve, infinity: true}
	}

	x, y := p.curve.Add(p.x, p.y, pp.x, pp.y)
	return &PointImpl{curve: p.curve, x: x, y: y}
}

func (p *PointImpl) Double() Point {
	if p.infinity || p.y.Sign() == 0 {
		return &PointImpl{curve: p.curve, infinity: true}
	}

	x, y := p.curve.Double(p.x, p.y)
	return &PointImpl{curve: p.curve, x: x, y: y}
}

func (p *PointImpl) ScalarMul(k *big.Int) Point {
	kk := new(big.Int).Mod(k, p.curve.Params().N)
	if p.infinity || kk.Sign() == 0 {
		return &PointImpl{curve: p.curve, infinity: true}
	}

	x, y := p.curve.ScalarMult(p.x, p.y, kk.Bytes())
	return &PointImpl{curve: p.curve, x: x, y: y}
}

// X returns the affine x-coordinate, or zero for the identity.
func (p *PointImpl) X() *big.Int {
	if p.infinity {
		return new(big.Int)
	}
	return new(big.Int).Set(p.x)
}

// Y returns the affine y-coordinate, or zero for the identity.
func (p *PointImpl) Y() *big.Int {
	if p.infinity {
		return new(big.Int)
	}
	return new(big.Int).Set(p.y)
}

// Encode returns 0x04 || X || Y. The identity encodes as a single zero byte.
func (p *PointImpl) Encode() []byte {
	if p.infinity {
		return []byte{0}
	}

	b := make([]byte, PointSize)
	b[0] = 4
	p.x.FillBytes(b[1 : 1+coordSize])
	p.y.FillBytes(b[1+coordSize:])
	return b
}

func (p *PointImpl) IsInfinity() bool {
	return p.infinity
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *sm2p256.PointImpl")
	}

	if p.infinity || pp.infinity {
		return p.infinity == pp.infinity
	}

	return p.x.Cmp(pp.x) == 0 && p.y.Cmp(pp.y) == 0
}
