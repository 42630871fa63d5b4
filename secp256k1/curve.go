package secp256k1

import (
	"math/big"

	"github.com/athanorlabs/go-sm2/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

type Curve = types.Curve
type Point = types.Point

var _ Curve = &CurveImpl{}
var _ Point = &PointImpl{}

// PointSize is the length of a compressed encoded point.
const PointSize = 33

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "secp256k1"
}

func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *CurveImpl) BasePoint() Point {
	one := new(secp256k1.ModNScalar).SetInt(1)
	p := &PointImpl{}
	secp256k1.ScalarBaseMultNonConst(one, &p.inner)
	return p
}

func (c *CurveImpl) Infinity() Point {
	return &PointImpl{}
}

func (c *CurveImpl) ScalarBaseMul(k *big.Int) Point {
	kk := toModN(k)
	if kk.IsZero() {
		return &PointImpl{}
	}

	p := &PointImpl{}
	secp256k1.ScalarBaseMultNonConst(kk, &p.inner)
	return p.normalize()
}

func (c *CurveImpl) PointSize() int {
	return PointSize
}

// DecodePoint accepts compressed or uncompressed SEC1 encodings.
func (c *CurveImpl) DecodePoint(b []byte) (Point, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, err
	}

	p := &PointImpl{}
	pub.AsJacobian(&p.inner)
	return p, nil
}

func toModN(k *big.Int) *secp256k1.ModNScalar {
	kk := new(big.Int).Mod(k, secp256k1.S256().Params().N)
	s := new(secp256k1.ModNScalar)
	s.SetByteSlice(kk.Bytes())
	return s
}

// PointImpl wraps a Jacobian point. The zero value is the identity.
type PointImpl struct {
	inner secp256k1.JacobianPoint
}

func (p *PointImpl) Copy() Point {
	cp := &PointImpl{}
	cp.inner.Set(&p.inner)
	return cp
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	res := &PointImpl{}
	secp256k1.AddNonConst(&p.inner, &pp.inner, &res.inner)
	return res.normalize()
}

func (p *PointImpl) Double() Point {
	res := &PointImpl{}
	secp256k1.DoubleNonConst(&p.inner, &res.inner)
	return res.normalize()
}

func (p *PointImpl) ScalarMul(k *big.Int) Point {
	kk := toModN(k)
	if p.IsInfinity() || kk.IsZero() {
		return &PointImpl{}
	}

	res := &PointImpl{}
	secp256k1.ScalarMultNonConst(kk, &p.inner, &res.inner)
	return res.normalize()
}

func (p *PointImpl) normalize() *PointImpl {
	p.inner.X.Normalize()
	p.inner.Y.Normalize()
	p.inner.Z.Normalize()
	return p
}

func (p *PointImpl) affine() secp256k1.JacobianPoint {
	var a secp256k1.JacobianPoint
	a.Set(&p.inner)
	a.ToAffine()
	return a
}

func (p *PointImpl) X() *big.Int {
	if p.IsInfinity() {
		return new(big.Int)
	}

	a := p.affine()
	return new(big.Int).SetBytes(a.X.Bytes()[:])
}

func (p *PointImpl) Encode() []byte {
	if p.IsInfinity() {
		return []byte{0}
	}

	a := p.affine()
	return secp256k1.NewPublicKey(&a.X, &a.Y).SerializeCompressed()
}

func (p *PointImpl) IsInfinity() bool {
	return (p.inner.X.IsZero() && p.inner.Y.IsZero()) || p.inner.Z.IsZero()
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *secp256k1.PointImpl")
	}

	if p.IsInfinity() || pp.IsInfinity() {
		return p.IsInfinity() == pp.IsInfinity()
	}

	a, b := p.affine(), pp.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}
