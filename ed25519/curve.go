package ed25519

import (
	"errors"
	"math/big"

	"github.com/athanorlabs/go-sm2/types"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

type Curve = types.Curve
type Point = types.Point

var _ Curve = &CurveImpl{}
var _ Point = &PointImpl{}

// PointSize is the length of an encoded point.
const PointSize = 32

// order is the prime order of the edwards25519 base point subgroup,
// l = 2^252 + 27742317777372353535851937790883648493.
var order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

var errNotInSubgroup = errors.New("point is not in the prime-order subgroup")

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "edwards25519"
}

func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(order)
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) Infinity() Point {
	return &PointImpl{
		inner: edwards25519.NewIdentityPoint(),
	}
}

func (c *CurveImpl) ScalarBaseMul(k *big.Int) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(toScalar(k)),
	}
}

func (c *CurveImpl) PointSize() int {
	return PointSize
}

func (c *CurveImpl) DecodePoint(b []byte) (Point, error) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, err
	}

	// l*P == identity iff (l-1)*P + P == identity
	lm1 := new(big.Int).Sub(order, big.NewInt(1))
	check := new(edwards25519.Point).ScalarMult(toScalar(lm1), p)
	check.Add(check, p)
	if check.Equal(edwards25519.NewIdentityPoint()) != 1 {
		return nil, errNotInSubgroup
	}

	return &PointImpl{
		inner: p,
	}, nil
}

// toScalar reduces k modulo l and converts it to a canonical scalar.
func toScalar(k *big.Int) *edwards25519.Scalar {
	kk := new(big.Int).Mod(k, order)

	var le [32]byte
	kk.FillBytes(le[:])
	reverse(le[:])

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(le[:])
	if err != nil {
		panic(err)
	}
	return s
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Double() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, p.inner),
	}
}

func (p *PointImpl) ScalarMul(k *big.Int) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(toScalar(k), p.inner),
	}
}

// X returns the affine Edwards x-coordinate.
func (p *PointImpl) X() *big.Int {
	X, _, Z, _ := p.inner.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	x := new(field.Element).Multiply(X, zInv).Bytes()
	reverse(x)
	return new(big.Int).SetBytes(x)
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsInfinity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}
