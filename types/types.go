package types

import (
	"math/big"
)

// Curve is a prime-order elliptic-curve group with a fixed base point.
type Curve interface {
	Name() string
	Order() *big.Int
	BasePoint() Point
	Infinity() Point
	ScalarBaseMul(*big.Int) Point
	DecodePoint([]byte) (Point, error)
	PointSize() int
}

// Point is an element of a Curve. Add must handle the identity, doubling and
// inverse points.
type Point interface {
	Copy() Point
	Add(Point) Point
	Double() Point
	ScalarMul(*big.Int) Point
	X() *big.Int
	Encode() []byte
	IsInfinity() bool
	Equals(other Point) bool
}

// RandomSource hands out streams of uniformly random integers.
type RandomSource interface {
	Open() (RandomStream, error)
}

// RandomStream yields uniformly random integers in [0, 2^bits).
type RandomStream interface {
	Int(bits int) (*big.Int, error)
	Close() error
}
