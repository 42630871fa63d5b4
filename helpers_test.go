package sm2

import (
	"errors"
	"math/big"

	"github.com/athanorlabs/go-sm2/ed25519"
	"github.com/athanorlabs/go-sm2/secp256k1"
	"github.com/athanorlabs/go-sm2/sm2p256"
	"github.com/athanorlabs/go-sm2/types"
)

var errScriptExhausted = errors.New("scripted source exhausted")

func testCurves() []Curve {
	return []Curve{
		sm2p256.NewCurve(),
		secp256k1.NewCurve(),
		ed25519.NewCurve(),
	}
}

// scriptedSource replays fixed values and records stream usage.
type scriptedSource struct {
	values []*big.Int
	err    error

	opens, closes, draws int
}

func (s *scriptedSource) Open() (types.RandomStream, error) {
	s.opens++
	return &scriptedStream{src: s}, nil
}

type scriptedStream struct {
	src *scriptedSource
}

func (st *scriptedStream) Int(bits int) (*big.Int, error) {
	s := st.src
	if s.err != nil {
		return nil, s.err
	}
	if s.draws >= len(s.values) {
		return nil, errScriptExhausted
	}

	v := s.values[s.draws]
	s.draws++
	return new(big.Int).Set(v), nil
}

func (st *scriptedStream) Close() error {
	st.src.closes++
	return nil
}

type failingSource struct{}

func (failingSource) Open() (types.RandomStream, error) {
	return nil, errors.New("no entropy")
}

// watchedCurve counts calls that lead to curve arithmetic.
type watchedCurve struct {
	Curve
	calls int
}

func (c *watchedCurve) BasePoint() Point {
	c.calls++
	return c.Curve.BasePoint()
}

func (c *watchedCurve) Infinity() Point {
	c.calls++
	return c.Curve.Infinity()
}

func (c *watchedCurve) ScalarBaseMul(k *big.Int) Point {
	c.calls++
	return c.Curve.ScalarBaseMul(k)
}
