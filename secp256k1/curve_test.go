package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint_Add(t *testing.T) {
	c := NewCurve()
	g := c.BasePoint()
	inf := c.Infinity()

	require.True(t, g.Add(inf).Equals(g))
	require.True(t, inf.Add(g).Equals(g))
	require.True(t, g.Add(g).Equals(g.Double()))
	require.True(t, g.Double().Equals(c.ScalarBaseMul(big.NewInt(2))))

	negG := c.ScalarBaseMul(new(big.Int).Sub(c.Order(), big.NewInt(1)))
	require.True(t, g.Add(negG).IsInfinity())
}

func TestBasePoint_X(t *testing.T) {
	gx, ok := new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	require.True(t, ok)
	require.Zero(t, gx.Cmp(NewCurve().BasePoint().X()))
}

func TestPoint_EncodeDecode(t *testing.T) {
	c := NewCurve()
	p := c.ScalarBaseMul(big.NewInt(0xabcdef))

	enc := p.Encode()
	require.Len(t, enc, PointSize)

	dec, err := c.DecodePoint(enc)
	require.NoError(t, err)
	require.True(t, dec.Equals(p))

	require.True(t, c.ScalarBaseMul(c.Order()).IsInfinity())
	require.Equal(t, []byte{0}, c.Infinity().Encode())
}
