package sm2p256

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
	require.True(t, g.Add(g).Equals(c.ScalarBaseMul(big.NewInt(2))))

	negG := c.ScalarBaseMul(new(big.Int).Sub(c.Order(), big.NewInt(1)))
	require.True(t, g.Add(negG).IsInfinity())
	require.True(t, inf.Double().IsInfinity())
}

func TestScalarMul_Reduces(t *testing.T) {
	c := NewCurve()
	n := c.Order()
	g := c.BasePoint()

	require.True(t, c.ScalarBaseMul(n).IsInfinity())
	require.True(t, g.ScalarMul(big.NewInt(0)).IsInfinity())
	require.True(t, g.ScalarMul(new(big.Int).Add(n, big.NewInt(3))).Equals(c.ScalarBaseMul(big.NewInt(3))))
	require.True(t, c.Infinity().ScalarMul(big.NewInt(5)).IsInfinity())
}

func TestPoint_EncodeDecode(t *testing.T) {
	c := NewCurve()
	p := c.ScalarBaseMul(big.NewInt(0xabcdef))

	enc := p.Encode()
	require.Len(t, enc, PointSize)
	require.Equal(t, PointSize, c.PointSize())

	dec, err := c.DecodePoint(enc)
	require.NoError(t, err)
	require.True(t, dec.Equals(p))

	enc[PointSize-1] ^= 1
	_, err = c.DecodePoint(enc)
	require.Error(t, err)

	require.Equal(t, []byte{0}, c.Infinity().Encode())
	require.Zero(t, c.Infinity().X().Sign())
}

func TestCopy_Independent(t *testing.T) {
	c := NewCurve()
	g := c.BasePoint().(*PointImpl)
	cp := g.Copy().(*PointImpl)
	cp.x.SetInt64(1)
	require.True(t, c.BasePoint().Equals(g))
}
