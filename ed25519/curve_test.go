package ed25519

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasePoint_X(t *testing.T) {
	// affine x of the standard base point
	gx, ok := new(big.Int).SetString("15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
	require.True(t, ok)
	require.Zero(t, gx.Cmp(NewCurve().BasePoint().X()))
}

func TestPoint_Add(t *testing.T) {
	c := NewCurve()
	g := c.BasePoint()

	require.True(t, g.Add(c.Infinity()).Equals(g))
	require.True(t, g.Double().Equals(c.ScalarBaseMul(big.NewInt(2))))
	require.True(t, c.ScalarBaseMul(c.Order()).IsInfinity())
	require.Zero(t, c.Infinity().X().Sign())
}

func TestDecodePoint(t *testing.T) {
	c := NewCurve()
	p := c.ScalarBaseMul(big.NewInt(99))

	dec, err := c.DecodePoint(p.Encode())
	require.NoError(t, err)
	require.True(t, dec.Equals(p))

	// a point of order 2: (0, -1)
	var low [32]byte
	low[0] = 0xec
	for i := 1; i < 31; i++ {
		low[i] = 0xff
	}
	low[31] = 0x7f
	_, err = c.DecodePoint(low[:])
	require.ErrorIs(t, err, errNotInSubgroup)
}
