package entropy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystem_Int(t *testing.T) {
	stream, err := System().Open()
	require.NoError(t, err)
	defer stream.Close()

	for _, bits := range []int{1, 7, 8, 9, 255, 256} {
		v, err := stream.Int(bits)
		require.NoError(t, err)
		require.LessOrEqual(t, v.BitLen(), bits)
		require.GreaterOrEqual(t, v.Sign(), 0)
	}

	_, err = stream.Int(0)
	require.Error(t, err)
}

func TestStream_Closed(t *testing.T) {
	stream, err := System().Open()
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	_, err = stream.Int(8)
	require.ErrorIs(t, err, errStreamClosed)
}

func TestFromReader_MasksHighBits(t *testing.T) {
	src := FromReader(bytes.NewReader([]byte{0xff, 0xff, 0xff}))
	stream, err := src.Open()
	require.NoError(t, err)

	v, err := stream.Int(12)
	require.NoError(t, err)
	require.Equal(t, int64(0x0fff), v.Int64())

	// one byte left, two needed
	_, err = stream.Int(9)
	require.Error(t, err)
}

func TestShake_Deterministic(t *testing.T) {
	draw := func(src RandomSource, n int) []string {
		var out []string
		for i := 0; i < n; i++ {
			stream, err := src.Open()
			require.NoError(t, err)
			v, err := stream.Int(256)
			require.NoError(t, err)
			require.NoError(t, stream.Close())
			out = append(out, v.String())
		}
		return out
	}

	a := draw(NewShake([]byte("seed")), 4)
	b := draw(NewShake([]byte("seed")), 4)
	c := draw(NewShake([]byte("other")), 4)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	// successive streams continue the output instead of restarting it
	for i := 1; i < len(a); i++ {
		require.NotEqual(t, a[0], a[i])
	}
}

func TestShake_DoubleClose(t *testing.T) {
	stream, err := NewShake(nil).Open()
	require.NoError(t, err)
	require.NoError(t, stream.Close())
	require.ErrorIs(t, stream.Close(), errStreamClosed)
}
