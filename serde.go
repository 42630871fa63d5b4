package sm2

import (
	"errors"
	"math/big"
)

var ErrInvalidSignatureLength = errors.New("invalid signature length")

// scalarSize returns the byte length of the curve's group order.
func scalarSize(curve Curve) int {
	return (curve.Order().BitLen() + 7) / 8
}

// Bytes encodes the signature as R || S, each left-padded to the byte length
// of the curve order. It panics if either value does not fit.
func (sig *Signature) Bytes(curve Curve) []byte {
	size := scalarSize(curve)
	b := make([]byte, 2*size)
	sig.R.FillBytes(b[:size])
	sig.S.FillBytes(b[size:])
	return b
}

// ParseSignature decodes an R || S encoding produced by Signature.Bytes.
// Range checks are left to verification.
func ParseSignature(curve Curve, b []byte) (*Signature, error) {
	size := scalarSize(curve)
	if len(b) != 2*size {
		return nil, ErrInvalidSignatureLength
	}

	return &Signature{
		R: new(big.Int).SetBytes(b[:size]),
		S: new(big.Int).SetBytes(b[size:]),
	}, nil
}
