package sm2

import (
	"fmt"
	"math/big"
)

// Signature is an SM2 signature pair.
type Signature struct {
	R, S *big.Int
}

// Sign signs the message integer of msg. A fresh nonce is drawn for every
// call. It returns ErrSigningNotSupported for verification-only keys.
func (k *Key) Sign(msg []byte) (*Signature, error) {
	m, ok := k.mode.(*signingMode)
	if !ok {
		return nil, ErrSigningNotSupported
	}

	stream, err := m.rnd.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open random source: %w", err)
	}
	defer stream.Close() //nolint:errcheck

	n := k.curve.Order()
	e := messageToInt(msg)

	// (1 + d)^-1 mod n does not depend on the nonce
	dInv := new(big.Int).Add(m.d, one)
	dInv.ModInverse(dInv, n)

	for {
		nonce, err := stream.Int(n.BitLen())
		if err != nil {
			return nil, fmt.Errorf("failed to draw nonce: %w", err)
		}

		if nonce.Sign() == 0 || nonce.Cmp(n) >= 0 {
			continue
		}

		p := k.curve.ScalarBaseMul(nonce)
		r := new(big.Int).Add(e, p.X())
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}

		// s = (1 + d)^-1 * (k - r*d) mod n
		s := new(big.Int).Mul(r, m.d)
		s.Sub(nonce, s)
		s.Mod(s, n)
		s.Mul(s, dInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{
			R: r,
			S: s,
		}, nil
	}
}

// SignBytes signs msg and returns the fixed-width R || S encoding.
func (k *Key) SignBytes(msg []byte) ([]byte, error) {
	sig, err := k.Sign(msg)
	if err != nil {
		return nil, err
	}

	return sig.Bytes(k.curve), nil
}
