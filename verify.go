package sm2

import (
	"math/big"
)

// Verify reports whether sig is a valid signature of msg under the key's
// public point. Out-of-range values are rejected before any curve arithmetic.
func (k *Key) Verify(msg []byte, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	n := k.curve.Order()
	r, s := sig.R, sig.S
	if r.Cmp(one) < 0 || s.Cmp(one) < 0 {
		return false
	}
	if r.Cmp(n) > 0 || s.Cmp(n) > 0 {
		return false
	}

	t := new(big.Int).Add(r, s)
	t.Mod(t, n)

	point := SimultaneousScalarMul(k.curve, s, k.curve.BasePoint(), t, k.mode.publicKey())

	e := messageToInt(msg)
	x := new(big.Int).Add(e, point.X())
	x.Mod(x, n)
	return x.Cmp(r) == 0
}

// VerifyBytes verifies a fixed-width R || S signature.
func (k *Key) VerifyBytes(msg, sig []byte) bool {
	parsed, err := ParseSignature(k.curve, sig)
	if err != nil {
		return false
	}

	return k.Verify(msg, parsed)
}

// VerifyWithPublicKey decodes pub with the curve's point encoding and
// verifies the fixed-width signature sig over msg.
func VerifyWithPublicKey(curve Curve, pub, msg, sig []byte) bool {
	key, err := ParseVerifyingKey(curve, pub)
	if err != nil {
		return false
	}

	return key.VerifyBytes(msg, sig)
}
