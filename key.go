// Package sm2 implements SM2-style signing and verification over any
// prime-order group exposing the types.Curve capability.
package sm2

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/athanorlabs/go-sm2/entropy"
	"github.com/athanorlabs/go-sm2/types"
)

type Curve = types.Curve
type Point = types.Point
type RandomSource = types.RandomSource

var (
	// ErrSigningNotSupported is returned when a verification-only key is asked to sign.
	ErrSigningNotSupported = errors.New("key cannot sign: no private scalar")

	// ErrInvalidPrivateKey is returned for private scalars outside [1, N-2].
	ErrInvalidPrivateKey = errors.New("private scalar must be in [1, N-2]")

	// ErrInvalidPublicKey is returned for a nil, identity or undecodable public point.
	ErrInvalidPublicKey = errors.New("public key must be a non-identity point")
)

var one = big.NewInt(1)

// keyMode is either signingMode or verifyingMode.
type keyMode interface {
	publicKey() Point
}

type signingMode struct {
	d   *big.Int
	pub Point
	rnd RandomSource
}

func (m *signingMode) publicKey() Point { return m.pub }

type verifyingMode struct {
	pub Point
}

func (m *verifyingMode) publicKey() Point { return m.pub }

// Key is an SM2 key bound to a curve. It is immutable and safe for concurrent
// use, provided its RandomSource is.
type Key struct {
	curve Curve
	mode  keyMode
}

// NewSigningKey returns a key holding the private scalar d and the derived
// public point d*G. If rnd is nil the system CSPRNG is used for nonces.
func NewSigningKey(curve Curve, d *big.Int, rnd RandomSource) (*Key, error) {
	if d == nil {
		return nil, ErrInvalidPrivateKey
	}

	// d = N-1 is excluded since (d+1) has no inverse mod N
	limit := new(big.Int).Sub(curve.Order(), one)
	if d.Sign() <= 0 || d.Cmp(limit) >= 0 {
		return nil, ErrInvalidPrivateKey
	}

	if rnd == nil {
		rnd = entropy.System()
	}

	return &Key{
		curve: curve,
		mode: &signingMode{
			d:   new(big.Int).Set(d),
			pub: curve.ScalarBaseMul(d),
			rnd: rnd,
		},
	}, nil
}

// GenerateSigningKey draws a fresh private scalar from rnd.
func GenerateSigningKey(curve Curve, rnd RandomSource) (*Key, error) {
	if rnd == nil {
		rnd = entropy.System()
	}

	stream, err := rnd.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open random source: %w", err)
	}
	defer stream.Close() //nolint:errcheck

	n := curve.Order()
	limit := new(big.Int).Sub(n, one)
	for {
		d, err := stream.Int(n.BitLen())
		if err != nil {
			return nil, fmt.Errorf("failed to draw private scalar: %w", err)
		}

		if d.Sign() > 0 && d.Cmp(limit) < 0 {
			return NewSigningKey(curve, d, rnd)
		}
	}
}

// NewVerifyingKey returns a verification-only key for the public point q.
func NewVerifyingKey(curve Curve, q Point) (*Key, error) {
	if q == nil || q.IsInfinity() {
		return nil, ErrInvalidPublicKey
	}

	return &Key{
		curve: curve,
		mode: &verifyingMode{
			pub: q.Copy(),
		},
	}, nil
}

// ParseVerifyingKey decodes a public point with the curve's encoding.
func ParseVerifyingKey(curve Curve, b []byte) (*Key, error) {
	q, err := curve.DecodePoint(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}
	return NewVerifyingKey(curve, q)
}

func (k *Key) Curve() Curve {
	return k.curve
}

// PublicKey returns a copy of the public point.
func (k *Key) PublicKey() Point {
	return k.mode.publicKey().Copy()
}

// CanSign reports whether the key holds a private scalar.
func (k *Key) CanSign() bool {
	_, ok := k.mode.(*signingMode)
	return ok
}

// VerifyingKey returns a verification-only key for the same public point.
func (k *Key) VerifyingKey() *Key {
	return &Key{
		curve: k.curve,
		mode: &verifyingMode{
			pub: k.mode.publicKey(),
		},
	}
}

// messageToInt interprets msg as a big-endian unsigned integer.
func messageToInt(msg []byte) *big.Int {
	return new(big.Int).SetBytes(msg)
}
