// Package entropy provides random integer sources for nonce and key
// generation.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/athanorlabs/go-sm2/types"
	"golang.org/x/crypto/sha3"
)

type RandomSource = types.RandomSource
type RandomStream = types.RandomStream

var (
	errStreamClosed = errors.New("random stream is closed")
	errInvalidBits  = errors.New("bit length must be positive")
)

// System returns a source backed by the operating system CSPRNG.
func System() RandomSource {
	return &readerSource{r: rand.Reader}
}

// FromReader returns a source drawing bytes from r. r must be safe for
// concurrent use if the source is shared between goroutines.
func FromReader(r io.Reader) RandomSource {
	return &readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) Open() (RandomStream, error) {
	return &readerStream{r: s.r}, nil
}

type readerStream struct {
	r      io.Reader
	closed bool
}

func (s *readerStream) Int(bits int) (*big.Int, error) {
	if s.closed {
		return nil, errStreamClosed
	}
	return readInt(s.r, bits)
}

func (s *readerStream) Close() error {
	s.closed = true
	return nil
}

// Shake is a deterministic source. All streams opened from it consume one
// SHAKE256 output in order, so a new stream never replays earlier draws.
type Shake struct {
	mu  sync.Mutex
	xof sha3.ShakeHash
}

// NewShake returns a deterministic source seeded with seed.
func NewShake(seed []byte) *Shake {
	xof := sha3.NewShake256()
	_, _ = xof.Write(seed)
	return &Shake{xof: xof}
}

// Open locks the source until the returned stream is closed. Opening a second
// stream before closing the first one from the same goroutine deadlocks.
func (s *Shake) Open() (RandomStream, error) {
	s.mu.Lock()
	return &shakeStream{src: s}, nil
}

type shakeStream struct {
	src    *Shake
	closed bool
}

func (s *shakeStream) Int(bits int) (*big.Int, error) {
	if s.closed {
		return nil, errStreamClosed
	}
	return readInt(s.src.xof, bits)
}

func (s *shakeStream) Close() error {
	if s.closed {
		return errStreamClosed
	}
	s.closed = true
	s.src.mu.Unlock()
	return nil
}

// readInt reads ceil(bits/8) bytes and clears the excess high bits, giving a
// uniform value in [0, 2^bits).
func readInt(r io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, errInvalidBits
	}

	b := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	if extra := len(b)*8 - bits; extra > 0 {
		b[0] &= 0xff >> extra
	}

	return new(big.Int).SetBytes(b), nil
}
