// Package sm3 implements the SM3 hash algorithm as defined in GB/T 32905-2016.
package sm3

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the size of an SM3 checksum in bytes.
	Size = 32
	// BlockSize is the block size of SM3 in bytes.
	BlockSize = 64
)

const (
	init0 = 0x7380166f
	init1 = 0x4914b2b9
	init2 = 0x172442d7
	init3 = 0xda8a0600
	init4 = 0xa96f30bc
	init5 = 0x163138aa
	init6 = 0xe38dee4d
	init7 = 0xb0fb0e4e
)

// digest is not safe for concurrent use.
type digest struct {
	h   [8]uint32
	x   [BlockSize]byte
	nx  int
	len [2]uint32 // bytes written, {low, high}
}

// New returns a new hash.Hash computing the SM3 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Sum returns the SM3 checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}

func (d *digest) Reset() {
	d.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	d.x = [BlockSize]byte{}
	d.nx = 0
	d.len = [2]uint32{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

// addLength adds n to the byte counter, carrying into the high word.
func (d *digest) addLength(n uint64) {
	lo := uint32(n)
	d.len[0] += lo
	carry := uint32(0)
	if d.len[0] < lo {
		carry = 1
	}
	d.len[1] += uint32(n>>32) + carry
}

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	if nn == 0 {
		return 0, nil
	}
	d.addLength(uint64(nn))

	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx < BlockSize {
			return nn, nil
		}
		block(&d.h, d.x[:])
		d.nx = 0
		p = p[n:]
	}

	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(&d.h, p[:n])
		p = p[n:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return nn, nil
}

// Sum appends the checksum to b. The running state is left untouched so more
// data may be written afterwards.
func (d *digest) Sum(b []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(b, sum[:]...)
}

// checkSum pads the pending data and returns the final digest. d ends in the
// post-padding state.
func (d *digest) checkSum() [Size]byte {
	// length in bits, 64-bit big-endian
	hi := d.len[1]<<3 | d.len[0]>>29
	lo := d.len[0] << 3

	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	n := 56 - d.nx
	if d.nx >= 56 {
		n += BlockSize
	}
	binary.BigEndian.PutUint32(pad[n:], hi)
	binary.BigEndian.PutUint32(pad[n+4:], lo)
	_, _ = d.Write(pad[:n+8])

	if d.nx != 0 {
		panic("sm3: pending data after padding")
	}

	var out [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}
