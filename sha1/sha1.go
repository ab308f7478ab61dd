//
// sha1.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm, RFC 3174, as an
// incremental digest with explicit finalization. A digest moves from
// the active state to the finalized state on the first Finish call;
// further Update calls fail until Reset. The package also provides
// state snapshots for cheap cloning of a partially hashed prefix and
// explicit wiping of the digest memory.
//
// SHA-1 is cryptographically broken and must not be used where
// collision resistance matters.
package sha1

import (
	"encoding/binary"
	"errors"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The block size of SHA-1 in bytes.
const BlockSize = 64

const (
	chunk = 64
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

var (
	// ErrorFinalized is returned when a finalized digest is updated
	// or snapshotted without an intervening Reset.
	ErrorFinalized = errors.New("sha1: digest already finalized")

	// ErrorOutputTooShort is returned when the output buffer given to
	// Finish is shorter than Size bytes.
	ErrorOutputTooShort = errors.New("sha1: output buffer too short")
)

// Digest computes a SHA-1 checksum incrementally. The zero value is
// not ready for use; call New or Reset first.
type Digest struct {
	h    [5]uint32
	x    [2 * chunk]byte
	nx   int
	len  uint64
	w    [80]uint32
	done bool
}

// New returns a new digest computing the SHA-1 checksum.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset returns the digest to its initial state. A finalized digest
// becomes active again.
func (d *Digest) Reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	d.nx = 0
	d.len = 0
	d.done = false
}

// Size returns the checksum length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block size of the hash in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Update absorbs p into the digest. It returns ErrorFinalized if the
// digest has been finalized and not reset.
func (d *Digest) Update(p []byte) error {
	if d.done {
		return ErrorFinalized
	}
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:chunk], p)
		d.nx += n
		if d.nx == chunk {
			blocks(&d.h, &d.w, d.x[:chunk])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		n := blocks(&d.h, &d.w, p)
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nil
}

// Finish finalizes the digest and writes the 20-byte checksum into
// out. The first call pads the buffered data and runs the final block
// or blocks; subsequent calls write the same checksum again without
// reprocessing. Finish returns ErrorOutputTooShort if out is shorter
// than Size bytes.
func (d *Digest) Finish(out []byte) error {
	if len(out) < Size {
		return ErrorOutputTooShort
	}
	if !d.done {
		// Padding: a 1 bit, then 0 bits up to 56 mod 64, then the
		// message length in bits as a 64-bit big-endian value. The
		// two-block buffer has room even when the terminator pushes
		// the length field into the next block.
		n := d.nx
		padlen := chunk
		if n >= 56 {
			padlen = 2 * chunk
		}
		d.x[n] = 0x80
		for i := n + 1; i < padlen-8; i++ {
			d.x[i] = 0
		}
		binary.BigEndian.PutUint64(d.x[padlen-8:], d.len<<3)

		blocks(&d.h, &d.w, d.x[:padlen])
		d.nx = 0
		d.done = true
	}
	binary.BigEndian.PutUint32(out[0:], d.h[0])
	binary.BigEndian.PutUint32(out[4:], d.h[1])
	binary.BigEndian.PutUint32(out[8:], d.h[2])
	binary.BigEndian.PutUint32(out[12:], d.h[3])
	binary.BigEndian.PutUint32(out[16:], d.h[4])
	return nil
}

// Digest finalizes the digest into a freshly allocated buffer.
func (d *Digest) Digest() ([]byte, error) {
	out := make([]byte, Size)
	if err := d.Finish(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clean zeroes the block buffer, the message schedule, and the
// chaining state, then resets the digest. The digest is reusable
// afterwards.
func (d *Digest) Clean() {
	for i := range d.x {
		d.x[i] = 0
	}
	for i := range d.w {
		d.w[i] = 0
	}
	for i := range d.h {
		d.h[i] = 0
	}
	d.nx = 0
	d.len = 0
	d.Reset()
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	d.Update(data)

	var out [Size]byte
	d.Finish(out[:])
	return out
}
