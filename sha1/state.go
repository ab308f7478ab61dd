//
// state.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"errors"
)

const (
	stateMagic = "sha\x01"
	stateSize  = len(stateMagic) + 5*4 + chunk + 8
)

// ErrorInvalidState is returned when RestoreState is given a snapshot
// this package did not produce.
var ErrorInvalidState = errors.New("sha1: invalid state snapshot")

// SaveState captures the chaining state, the buffered partial block,
// and the byte count of an active digest into an opaque snapshot. It
// returns ErrorFinalized if the digest has been finalized; a
// finalized digest accepts no further input, so its snapshot would be
// unusable. The snapshot shares no memory with the digest.
func (d *Digest) SaveState() ([]byte, error) {
	if d.done {
		return nil, ErrorFinalized
	}
	b := make([]byte, stateSize)
	n := copy(b, stateMagic)
	for _, v := range d.h {
		binary.BigEndian.PutUint32(b[n:], v)
		n += 4
	}
	// The buffered tail is always d.len mod 64 bytes, so the count
	// need not be stored separately.
	n += copy(b[n:], d.x[:d.nx])
	binary.BigEndian.PutUint64(b[len(b)-8:], d.len)
	return b, nil
}

// RestoreState reinstalls a snapshot produced by SaveState. The
// digest becomes active regardless of its previous state.
func (d *Digest) RestoreState(b []byte) error {
	if len(b) != stateSize || string(b[:len(stateMagic)]) != stateMagic {
		return ErrorInvalidState
	}
	n := len(stateMagic)
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(b[n:])
		n += 4
	}
	d.len = binary.BigEndian.Uint64(b[len(b)-8:])
	d.nx = int(d.len % chunk)
	copy(d.x[:], b[n:n+d.nx])
	d.done = false
	return nil
}
