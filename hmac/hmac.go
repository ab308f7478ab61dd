//
// hmac.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// Keyed-Hash Message Authentication Code, FIPS 198:
//
//	ipad = 0x36 repeated to the block size
//	opad = 0x5c repeated to the block size
//	hmac = H([key ^ opad] H([key ^ ipad] message))

// Package hmac implements the HMAC construction over any hash that
// provides the incremental Reset/Update/Finish contract. The
// construction itself knows nothing about SHA-1; a hash is plugged in
// through a constructor function, for example:
//
//	m, err := hmac.New(func() hmac.Hash { return sha1.New() }, key)
//
// Verifiers should compare tags with Equal to avoid leaking timing
// information.
package hmac

import (
	"crypto/subtle"
	"errors"
)

// Hash is the incremental digest contract the construction is built
// on. A hash moves to a finalized state on the first Finish call and
// rejects Update until Reset.
type Hash interface {
	// Reset returns the hash to its initial state.
	Reset()

	// Update absorbs p into the hash.
	Update(p []byte) error

	// Finish finalizes the hash and writes the checksum into out.
	Finish(out []byte) error

	// Size returns the checksum length in bytes.
	Size() int

	// BlockSize returns the block size of the hash in bytes.
	BlockSize() int

	// Clean zeroes the hash state.
	Clean()
}

// stateSaver is the optional snapshot capability of a hash. When both
// halves of the construction support it, the pad-primed states are
// captured once at construction time and every Reset becomes two
// snapshot restores instead of two block hashes.
type stateSaver interface {
	SaveState() ([]byte, error)
	RestoreState([]byte) error
}

// ErrorOutputTooShort is returned when the output buffer given to
// Finish is shorter than the checksum length.
var ErrorOutputTooShort = errors.New("hmac: output buffer too short")

// HMAC computes a keyed-hash message authentication code
// incrementally. Instances are not safe for concurrent use.
type HMAC struct {
	inner, outer Hash
	ipad, opad   []byte
	innerState   []byte
	outerState   []byte
	done         bool
}

// New creates an HMAC instance using hashes created with newHash and
// the given key. A key longer than the hash block size is replaced by
// its own checksum before padding.
func New(newHash func() Hash, key []byte) (*HMAC, error) {
	inner := newHash()
	outer := newHash()

	bs := inner.BlockSize()
	if len(key) > bs {
		kh := newHash()
		if err := kh.Update(key); err != nil {
			return nil, err
		}
		sum := make([]byte, kh.Size())
		if err := kh.Finish(sum); err != nil {
			return nil, err
		}
		kh.Clean()
		key = sum
	}

	m := &HMAC{
		inner: inner,
		outer: outer,
		ipad:  make([]byte, bs),
		opad:  make([]byte, bs),
	}
	copy(m.ipad, key)
	copy(m.opad, key)
	for i := range m.ipad {
		m.ipad[i] ^= 0x36
	}
	for i := range m.opad {
		m.opad[i] ^= 0x5c
	}

	if err := m.inner.Update(m.ipad); err != nil {
		return nil, err
	}
	if si, ok := inner.(stateSaver); ok {
		if so, ok := outer.(stateSaver); ok {
			if err := m.outer.Update(m.opad); err != nil {
				return nil, err
			}
			var err error
			if m.innerState, err = si.SaveState(); err != nil {
				return nil, err
			}
			if m.outerState, err = so.SaveState(); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Size returns the tag length in bytes.
func (m *HMAC) Size() int { return m.inner.Size() }

// BlockSize returns the block size of the underlying hash in bytes.
func (m *HMAC) BlockSize() int { return m.inner.BlockSize() }

// Update absorbs message bytes. It fails once the tag has been
// finalized, until Reset.
func (m *HMAC) Update(p []byte) error {
	return m.inner.Update(p)
}

// Finish finalizes the tag and writes it into out. Like the
// underlying hash, the first call finalizes and subsequent calls
// write the same tag again.
func (m *HMAC) Finish(out []byte) error {
	if len(out) < m.inner.Size() {
		return ErrorOutputTooShort
	}
	if !m.done {
		innerSum := make([]byte, m.inner.Size())
		if err := m.inner.Finish(innerSum); err != nil {
			return err
		}
		if m.outerState != nil {
			if err := m.outer.(stateSaver).RestoreState(
				m.outerState); err != nil {
				return err
			}
		} else {
			m.outer.Reset()
			if err := m.outer.Update(m.opad); err != nil {
				return err
			}
		}
		if err := m.outer.Update(innerSum); err != nil {
			return err
		}
		m.done = true
	}
	return m.outer.Finish(out)
}

// Digest finalizes the tag into a freshly allocated buffer.
func (m *HMAC) Digest() ([]byte, error) {
	out := make([]byte, m.inner.Size())
	if err := m.Finish(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Reset prepares the instance for a new message under the same key.
func (m *HMAC) Reset() {
	m.done = false
	if m.innerState != nil {
		// Restoring our own snapshots cannot fail.
		m.inner.(stateSaver).RestoreState(m.innerState)
		m.outer.(stateSaver).RestoreState(m.outerState)
		return
	}
	m.inner.Reset()
	m.inner.Update(m.ipad)
	m.outer.Reset()
}

// Clean zeroes the key-derived pads, the captured snapshots, and both
// hash states. The instance must not be used afterwards; the key
// material is gone.
func (m *HMAC) Clean() {
	for i := range m.ipad {
		m.ipad[i] = 0
	}
	for i := range m.opad {
		m.opad[i] = 0
	}
	for i := range m.innerState {
		m.innerState[i] = 0
	}
	for i := range m.outerState {
		m.outerState[i] = 0
	}
	m.innerState = nil
	m.outerState = nil
	m.inner.Clean()
	m.outer.Clean()
	m.done = false
}

// Sum computes the HMAC tag of message under key in one call. The
// intermediate key material is wiped before returning.
func Sum(newHash func() Hash, key, message []byte) ([]byte, error) {
	m, err := New(newHash, key)
	if err != nil {
		return nil, err
	}
	defer m.Clean()

	if err := m.Update(message); err != nil {
		return nil, err
	}
	return m.Digest()
}

// Equal compares two tags in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
