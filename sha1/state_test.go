//
// state_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	"errors"
	"testing"
)

func TestSaveRestore(t *testing.T) {
	prefix := keystream(t, 4, 100)
	suffixes := [][]byte{
		[]byte(""),
		[]byte("a"),
		keystream(t, 5, 1000),
	}

	d := New()
	if err := d.Update(prefix); err != nil {
		t.Fatalf("Update: %v", err)
	}
	state, err := d.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	for _, suffix := range suffixes {
		if err := d.RestoreState(state); err != nil {
			t.Fatalf("RestoreState: %v", err)
		}
		if err := d.Update(suffix); err != nil {
			t.Fatalf("Update: %v", err)
		}
		sum, err := d.Digest()
		if err != nil {
			t.Fatalf("Digest: %v", err)
		}

		expected := Sum(append(append([]byte{}, prefix...), suffix...))
		if !bytes.Equal(sum, expected[:]) {
			t.Errorf("restored digest %x, expected %x", sum, expected)
		}
	}
}

func TestSaveRestoreBlockAligned(t *testing.T) {
	// A snapshot with an empty block buffer.
	prefix := keystream(t, 6, 128)

	d := New()
	if err := d.Update(prefix); err != nil {
		t.Fatalf("Update: %v", err)
	}
	state, err := d.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	fresh := New()
	if err := fresh.RestoreState(state); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}
	if err := fresh.Update([]byte("tail")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	sum, err := fresh.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	expected := Sum(append(append([]byte{}, prefix...), []byte("tail")...))
	if !bytes.Equal(sum, expected[:]) {
		t.Errorf("restored digest %x, expected %x", sum, expected)
	}
}

func TestSaveStateFinalized(t *testing.T) {
	d := New()
	if _, err := d.Digest(); err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if _, err := d.SaveState(); !errors.Is(err, ErrorFinalized) {
		t.Errorf("SaveState on finalized digest: %v, expected %v",
			err, ErrorFinalized)
	}
}

func TestRestoreClearsFinalized(t *testing.T) {
	d := New()
	if err := d.Update([]byte("prefix")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	state, err := d.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if _, err := d.Digest(); err != nil {
		t.Fatalf("Digest: %v", err)
	}

	if err := d.RestoreState(state); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}
	if err := d.Update([]byte("suffix")); err != nil {
		t.Errorf("Update after RestoreState: %v", err)
	}
}

func TestRestoreInvalidState(t *testing.T) {
	d := New()
	for _, state := range [][]byte{
		nil,
		{},
		make([]byte, stateSize-1),
		make([]byte, stateSize),
		bytes.Repeat([]byte{0xff}, stateSize),
	} {
		if err := d.RestoreState(state); !errors.Is(err, ErrorInvalidState) {
			t.Errorf("RestoreState(%d bytes): %v, expected %v",
				len(state), err, ErrorInvalidState)
		}
	}
}

func TestStateIsolation(t *testing.T) {
	d := New()
	if err := d.Update([]byte("shared prefix")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	state, err := d.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	// Wiping the source digest must not corrupt the snapshot.
	d.Clean()

	fresh := New()
	if err := fresh.RestoreState(state); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}
	if err := fresh.Update([]byte("!")); err != nil {
		t.Fatalf("Update: %v", err)
	}
	sum, err := fresh.Digest()
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	expected := Sum([]byte("shared prefix!"))
	if !bytes.Equal(sum, expected[:]) {
		t.Errorf("snapshot corrupted by Clean: %x, expected %x",
			sum, expected)
	}
}
