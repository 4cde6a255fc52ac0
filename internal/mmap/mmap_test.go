package mmap

import (
	"errors"
	"testing"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(4096)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}

	b := m.Bytes()
	if len(b) != 4096 {
		t.Fatalf("expected 4096 bytes, got %d", len(b))
	}
	if m.Size() != 4096 {
		t.Errorf("expected size 4096, got %d", m.Size())
	}

	// The mapping must be readable and writable.
	b[0] = 0xAA
	b[4095] = 0x55
	if b[0] != 0xAA || b[4095] != 0x55 {
		t.Error("mapping not writable")
	}

	if err := m.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestMapAnonInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := MapAnon(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	m, err := MapAnon(4096)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}

	if err := m.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	if m.Bytes() != nil {
		t.Error("expected nil bytes after close")
	}
}

func TestMapAnonUnalignedSize(t *testing.T) {
	m, err := MapAnon(100)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}
	defer m.Close()

	if len(m.Bytes()) != 100 {
		t.Errorf("expected 100 bytes, got %d", len(m.Bytes()))
	}
}
