package avcdecoder

import (
	"errors"
	"testing"
)

func TestDecodeBeforeInit(t *testing.T) {
	d := New()
	if err := d.Decode([]byte{0, 0, 0, 1, 0x65}, 0, 5); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestReadFrameBeforeInit(t *testing.T) {
	d := New()
	if d.ReadFrameInto(make([]byte, 16)) {
		t.Error("uninitialized decoder must not produce frames")
	}
}

func TestInputPaddingBeforeInit(t *testing.T) {
	d := New()
	if got := d.InputPadding(); got != fallbackInputPadding {
		t.Errorf("expected fallback padding %d, got %d", fallbackInputPadding, got)
	}
}

func TestDestroyBeforeInit(t *testing.T) {
	d := New()
	// Must not panic.
	d.Destroy()
	d.Destroy()
}
