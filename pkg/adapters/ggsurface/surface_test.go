package ggsurface

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestBlit_PaintsDestinationRect(t *testing.T) {
	s := New(100, 100, color.Black)

	red := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range red.Pix {
		red.Pix[i] = 0xFF
	}
	for i := 0; i < len(red.Pix); i += 4 {
		red.Pix[i+1] = 0 // G
		red.Pix[i+2] = 0 // B
	}

	s.Blit(red, image.Rect(10, 10, 90, 90))

	out := s.Image()
	r, _, _, _ := out.At(50, 50).RGBA()
	if r>>8 != 0xFF {
		t.Errorf("inside dst: expected red, got %v", out.At(50, 50))
	}
	r, g, b, _ := out.At(5, 5).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("outside dst: expected black background, got %v", out.At(5, 5))
	}
}

func TestBlit_IgnoresDegenerateRects(t *testing.T) {
	s := New(50, 50, color.Black)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))

	// Must not panic or divide by zero.
	s.Blit(src, image.Rectangle{})
	s.Blit(image.NewRGBA(image.Rectangle{}), image.Rect(0, 0, 50, 50))
}

func TestSnapshotPNG(t *testing.T) {
	s := New(20, 20, color.White)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := s.SnapshotPNG(path); err != nil {
		t.Fatalf("SnapshotPNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("snapshot is empty")
	}
}
