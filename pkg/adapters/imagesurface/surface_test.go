package imagesurface

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestBlit_FillsDestinationAndLeavesBars(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	s := New(100, 100, bg)

	red := color.RGBA{R: 255, A: 255}
	s.Blit(solid(4, 4, red), image.Rect(0, 25, 100, 75))

	out := s.Image()
	if got := out.RGBAAt(50, 50); got != red {
		t.Errorf("inside dst: expected %v, got %v", red, got)
	}
	if got := out.RGBAAt(50, 10); got != bg {
		t.Errorf("letterbox bar above dst: expected background %v, got %v", bg, got)
	}
	if got := out.RGBAAt(50, 90); got != bg {
		t.Errorf("letterbox bar below dst: expected background %v, got %v", bg, got)
	}
}

func TestResize_ChangesReportedSize(t *testing.T) {
	s := New(640, 480, nil)
	if w, h := s.Size(); w != 640 || h != 480 {
		t.Fatalf("expected 640x480, got %dx%d", w, h)
	}

	s.Resize(800, 800)
	if w, h := s.Size(); w != 800 || h != 800 {
		t.Errorf("after resize: expected 800x800, got %dx%d", w, h)
	}
}

func TestImage_ReturnsCopy(t *testing.T) {
	s := New(10, 10, nil)
	out := s.Image()
	out.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	if got := s.Image().RGBAAt(0, 0); got.R != 0 {
		t.Error("mutating the returned image must not affect the surface")
	}
}
