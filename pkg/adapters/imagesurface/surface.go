// Package imagesurface provides an in-memory display surface backed by an
// RGBA canvas, for headless playback and tests.
package imagesurface

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"

	"github.com/user/streamview/pkg/ports"
)

// Surface is an offscreen RGBA display surface. Resize may be called between
// presentation ticks, which is how tests exercise the per-tick letterbox
// recomputation.
type Surface struct {
	mu     sync.Mutex
	canvas *image.RGBA
	bg     color.Color
}

// New creates a surface of the given size filled with the background color.
// A nil background leaves the canvas zeroed (transparent black).
func New(width, height int, bg color.Color) *Surface {
	s := &Surface{bg: bg}
	s.Resize(width, height)
	return s
}

// Resize replaces the canvas with a fresh one of the given size.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
	if s.bg != nil {
		draw.Draw(s.canvas, s.canvas.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
	}
}

// Size returns the current canvas dimensions.
func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Blit stretches the whole source into dst with bilinear filtering.
func (s *Surface) Blit(src image.Image, dst image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.ApproxBiLinear.Scale(s.canvas, dst, src, src.Bounds(), draw.Src, nil)
}

// Image returns a copy of the current canvas.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.canvas.Bounds())
	copy(out.Pix, s.canvas.Pix)
	return out
}

var _ ports.Surface = (*Surface)(nil)
