// Package ggsurface draws presentation output onto a gg context, for
// headless playback with PNG snapshots.
package ggsurface

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"

	"github.com/user/streamview/pkg/ports"
)

// Surface paints frames onto a fixed-size gg canvas. The background color
// fills the letterbox bars once at creation; Blit only touches the
// destination rectangle.
type Surface struct {
	mu     sync.Mutex
	dc     *gg.Context
	width  int
	height int
}

// New creates a surface of the given size filled with the background color.
func New(width, height int, bg color.Color) *Surface {
	dc := gg.NewContext(width, height)
	if bg != nil {
		dc.SetColor(bg)
		dc.Clear()
	}
	return &Surface{dc: dc, width: width, height: height}
}

// Size returns the canvas dimensions.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Blit stretches the whole source into dst.
func (s *Surface) Blit(src image.Image, dst image.Rectangle) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || dst.Empty() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dc.Push()
	s.dc.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.dc.Scale(float64(dst.Dx())/float64(b.Dx()), float64(dst.Dy())/float64(b.Dy()))
	s.dc.DrawImage(src, 0, 0)
	s.dc.Pop()
}

// SnapshotPNG writes the current canvas to path.
func (s *Surface) SnapshotPNG(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.SavePNG(path)
}

// Image returns the current canvas.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Image()
}

var _ ports.Surface = (*Surface)(nil)
