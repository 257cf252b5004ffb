// Package fynewindow shows presentation output in a resizable Fyne window.
package fynewindow

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"golang.org/x/image/draw"

	"github.com/user/streamview/pkg/ports"
)

// Surface paints frames into a canvas.Image stretched over the window.
// Size follows the live window, so the letterbox rectangle adapts when the
// user resizes; the backing canvas is rebuilt on the next blit after a
// resize, which repaints the bars black.
type Surface struct {
	app fyne.App
	win fyne.Window
	img *canvas.Image

	mu   sync.Mutex
	back *image.RGBA
}

// New creates a window of the given initial size. ShowAndRun must be called
// from the main goroutine to start the event loop.
func New(title string, width, height int) *Surface {
	a := app.New()
	w := a.NewWindow(title)

	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	img.FillMode = canvas.ImageFillStretch
	w.SetContent(img)
	w.Resize(fyne.NewSize(float32(width), float32(height)))

	return &Surface{app: a, win: w, img: img}
}

// Size returns the current content dimensions of the window.
func (s *Surface) Size() (int, int) {
	sz := s.win.Canvas().Size()
	return int(sz.Width), int(sz.Height)
}

// Blit stretches the whole source into dst on the backing canvas and asks
// Fyne to repaint.
func (s *Surface) Blit(src image.Image, dst image.Rectangle) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	s.mu.Lock()
	if s.back == nil || s.back.Bounds().Dx() != w || s.back.Bounds().Dy() != h {
		s.back = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.ApproxBiLinear.Scale(s.back, dst, src, src.Bounds(), draw.Src, nil)
	s.img.Image = s.back
	s.mu.Unlock()

	s.img.Refresh()
}

// ShowAndRun shows the window and blocks running the Fyne event loop.
func (s *Surface) ShowAndRun() {
	s.win.ShowAndRun()
}

// Close closes the window, ending the event loop.
func (s *Surface) Close() {
	s.win.Close()
}

var _ ports.Surface = (*Surface)(nil)
