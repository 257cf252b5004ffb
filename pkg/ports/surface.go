package ports

import "image"

// Surface abstracts the display target. Implementations may be a live window
// or an offscreen canvas; either way the surface can change size between
// presentation ticks, so Size is queried every tick.
type Surface interface {
	// Size returns the current surface dimensions in pixels.
	Size() (width, height int)

	// Blit stretches the entire source image into the destination rectangle.
	// The area outside dst is left untouched (letterbox/pillarbox bars).
	Blit(src image.Image, dst image.Rectangle)
}
