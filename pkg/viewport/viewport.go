// Package viewport computes aspect-preserving placement of decoded frames on
// a display surface. This is a pure function with no external dependencies.
package viewport

import "image"

// Fit returns the centered destination rectangle for scaling a srcW x srcH
// frame uniformly to the largest size that fits within dstW x dstH. The
// surrounding bars implied by the offsets are the letterbox/pillarbox area.
//
// Scaled dimensions and offsets use truncating integer math. Any non-positive
// dimension yields the empty rectangle.
func Fit(srcW, srcH, dstW, dstH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}

	widthScale := float64(dstW) / float64(srcW)
	heightScale := float64(dstH) / float64(srcH)
	scale := widthScale
	if heightScale < scale {
		scale = heightScale
	}

	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	x, y := 0, 0
	if dstW > newW {
		x = (dstW - newW) / 2
	}
	if dstH > newH {
		y = (dstH - newH) / 2
	}

	return image.Rect(x, y, x+newW, y+newH)
}
