package raster

import "image/color"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}
