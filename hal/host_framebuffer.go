//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"sync"

	"spincube/raster"
)

// hostFramebuffer is an RGB565 frame the headless runner renders into.
type hostFramebuffer struct {
	mu     sync.Mutex
	target *raster.RGB565Target
	canvas *raster.Canvas
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	t := raster.NewRGB565Target(width, height)
	return &hostFramebuffer{target: t, canvas: raster.NewCanvas(t)}
}

// render draws one frame plus the HUD under the lock.
func (f *hostFramebuffer) render(st Stepper, hud color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st.Render(f.canvas)
	raster.DrawText(f.target, 2, 2, hud, st.Status()...)
}

// snapshot expands the framebuffer to RGBA.
func (f *hostFramebuffer) snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, h := f.target.W, f.target.H
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, f.target.At(x, y))
		}
	}
	return img
}
