package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// DisplayerTarget draws into a TinyGo display driver (ST7789, ILI9341, ...).
//
// Clear paints every pixel, which is slow on SPI panels; drivers with a native
// fill are not special-cased.
type DisplayerTarget struct {
	D drivers.Displayer
}

func (t DisplayerTarget) Size() (w, h int) {
	if t.D == nil {
		return 0, 0
	}
	x, y := t.D.Size()
	return int(x), int(y)
}

func (t DisplayerTarget) SetPixel(x, y int, c color.RGBA) {
	if t.D == nil {
		return
	}
	w, h := t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	t.D.SetPixel(int16(x), int16(y), c)
}

func (t DisplayerTarget) Clear(c color.RGBA) {
	w, h := t.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.D.SetPixel(int16(x), int16(y), c)
		}
	}
}

// Display flushes the driver's buffer, if it has one.
func (t DisplayerTarget) Display() error {
	if t.D == nil {
		return nil
	}
	return t.D.Display()
}

// targetDisplayer exposes a Target as a drivers.Displayer so tinyfont can draw
// on it.
type targetDisplayer struct {
	t Target
}

func (d targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) { d.t.SetPixel(int(x), int(y), c) }

func (d targetDisplayer) Display() error { return nil }
