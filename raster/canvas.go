package raster

import (
	"image/color"
	"math"

	"spincube/cube3d"
)

// Canvas implements cube3d.Sink over a Target.
type Canvas struct {
	T Target
}

var _ cube3d.Sink = (*Canvas)(nil)

func NewCanvas(t Target) *Canvas { return &Canvas{T: t} }

func (c *Canvas) Size() (w, h int) {
	if c == nil || c.T == nil {
		return 0, 0
	}
	return c.T.Size()
}

func (c *Canvas) Clear(col color.RGBA) {
	if c == nil || c.T == nil {
		return
	}
	c.T.Clear(col)
}

// Line rounds both endpoints to the pixel grid and draws with Bresenham.
// Endpoints far outside the target are clamped first so a degenerate
// projection cannot stall the loop.
func (c *Canvas) Line(a, b cube3d.Vec2, col color.RGBA) {
	if c == nil || c.T == nil {
		return
	}
	w, h := c.T.Size()
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := toPixel(a, w, h)
	x1, y1 := toPixel(b, w, h)
	drawLine(c.T, x0, y0, x1, y1, col)
}

// Square fills an axis-aligned square of side size centered on center.
func (c *Canvas) Square(center cube3d.Vec2, size float64, col color.RGBA) {
	if c == nil || c.T == nil || size <= 0 {
		return
	}
	w, h := c.T.Size()
	half := size * 0.5
	minX := int(math.Round(center.X - half))
	minY := int(math.Round(center.Y - half))
	maxX := minX + int(math.Round(size)) - 1
	maxY := minY + int(math.Round(size)) - 1
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c.T.SetPixel(x, y, col)
		}
	}
}

// guard keeps rounded coordinates within a few viewports of the target.
const guard = 4

func toPixel(p cube3d.Vec2, w, h int) (x, y int) {
	return clampCoord(p.X, w), clampCoord(p.Y, h)
}

func clampCoord(v float64, extent int) int {
	lo, hi := float64(-guard*extent), float64((guard+1)*extent)
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int(math.Round(v))
}

func drawLine(t Target, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
