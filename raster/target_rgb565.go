package raster

import "image/color"

// RGB565Target renders into an RGB565 framebuffer buffer.
//
// Callers provide the backing buffer and layout (stride). Pixels are stored
// little-endian.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565Target allocates a tightly packed w×h buffer.
func NewRGB565Target(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c color.RGBA) {
	if !t.valid() {
		return
	}
	p := RGB565(c.R, c.G, c.B)
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c color.RGBA) {
	if !t.valid() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := RGB565(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At returns the pixel at (x, y) expanded back to 8-bit channels.
func (t *RGB565Target) At(x, y int) color.RGBA {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return color.RGBA{}
	}
	off := y*t.Stride + x*2
	r, g, b := RGB888From565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// RGB565 packs 8-bit channels as rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
}
