package hal

import (
	"image/color"
	"testing"
)

func TestSDLKey(t *testing.T) {
	cases := []struct {
		sym  int32
		want KeyCode
	}{
		{0x1B, KeyEscape},
		{' ', KeySpace},
		{'\t', KeyTab},
		{'\r', KeyUnknown},
		{'a', KeyUnknown},
		{0, KeyUnknown},
	}
	for _, tc := range cases {
		if got := sdlKey(tc.sym); got != tc.want {
			t.Fatalf("sdlKey(%#x) = %v, want %v", tc.sym, got, tc.want)
		}
	}
}

func TestPutARGB32(t *testing.T) {
	const w, h, pitch = 3, 2, 16 // pitch wider than w*4, as SDL pads rows
	pix := make([]byte, pitch*h)
	c := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}

	putARGB32(pix, pitch, 2, 1, c)
	i := 1*pitch + 2*4
	if got := pix[i : i+4]; got[0] != 0x33 || got[1] != 0x22 || got[2] != 0x11 || got[3] != 0x44 {
		t.Fatalf("pixel bytes = % x, want 33 22 11 44", got)
	}
	for j, b := range pix {
		if (j < i || j >= i+4) && b != 0 {
			t.Fatalf("byte %d touched: %#x", j, b)
		}
	}

	// Out of range writes are dropped, not panics.
	putARGB32(pix, pitch, -1, 0, c)
	putARGB32(pix, pitch, 0, -1, c)
	putARGB32(pix, pitch, 3, h, c)
	putARGB32(nil, pitch, 0, 0, c)
	for j, b := range pix {
		if (j < i || j >= i+4) && b != 0 {
			t.Fatalf("byte %d touched by out of range write: %#x", j, b)
		}
	}
}
