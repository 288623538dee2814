package hal

import "image/color"

// SDL2 keycodes for the bound keys. SDL uses the ASCII value for printable
// and control keys (SDL_keycode.h).
const (
	sdlkTab    int32 = '\t'
	sdlkEscape int32 = 0x1B
	sdlkSpace  int32 = ' '
)

func sdlKey(sym int32) KeyCode {
	switch sym {
	case sdlkEscape:
		return KeyEscape
	case sdlkSpace:
		return KeySpace
	case sdlkTab:
		return KeyTab
	}
	return KeyUnknown
}

// putARGB32 writes c at (x, y) in a 32-bit surface with the given pitch,
// in the little-endian ARGB32 byte order cairo and SDL share (B, G, R, A).
// Writes outside pix are dropped.
func putARGB32(pix []byte, pitch, x, y int, c color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	i := y*pitch + x*4
	if i+3 >= len(pix) {
		return
	}
	pix[i+0] = c.B
	pix[i+1] = c.G
	pix[i+2] = c.R
	pix[i+3] = c.A
}
