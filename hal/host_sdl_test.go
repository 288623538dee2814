//go:build !tinygo && cgo

package hal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestSDLKeycodesMatchHeaders(t *testing.T) {
	cases := []struct {
		name string
		sdl  sdl.Keycode
		ours int32
	}{
		{"escape", sdl.K_ESCAPE, sdlkEscape},
		{"space", sdl.K_SPACE, sdlkSpace},
		{"tab", sdl.K_TAB, sdlkTab},
	}
	for _, tc := range cases {
		if int32(tc.sdl) != tc.ours {
			t.Fatalf("%s: sdl=%#x ours=%#x", tc.name, int32(tc.sdl), tc.ours)
		}
	}
}
