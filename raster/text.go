package raster

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// HUDFont is the font overlay text is drawn with.
var HUDFont tinyfont.Fonter = &tinyfont.TomThumb

// hudLineHeight is TomThumb's cell height plus one row of spacing.
const hudLineHeight = 7

// DrawText writes lines top-down starting at (x, y), y being the top edge of
// the first line.
func DrawText(t Target, x, y int, c color.RGBA, lines ...string) {
	if t == nil {
		return
	}
	d := targetDisplayer{t: t}
	for i, s := range lines {
		baseline := int16(y + (i+1)*hudLineHeight - 1)
		tinyfont.WriteLine(d, HUDFont, int16(x), baseline, s, c)
	}
}

// TextWidth returns the pixel width of s in HUDFont.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(HUDFont, s)
	return int(outbox)
}
