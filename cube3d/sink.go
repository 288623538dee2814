package cube3d

import "image/color"

// Sink is the drawing side of a backend. Size is read once per Emit so a
// resized window is picked up on the next frame.
//
// Implementations should clip out-of-bounds coordinates.
type Sink interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	Line(a, b Vec2, c color.RGBA)
	Square(center Vec2, size float64, c color.RGBA)
}

// Segment is a line in pixel space.
type Segment struct {
	A, B Vec2
}

// Marker is an axis-aligned square centered on a projected vertex.
type Marker struct {
	Center Vec2
	Size   float64
}

// Palette holds the two colors a frame is drawn with.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}
