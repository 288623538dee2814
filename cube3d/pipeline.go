package cube3d

import "fmt"

// DrawMode selects what a frame emits.
type DrawMode uint8

const (
	DrawPoints DrawMode = iota
	DrawWireframe
)

func (m DrawMode) String() string {
	switch m {
	case DrawPoints:
		return "points"
	case DrawWireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("DrawMode(%d)", uint8(m))
	}
}

// ParseDrawMode accepts "points" or "wireframe".
func ParseDrawMode(s string) (DrawMode, error) {
	switch s {
	case "points", "squares":
		return DrawPoints, nil
	case "wireframe", "lines":
		return DrawWireframe, nil
	}
	return 0, fmt.Errorf("unknown draw mode %q", s)
}

// Pipeline transforms the cube for one viewport and angle.
//
// The zero value is not usable: Rotator must be set and Distance must exceed
// CubeRadius.
type Pipeline struct {
	Rotator Rotator
	// Distance is added to z after rotation.
	Distance float64
	// AspectCorrect scales x by h/w so the cube is not stretched by
	// non-square viewports.
	AspectCorrect bool
	// MarkerSize is the side of the squares emitted in DrawPoints mode.
	MarkerSize float64
}

func (p Pipeline) aspect(w, h float64) float64 {
	if !p.AspectCorrect || w == 0 {
		return 1
	}
	return h / w
}

// Transform takes a local-space vertex to pixel coordinates.
func (p Pipeline) Transform(v Vec3, theta, w, h float64) Vec2 {
	r := p.Rotator.Rotate(v, theta).Translate(p.Distance)
	return ToScreen(Project(r, p.aspect(w, h)), w, h)
}

// Points returns the projected cube vertices in CubeVertices order.
func (p Pipeline) Points(theta, w, h float64) [len(CubeVertices)]Vec2 {
	var out [len(CubeVertices)]Vec2
	for i, v := range CubeVertices {
		out[i] = p.Transform(v, theta, w, h)
	}
	return out
}

// Segments returns one line per cube edge.
func (p Pipeline) Segments(theta, w, h float64) [len(CubeEdges)]Segment {
	pts := p.Points(theta, w, h)
	var out [len(CubeEdges)]Segment
	for i, e := range CubeEdges {
		out[i] = Segment{A: pts[e[0]], B: pts[e[1]]}
	}
	return out
}

// Markers returns one square per cube vertex.
func (p Pipeline) Markers(theta, w, h float64) [len(CubeVertices)]Marker {
	pts := p.Points(theta, w, h)
	var out [len(CubeVertices)]Marker
	for i, c := range pts {
		out[i] = Marker{Center: c, Size: p.MarkerSize}
	}
	return out
}

// Emit draws one full frame into s: clear, then lines or squares.
func (p Pipeline) Emit(s Sink, theta float64, mode DrawMode, pal Palette) {
	iw, ih := s.Size()
	s.Clear(pal.Background)
	if iw <= 0 || ih <= 0 {
		return
	}
	w, h := float64(iw), float64(ih)

	switch mode {
	case DrawWireframe:
		for _, seg := range p.Segments(theta, w, h) {
			s.Line(seg.A, seg.B, pal.Foreground)
		}
	default:
		for _, m := range p.Markers(theta, w, h) {
			s.Square(m.Center, m.Size, pal.Foreground)
		}
	}
}
