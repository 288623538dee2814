package cube3d

import (
	"math"
	"testing"
)

func TestProjectDividesByDepth(t *testing.T) {
	got := Project(V3(2, -3, 4), 1)
	if got != V2(0.5, -0.75) {
		t.Fatalf("got %v", got)
	}
	got = Project(V3(2, -3, 4), 0.5)
	if got != V2(0.25, -0.75) {
		t.Fatalf("aspect-corrected got %v", got)
	}
}

func TestToScreenCorners(t *testing.T) {
	if got := ToScreen(V2(-1, -1), 800, 600); got != V2(0, 0) {
		t.Fatalf("(-1,-1) -> %v", got)
	}
	if got := ToScreen(V2(1, 1), 800, 600); got != V2(800, 600) {
		t.Fatalf("(1,1) -> %v", got)
	}
}

func TestCenterPointMapsToViewportCenter(t *testing.T) {
	for _, vp := range [][2]float64{{800, 600}, {200, 200}, {1, 3}, {1920, 1080}} {
		w, h := vp[0], vp[1]
		for _, distance := range []float64{3, 3.5, 4} {
			for _, ac := range []float64{1, h / w} {
				got := ToScreen(Project(V3(0, 0, distance), ac), w, h)
				if got != V2(w/2, h/2) {
					t.Fatalf("w=%g h=%g d=%g: %v", w, h, distance, got)
				}
			}
		}
	}
}

func TestAdvanceAccumulatesLinearly(t *testing.T) {
	var s AnimationState
	for i := 0; i < 15; i++ {
		s = s.Advance(1.0/30, DefaultAngularSpeed)
	}
	if math.Abs(s.Angle-1.0) > 1e-12 {
		t.Fatalf("angle after 15 ticks = %.15f", s.Angle)
	}
	once := AnimationState{}.Advance(0.5, DefaultAngularSpeed)
	if math.Abs(once.Angle-s.Angle) > 1e-12 {
		t.Fatalf("one call %.15f, many calls %.15f", once.Angle, s.Angle)
	}
}

func TestAdvanceDoesNotWrap(t *testing.T) {
	s := AnimationState{Angle: 100 * math.Pi}.Advance(10, 2)
	if s.Angle != 100*math.Pi+20 {
		t.Fatalf("angle = %v", s.Angle)
	}
}
