//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image/color"
	"time"

	"spincube/cube3d"
	"spincube/raster"

	"github.com/ungerik/go-cairo"
	"github.com/veandco/go-sdl2/sdl"
)

// RunSDL opens a resizable SDL2 window and draws with cairo straight onto the
// window surface. dt is measured wall time; the loop sleeps off whatever is
// left of the 1/FPS budget.
func RunSDL(cfg Config, st Stepper) error {
	cfg = cfg.withDefaults()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: init: %w", err)
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("sdl: create window: %w", err)
	}
	defer win.Destroy()

	clk := newWallClock(nil)
	budget := frameBudget(cfg.FPS)

	for {
		start := time.Now()
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.State != sdl.PRESSED || ev.Repeat != 0 {
					continue
				}
				if st.Key(sdlKey(int32(ev.Keysym.Sym))) {
					return nil
				}
			}
		}

		st.Update(clk.tick())

		// The window surface is replaced on resize, so it is fetched per frame.
		sur, err := win.GetSurface()
		if err != nil {
			return fmt.Errorf("sdl: get surface: %w", err)
		}
		sink := newCairoSink(sur)
		st.Render(sink)
		sink.hud(st.Status())
		sink.close()
		if err := win.UpdateSurface(); err != nil {
			return fmt.Errorf("sdl: update surface: %w", err)
		}

		if d := remaining(start, time.Now(), budget); d > 0 {
			sdl.Delay(uint32(d / time.Millisecond))
		}
	}
}

// cairoSink draws on an SDL surface through a cairo image surface sharing its
// pixels.
type cairoSink struct {
	sur *sdl.Surface
	cs  *cairo.Surface
}

func newCairoSink(sur *sdl.Surface) *cairoSink {
	cs := cairo.NewSurfaceFromData(sur.Data(), cairo.FORMAT_ARGB32, int(sur.W), int(sur.H), int(sur.Pitch))
	return &cairoSink{sur: sur, cs: cs}
}

func (s *cairoSink) Size() (w, h int) { return int(s.sur.W), int(s.sur.H) }

func (s *cairoSink) source(c color.RGBA) {
	s.cs.SetSourceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

func (s *cairoSink) Clear(c color.RGBA) {
	s.source(c)
	s.cs.Paint()
}

func (s *cairoSink) Line(a, b cube3d.Vec2, c color.RGBA) {
	s.source(c)
	s.cs.SetLineWidth(1)
	s.cs.MoveTo(a.X, a.Y)
	s.cs.LineTo(b.X, b.Y)
	s.cs.Stroke()
}

func (s *cairoSink) Square(center cube3d.Vec2, size float64, c color.RGBA) {
	half := size * 0.5
	s.source(c)
	s.cs.Rectangle(center.X-half, center.Y-half, size, size)
	s.cs.Fill()
}

// hud renders overlay text with the software font onto the same pixels.
func (s *cairoSink) hud(lines []string) {
	s.cs.Flush()
	raster.DrawText(surfaceTarget{s.sur}, 2, 2, hudColor, lines...)
	s.cs.MarkDirty()
}

func (s *cairoSink) close() {
	s.cs.Flush()
	s.cs.Destroy()
}

// surfaceTarget adapts a 32-bit SDL surface to raster.Target.
type surfaceTarget struct {
	sur *sdl.Surface
}

func (t surfaceTarget) Size() (w, h int) { return int(t.sur.W), int(t.sur.H) }

func (t surfaceTarget) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= int(t.sur.W) || y >= int(t.sur.H) {
		return
	}
	putARGB32(t.sur.Pixels(), int(t.sur.Pitch), x, y, c)
}

func (t surfaceTarget) Clear(c color.RGBA) {
	t.sur.FillRect(nil, sdl.MapRGBA(t.sur.Format, c.R, c.G, c.B, c.A))
}
