//go:build !tinygo && cgo && !raylib

package hal

import (
	"image/color"
	"strings"

	"spincube/cube3d"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunEbiten opens a resizable ebiten window. Ebiten calls Update at a fixed
// TPS, so dt is constant at 1/FPS. It blocks until the window closes.
func RunEbiten(cfg Config, st Stepper) error {
	cfg = cfg.withDefaults()
	g := &hostGame{st: st, clk: newFixedClock(cfg.FPS)}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

var ebitenKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyTab, KeyTab},
}

type hostGame struct {
	st  Stepper
	clk fixedClock
}

func (g *hostGame) Update() error {
	for _, k := range ebitenKeys {
		if inpututil.IsKeyJustPressed(k.key) && g.st.Key(k.code) {
			return ebiten.Termination
		}
	}
	g.st.Update(g.clk.tick())
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.st.Render(ebitenSink{dst: screen})
	ebitenutil.DebugPrintAt(screen, strings.Join(g.st.Status(), "\n"), 4, 4)
}

// Layout follows the window so the viewport tracks resizes.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

type ebitenSink struct {
	dst *ebiten.Image
}

func (s ebitenSink) Size() (w, h int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s ebitenSink) Clear(c color.RGBA) { s.dst.Fill(c) }

func (s ebitenSink) Line(a, b cube3d.Vec2, c color.RGBA) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, true)
}

func (s ebitenSink) Square(center cube3d.Vec2, size float64, c color.RGBA) {
	half := size * 0.5
	vector.DrawFilledRect(s.dst, float32(center.X-half), float32(center.Y-half), float32(size), float32(size), c, false)
}
