//go:build !tinygo && cgo && raylib

package hal

import (
	"fmt"
	"image/color"

	"spincube/cube3d"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const raylibFontSize = 10

var raylibKeys = []struct {
	key  int32
	code KeyCode
}{
	{rl.KeyEscape, KeyEscape},
	{rl.KeySpace, KeySpace},
	{rl.KeyTab, KeyTab},
}

// RunRaylib opens a resizable raylib window. dt is raylib's measured frame
// time, so the animation speed is independent of the achieved frame rate.
func RunRaylib(cfg Config, st Stepper) error {
	cfg = cfg.withDefaults()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("raylib: failed to create window")
	}
	defer rl.CloseWindow()

	// ESC is routed to the Stepper instead of closing the window directly.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.FPS))

	for !rl.WindowShouldClose() {
		for _, k := range raylibKeys {
			if rl.IsKeyPressed(k.key) && st.Key(k.code) {
				return nil
			}
		}
		st.Update(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		st.Render(raylibSink{})
		for i, line := range st.Status() {
			rl.DrawText(line, 4, int32(4+i*(raylibFontSize+2)), raylibFontSize, hudColor)
		}
		rl.EndDrawing()
	}
	return nil
}

type raylibSink struct{}

func (raylibSink) Size() (w, h int) { return rl.GetScreenWidth(), rl.GetScreenHeight() }

func (raylibSink) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (raylibSink) Line(a, b cube3d.Vec2, c color.RGBA) {
	rl.DrawLineV(rl.NewVector2(float32(a.X), float32(a.Y)), rl.NewVector2(float32(b.X), float32(b.Y)), c)
}

func (raylibSink) Square(center cube3d.Vec2, size float64, c color.RGBA) {
	half := size * 0.5
	rl.DrawRectangleV(
		rl.NewVector2(float32(center.X-half), float32(center.Y-half)),
		rl.NewVector2(float32(size), float32(size)),
		c,
	)
}
