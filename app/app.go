// Package app is the cube demo itself: a preset, the animation state and the
// key bindings, exposed to the host loop as a hal.Stepper.
package app

import (
	"fmt"
	"io"

	"spincube/cube3d"
	"spincube/hal"
)

// App implements hal.Stepper.
type App struct {
	preset Preset
	pipe   cube3d.Pipeline
	state  cube3d.AnimationState
	mode   cube3d.DrawMode
	paused bool

	log   hal.Logger
	stats *Stats
}

// Config wires an App to its surroundings.
type Config struct {
	Log hal.Logger
	// Stats enables the once-per-second frame statistics line.
	Stats bool
}

// New returns an App running p.
func New(p Preset, cfg Config) *App {
	a := &App{
		preset: p,
		pipe:   p.Pipeline(),
		mode:   p.Mode,
		log:    cfg.Log,
	}
	if a.log == nil {
		a.log = hal.NewLogger(io.Discard)
	}
	if cfg.Stats {
		a.stats = NewStats(a.log)
	}
	return a
}

func (a *App) Preset() Preset            { return a.preset }
func (a *App) Angle() float64            { return a.state.Angle }
func (a *App) Mode() cube3d.DrawMode     { return a.mode }
func (a *App) Paused() bool              { return a.paused }
func (a *App) Pipeline() cube3d.Pipeline { return a.pipe }

func (a *App) Key(k hal.KeyCode) bool {
	switch k {
	case hal.KeyEscape:
		a.log.WriteLineString("app: quit")
		return true
	case hal.KeySpace:
		a.paused = !a.paused
		a.log.WriteLineString(fmt.Sprintf("app: paused=%t", a.paused))
	case hal.KeyTab:
		if a.mode == cube3d.DrawWireframe {
			a.mode = cube3d.DrawPoints
		} else {
			a.mode = cube3d.DrawWireframe
		}
		a.log.WriteLineString("app: mode=" + a.mode.String())
	}
	return false
}

func (a *App) Update(dt float64) {
	if a.paused {
		return
	}
	a.state = a.state.Advance(dt, a.preset.AngularSpeed)
}

func (a *App) Render(s cube3d.Sink) {
	a.pipe.Emit(s, a.state.Angle, a.mode, a.preset.Palette)
	if a.stats != nil {
		a.stats.Tick()
	}
}

func (a *App) Status() []string {
	lines := []string{
		a.preset.Name + " " + a.mode.String(),
		fmt.Sprintf("angle %.2f", a.state.Angle),
	}
	if a.paused {
		lines = append(lines, "paused")
	}
	return lines
}
