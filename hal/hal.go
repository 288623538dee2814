// Package hal hosts the cube demo on a concrete windowing backend.
//
// Every backend runs the same single-threaded loop (input, update, render,
// present, pace) and talks to the application only through Stepper. Drawing
// goes through cube3d.Sink, so the transform pipeline never sees the backend.
package hal

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"spincube/cube3d"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrBackendUnavailable = errors.New("backend unavailable in this build")

// hudColor is the overlay text color.
var hudColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeySpace
	KeyTab
)

func (k KeyCode) String() string {
	switch k {
	case KeyEscape:
		return "esc"
	case KeySpace:
		return "space"
	case KeyTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Stepper is the application side of the frame loop.
type Stepper interface {
	// Key handles a key press and reports whether the loop should stop.
	Key(k KeyCode) (quit bool)
	// Update advances the animation by dt seconds.
	Update(dt float64)
	// Render draws the current frame. The sink's size is the live viewport.
	Render(s cube3d.Sink)
	// Status returns overlay lines for the HUD.
	Status() []string
}

// Backend names a host implementation.
type Backend string

const (
	BackendEbiten   Backend = "ebiten"
	BackendRaylib   Backend = "raylib"
	BackendSDL      Backend = "sdl"
	BackendHeadless Backend = "headless"
	BackendPicoCalc Backend = "picocalc"
)

// Backends lists every backend name accepted by Run.
var Backends = []Backend{BackendEbiten, BackendRaylib, BackendSDL, BackendHeadless, BackendPicoCalc}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == strings.ToLower(s) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q (want one of %v)", s, Backends)
}

// Config is shared by all backends.
type Config struct {
	Title  string
	Width  int
	Height int
	// FPS is the target frame rate (window) or tick rate (headless).
	FPS int

	// Ticks stops the headless runner after N ticks (0 = run until ctx ends).
	Ticks uint64
	// Snapshot, if set, is where the headless runner saves its last frame as PNG.
	Snapshot string

	Log Logger
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "spincube"
	}
	if c.Width <= 0 {
		c.Width = 200
	}
	if c.Height <= 0 {
		c.Height = 200
	}
	if c.FPS <= 0 {
		c.FPS = cube3d.DefaultFrameRate
	}
	if c.Log == nil {
		c.Log = nopLogger{}
	}
	return c
}

// Run drives st on the named backend until the window closes, a key handler
// asks to quit, or ctx is cancelled (headless only).
func Run(ctx context.Context, b Backend, cfg Config, st Stepper) error {
	cfg = cfg.withDefaults()
	cfg.Log.WriteLineString(fmt.Sprintf("hal: backend=%s size=%dx%d fps=%d", b, cfg.Width, cfg.Height, cfg.FPS))
	switch b {
	case BackendEbiten:
		return RunEbiten(cfg, st)
	case BackendRaylib:
		return RunRaylib(cfg, st)
	case BackendSDL:
		return RunSDL(cfg, st)
	case BackendHeadless:
		return RunHeadless(ctx, cfg, st)
	case BackendPicoCalc:
		return RunPicoCalc(cfg, st)
	}
	return fmt.Errorf("unknown backend %q", b)
}
