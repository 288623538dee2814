package app

import (
	"fmt"
	"image/color"
	"sort"

	"spincube/cube3d"
)

var (
	// Background is the dark grey every preset clears to.
	Background = color.RGBA{R: 46, G: 46, B: 46, A: 255}
	// Foreground is the salmon the cube is drawn in.
	Foreground = color.RGBA{R: 255, G: 128, B: 128, A: 255}
)

// DefaultMarkerSize is the side in pixels of a vertex marker.
const DefaultMarkerSize = 10

// Preset is one complete demo configuration.
type Preset struct {
	Name          string
	Rotator       cube3d.Rotator
	Distance      float64
	Mode          cube3d.DrawMode
	AspectCorrect bool
	MarkerSize    float64
	AngularSpeed  float64
	FPS           int
	Palette       cube3d.Palette
}

// Pipeline returns the transform pipeline the preset describes.
func (p Preset) Pipeline() cube3d.Pipeline {
	return cube3d.Pipeline{
		Rotator:       p.Rotator,
		Distance:      p.Distance,
		AspectCorrect: p.AspectCorrect,
		MarkerSize:    p.MarkerSize,
	}
}

func base(name string) Preset {
	return Preset{
		Name:         name,
		MarkerSize:   DefaultMarkerSize,
		AngularSpeed: cube3d.DefaultAngularSpeed,
		FPS:          cube3d.DefaultFrameRate,
		Palette:      cube3d.Palette{Background: Background, Foreground: Foreground},
	}
}

// DefaultPreset is used when no preset is named.
const DefaultPreset = "points"

var presets = map[string]Preset{}

func register(p Preset) { presets[p.Name] = p }

func init() {
	// The classic single-axis demo keeps the z-reflected Euler form and has
	// no aspect correction.
	p := base("points")
	p.Rotator = cube3d.EulerParity
	p.Distance = 4
	p.Mode = cube3d.DrawPoints
	register(p)

	p = base("wireframe")
	p.Rotator = cube3d.Euler
	p.Distance = 3
	p.Mode = cube3d.DrawWireframe
	p.AspectCorrect = true
	register(p)

	p = base("quaternion")
	p.Rotator = cube3d.AxisRotator{Axis: cube3d.V3(1, 1, 0)}
	p.Distance = 3
	p.Mode = cube3d.DrawWireframe
	p.AspectCorrect = true
	register(p)

	p = base("quaternion-points")
	p.Rotator = cube3d.AxisRotator{Axis: cube3d.V3(0, 1, 1)}
	p.Distance = 3.5
	p.Mode = cube3d.DrawPoints
	p.AspectCorrect = true
	register(p)
}

// LookupPreset returns the named preset. An empty name selects DefaultPreset.
func LookupPreset(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (want one of %v)", name, PresetNames())
	}
	return p, nil
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
