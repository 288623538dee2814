// Package profile loads optional YAML overrides for a demo preset.
//
// A profile file looks like:
//
//	preset: quaternion
//	distance: 3.5
//	mode: points
//	axis: [0, 0, 1]
//	background: "#202020"
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"spincube/app"
	"spincube/cube3d"

	"gopkg.in/yaml.v3"
)

var (
	ErrCameraTooClose = errors.New("camera distance must exceed the cube radius")
	ErrZeroAxis       = errors.New("rotation axis must be non-zero")
)

// Profile holds optional overrides. Nil or empty fields keep the preset value.
type Profile struct {
	Preset        string      `yaml:"preset,omitempty"`
	Distance      *float64    `yaml:"distance,omitempty"`
	Mode          string      `yaml:"mode,omitempty"`
	AspectCorrect *bool       `yaml:"aspect_correct,omitempty"`
	MarkerSize    *float64    `yaml:"marker_size,omitempty"`
	AngularSpeed  *float64    `yaml:"angular_speed,omitempty"`
	FPS           *int        `yaml:"fps,omitempty"`
	Axis          *[3]float64 `yaml:"axis,omitempty"`
	Background    string      `yaml:"background,omitempty"`
	Foreground    string      `yaml:"foreground,omitempty"`
}

// Parse decodes a profile. Unknown keys are an error.
func Parse(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		// An empty document is a valid, empty profile.
		if errors.Is(err, io.EOF) {
			return Profile{}, nil
		}
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// Load reads and parses the profile at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadOptional is Load, except that a missing file yields an empty profile.
func LoadOptional(path string) (Profile, bool, error) {
	p, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}

// Resolve looks up the preset (name wins over the profile's own preset
// field), applies the overrides and validates the result.
func (p Profile) Resolve(name string) (app.Preset, error) {
	if name == "" {
		name = p.Preset
	}
	pr, err := app.LookupPreset(name)
	if err != nil {
		return app.Preset{}, err
	}
	pr, err = p.Apply(pr)
	if err != nil {
		return app.Preset{}, err
	}
	if err := Validate(pr); err != nil {
		return app.Preset{}, fmt.Errorf("preset %s: %w", pr.Name, err)
	}
	return pr, nil
}

// Apply overlays the profile on pr.
func (p Profile) Apply(pr app.Preset) (app.Preset, error) {
	if p.Distance != nil {
		pr.Distance = *p.Distance
	}
	if p.Mode != "" {
		m, err := cube3d.ParseDrawMode(p.Mode)
		if err != nil {
			return pr, err
		}
		pr.Mode = m
	}
	if p.AspectCorrect != nil {
		pr.AspectCorrect = *p.AspectCorrect
	}
	if p.MarkerSize != nil {
		pr.MarkerSize = *p.MarkerSize
	}
	if p.AngularSpeed != nil {
		pr.AngularSpeed = *p.AngularSpeed
	}
	if p.FPS != nil {
		pr.FPS = *p.FPS
	}
	if p.Axis != nil {
		axis := cube3d.V3(p.Axis[0], p.Axis[1], p.Axis[2])
		if axis.Len() == 0 {
			return pr, ErrZeroAxis
		}
		pr.Rotator = cube3d.AxisRotator{Axis: axis}
	}
	if p.Background != "" {
		c, err := ParseHexColor(p.Background)
		if err != nil {
			return pr, fmt.Errorf("background: %w", err)
		}
		pr.Palette.Background = c
	}
	if p.Foreground != "" {
		c, err := ParseHexColor(p.Foreground)
		if err != nil {
			return pr, fmt.Errorf("foreground: %w", err)
		}
		pr.Palette.Foreground = c
	}
	return pr, nil
}

// Validate checks the preconditions the transform pipeline relies on.
func Validate(pr app.Preset) error {
	if pr.Rotator == nil {
		return errors.New("no rotator")
	}
	if ar, ok := pr.Rotator.(cube3d.AxisRotator); ok && ar.Axis.Len() == 0 {
		return ErrZeroAxis
	}
	if !(pr.Distance > cube3d.CubeRadius) {
		return fmt.Errorf("%w (distance %g, radius %.3f)", ErrCameraTooClose, pr.Distance, cube3d.CubeRadius)
	}
	if pr.MarkerSize <= 0 {
		return fmt.Errorf("invalid marker size %g", pr.MarkerSize)
	}
	if pr.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", pr.FPS)
	}
	return nil
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Alpha defaults to 255.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 3:
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, nil
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
}
