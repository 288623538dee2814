package profile

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"spincube/app"
	"spincube/cube3d"

	. "github.com/smartystreets/goconvey/convey"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spincube.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	Convey("Parsing profiles", t, func() {
		Convey("all fields decode", func() {
			p, err := Parse([]byte(`
preset: quaternion
distance: 5
mode: points
aspect_correct: false
marker_size: 6
angular_speed: 1.5
fps: 60
axis: [0, 0, 1]
background: "#000"
foreground: "#00ff0080"
`))
			So(err, ShouldBeNil)
			So(p.Preset, ShouldEqual, "quaternion")
			So(*p.Distance, ShouldEqual, 5)
			So(p.Mode, ShouldEqual, "points")
			So(*p.AspectCorrect, ShouldBeFalse)
			So(*p.MarkerSize, ShouldEqual, 6)
			So(*p.AngularSpeed, ShouldEqual, 1.5)
			So(*p.FPS, ShouldEqual, 60)
			So(*p.Axis, ShouldResemble, [3]float64{0, 0, 1})
			So(p.Background, ShouldEqual, "#000")
			So(p.Foreground, ShouldEqual, "#00ff0080")
		})

		Convey("an empty document is an empty profile", func() {
			p, err := Parse(nil)
			So(err, ShouldBeNil)
			So(p, ShouldResemble, Profile{})
		})

		Convey("unknown keys are rejected", func() {
			_, err := Parse([]byte("distanse: 4\n"))
			So(err, ShouldNotBeNil)
		})

		Convey("malformed YAML is rejected", func() {
			_, err := Parse([]byte("distance: [1, 2\n"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Loading profile files", t, func() {
		Convey("an existing file is read", func() {
			path := writeProfile(t, "preset: wireframe\n")
			p, err := Load(path)
			So(err, ShouldBeNil)
			So(p.Preset, ShouldEqual, "wireframe")

			p, found, err := LoadOptional(path)
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
			So(p.Preset, ShouldEqual, "wireframe")
		})

		Convey("a missing file is an error only when required", func() {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			_, err := Load(path)
			So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)

			p, found, err := LoadOptional(path)
			So(err, ShouldBeNil)
			So(found, ShouldBeFalse)
			So(p, ShouldResemble, Profile{})
		})

		Convey("parse errors name the file", func() {
			path := writeProfile(t, "fps: lots\n")
			_, err := Load(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, path)

			_, _, err = LoadOptional(path)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolving a preset", t, func() {
		Convey("an empty profile yields the preset unchanged", func() {
			pr, err := Profile{}.Resolve("wireframe")
			So(err, ShouldBeNil)
			want, _ := app.LookupPreset("wireframe")
			So(pr.Distance, ShouldEqual, want.Distance)
			So(pr.Mode, ShouldEqual, want.Mode)
			So(pr.Palette, ShouldResemble, want.Palette)
		})

		Convey("the profile preset is used when no name is given", func() {
			pr, err := Profile{Preset: "quaternion"}.Resolve("")
			So(err, ShouldBeNil)
			So(pr.Name, ShouldEqual, "quaternion")

			pr, err = Profile{Preset: "quaternion"}.Resolve("wireframe")
			So(err, ShouldBeNil)
			So(pr.Name, ShouldEqual, "wireframe")
		})

		Convey("overrides are applied", func() {
			d, fps, ac := 6.0, 60, false
			p := Profile{
				Distance:      &d,
				FPS:           &fps,
				AspectCorrect: &ac,
				Mode:          "lines",
				Axis:          &[3]float64{1, 0, 0},
				Background:    "#102030",
			}
			pr, err := p.Resolve("points")
			So(err, ShouldBeNil)
			So(pr.Distance, ShouldEqual, 6)
			So(pr.FPS, ShouldEqual, 60)
			So(pr.AspectCorrect, ShouldBeFalse)
			So(pr.Mode, ShouldEqual, cube3d.DrawWireframe)
			So(pr.Rotator, ShouldResemble, cube3d.AxisRotator{Axis: cube3d.V3(1, 0, 0)})
			So(pr.Palette.Background, ShouldResemble, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
			So(pr.Palette.Foreground, ShouldResemble, app.Foreground)
		})

		Convey("a camera inside the cube's bounding sphere is rejected", func() {
			d := 1.5
			_, err := Profile{Distance: &d}.Resolve("points")
			So(errors.Is(err, ErrCameraTooClose), ShouldBeTrue)

			d = cube3d.CubeRadius
			_, err = Profile{Distance: &d}.Resolve("points")
			So(errors.Is(err, ErrCameraTooClose), ShouldBeTrue)
		})

		Convey("a zero axis is rejected", func() {
			_, err := Profile{Axis: &[3]float64{}}.Resolve("quaternion")
			So(errors.Is(err, ErrZeroAxis), ShouldBeTrue)

			pr, _ := app.LookupPreset("quaternion")
			pr.Rotator = cube3d.AxisRotator{}
			So(errors.Is(Validate(pr), ErrZeroAxis), ShouldBeTrue)
		})

		Convey("bad values are rejected", func() {
			_, err := Profile{Mode: "solid"}.Resolve("points")
			So(err, ShouldNotBeNil)

			_, err = Profile{Foreground: "red"}.Resolve("points")
			So(err, ShouldNotBeNil)

			zero := 0.0
			_, err = Profile{MarkerSize: &zero}.Resolve("points")
			So(err, ShouldNotBeNil)

			fps := 0
			_, err = Profile{FPS: &fps}.Resolve("points")
			So(err, ShouldNotBeNil)

			_, err = Profile{}.Resolve("teapot")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseHexColor(t *testing.T) {
	Convey("Hex colors", t, func() {
		c, err := ParseHexColor("#fff")
		So(err, ShouldBeNil)
		So(c, ShouldResemble, color.RGBA{R: 255, G: 255, B: 255, A: 255})

		c, err = ParseHexColor(" #2E2E2E ")
		So(err, ShouldBeNil)
		So(c, ShouldResemble, app.Background)

		c, err = ParseHexColor("#FF808040")
		So(err, ShouldBeNil)
		So(c, ShouldResemble, color.RGBA{R: 255, G: 128, B: 128, A: 0x40})

		for _, bad := range []string{"", "#", "fff", "#ff", "#ggg", "#12345", "#-12"} {
			_, err := ParseHexColor(bad)
			So(err, ShouldNotBeNil)
		}
	})
}
