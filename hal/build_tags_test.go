package hal

import (
	"go/build"
	"slices"
	"testing"
)

func importHAL(t *testing.T, cgo bool, tags ...string) *build.Package {
	t.Helper()
	ctx := build.Default
	ctx.GOOS = "linux"
	ctx.CgoEnabled = cgo
	ctx.BuildTags = tags
	pkg, err := ctx.ImportDir(".", 0)
	if err != nil {
		t.Fatalf("ImportDir(tags=%v cgo=%v): %v", tags, cgo, err)
	}
	return pkg
}

func TestWindowBackendsNeverShareABinary(t *testing.T) {
	cases := []struct {
		tags   []string
		cgo    bool
		ebiten bool
		raylib bool
		sdl    bool
	}{
		{nil, true, true, false, true},
		{[]string{"raylib"}, true, false, true, true},
		{nil, false, false, false, false},
		{[]string{"raylib"}, false, false, false, false},
	}
	for _, tc := range cases {
		pkg := importHAL(t, tc.cgo, tc.tags...)
		has := func(f string) bool { return slices.Contains(pkg.GoFiles, f) }

		// Both window libraries link their own GLFW.
		if has("host_window.go") && has("host_raylib.go") {
			t.Fatalf("tags=%v cgo=%v: ebiten and raylib in one build", tc.tags, tc.cgo)
		}
		if has("host_window.go") != tc.ebiten || has("host_raylib.go") != tc.raylib || has("host_sdl.go") != tc.sdl {
			t.Fatalf("tags=%v cgo=%v: files %v", tc.tags, tc.cgo, pkg.GoFiles)
		}
		// Exactly one of implementation and stub per backend.
		if has("host_window.go") == has("host_window_stub.go") ||
			has("host_raylib.go") == has("host_raylib_stub.go") ||
			has("host_sdl.go") == has("host_sdl_stub.go") {
			t.Fatalf("tags=%v cgo=%v: implementation/stub mismatch in %v", tc.tags, tc.cgo, pkg.GoFiles)
		}
	}
}

func TestFirmwareBuildExcludesHostRunners(t *testing.T) {
	pkg := importHAL(t, false, "tinygo", "baremetal", "picocalc")
	for _, f := range []string{"host_headless.go", "host_framebuffer.go", "host_window.go", "host_raylib.go", "host_sdl.go", "picocalc_stub.go"} {
		if slices.Contains(pkg.GoFiles, f) {
			t.Fatalf("firmware build includes %s", f)
		}
	}
	for _, f := range []string{"picocalc.go", "host_headless_stub.go", "host_time.go", "host_logger.go"} {
		if !slices.Contains(pkg.GoFiles, f) {
			t.Fatalf("firmware build missing %s: %v", f, pkg.GoFiles)
		}
	}
	for _, imp := range pkg.Imports {
		if imp == "github.com/anthonynsimon/bild/imgio" || imp == "os" {
			t.Fatalf("firmware build imports %s", imp)
		}
	}
}
