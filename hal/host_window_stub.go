//go:build tinygo || !cgo || raylib

package hal

import "fmt"

// ebiten and raylib each link their own GLFW, so a binary carries one or the
// other. The raylib tag selects raylib.
func RunEbiten(Config, Stepper) error {
	return fmt.Errorf("ebiten: %w (build with CGO_ENABLED=1 and without -tags raylib)", ErrBackendUnavailable)
}
