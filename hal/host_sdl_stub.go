//go:build tinygo || !cgo

package hal

import "fmt"

func RunSDL(Config, Stepper) error {
	return fmt.Errorf("sdl: %w (build with CGO_ENABLED=1)", ErrBackendUnavailable)
}
