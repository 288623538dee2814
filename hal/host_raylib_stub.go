//go:build tinygo || !cgo || !raylib

package hal

import "fmt"

func RunRaylib(Config, Stepper) error {
	return fmt.Errorf("raylib: %w (build with CGO_ENABLED=1 -tags raylib)", ErrBackendUnavailable)
}
