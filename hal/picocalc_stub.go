//go:build !(tinygo && baremetal && picocalc)

package hal

import "fmt"

func RunPicoCalc(Config, Stepper) error {
	return fmt.Errorf("picocalc: %w (build with tinygo -tags picocalc)", ErrBackendUnavailable)
}
