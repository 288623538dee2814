//go:build tinygo

package hal

import (
	"context"
	"fmt"
)

func RunHeadless(context.Context, Config, Stepper) error {
	return fmt.Errorf("headless: %w (host builds only)", ErrBackendUnavailable)
}
