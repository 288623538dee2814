//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// RunHeadless renders into an in-memory framebuffer on a ticker, without a
// window. Each tick advances by a fixed 1/FPS seconds regardless of scheduling
// jitter, so runs are reproducible.
func RunHeadless(ctx context.Context, cfg Config, st Stepper) error {
	cfg = cfg.withDefaults()

	fb := newHostFramebuffer(cfg.Width, cfg.Height)
	clk := newFixedClock(cfg.FPS)

	d := frameBudget(cfg.FPS)
	if d <= 0 {
		return fmt.Errorf("invalid headless fps: %d", cfg.FPS)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return finishHeadless(cfg, fb, tick, ctx.Err())
		case <-t.C:
			st.Update(clk.tick())
			fb.render(st, hudColor)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finishHeadless(cfg, fb, tick, nil)
			}
		}
	}
}

func finishHeadless(cfg Config, fb *hostFramebuffer, ticks uint64, cause error) error {
	cfg.Log.WriteLineString(fmt.Sprintf("headless: stopped after %d ticks", ticks))
	if cfg.Snapshot != "" && ticks > 0 {
		if err := imgio.Save(cfg.Snapshot, fb.snapshot(), imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("save snapshot %s: %w", cfg.Snapshot, err)
		}
		cfg.Log.WriteLineString("headless: wrote " + cfg.Snapshot)
	}
	return cause
}
