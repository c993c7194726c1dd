//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Ticks stops the run after this many timer ticks; 0 runs until ctx ends.
	Ticks uint64
	// Fast delivers ticks back to back instead of at Config.Hz.
	Fast bool
}

// RunHeadless runs the game without opening a window. step is called after
// every tick.
func RunHeadless(ctx context.Context, cfg Config, hcfg HeadlessConfig, newApp func(HAL) func() error) error {
	h, err := newHost(cfg, os.Stderr)
	if err != nil {
		return err
	}
	return runHeadless(ctx, h, hcfg, newApp(h))
}

func runHeadless(ctx context.Context, h *hostHAL, hcfg HeadlessConfig, step func() error) error {
	d := time.Second / time.Duration(h.cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", h.cfg.Hz)
	}

	var tickC <-chan time.Time
	if !hcfg.Fast {
		t := time.NewTicker(d)
		defer t.Stop()
		tickC = t.C
	}

	var tick uint64
	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.stepN(1)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		tick++
		if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
			return nil
		}
	}
}
