package hal

import (
	"context"
	"fmt"
	"io"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int
	// LogOut receives log lines; nil means stdout.
	LogOut io.Writer
}

// RunHeadless runs the widget against an in-memory framebuffer without
// input. It stops after cfg.Ticks frames (0 = until ctx is done).
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	logOut := cfg.LogOut
	if logOut == nil {
		logOut = WindowConfig{}.logOut()
	}

	h := newHost(cfg.Width, cfg.Height, logOut)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
