package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"pangrid/app"
	"pangrid/hal"
	"pangrid/surface"
)

func main() {
	var (
		headless hal.HeadlessConfig
		term     bool
		width    int
		height   int
		wheel    float64
		cfg      app.Config
		line     string
		bg       string
		level    string
		snapshot string
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Run in the terminal.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&width, "width", 800, "Surface width in pixels.")
	flag.IntVar(&height, "height", 600, "Surface height in pixels.")
	flag.DurationVar(&cfg.Delay, "delay", 0, "Coalescing window for drag and scroll events.")
	flag.DurationVar(&cfg.SettleDelay, "settle", 100*time.Millisecond, "Pause after which a scroll is re-committed.")
	flag.Float64Var(&wheel, "wheel", 0, "Pixels per wheel step (0 = host default).")
	flag.BoolVar(&cfg.HUD, "hud", false, "Show the pan offset and grid shape.")
	flag.StringVar(&line, "line", surface.Hex(surface.DefaultStyle.Line), "Grid line color (#rrggbb).")
	flag.StringVar(&bg, "bg", surface.Hex(surface.DefaultStyle.Background), "Background color (#rrggbb).")
	flag.StringVar(&level, "log-level", "info", "debug|info|warn|error.")
	flag.StringVar(&snapshot, "snapshot", "", "Write a PNG of the last frame after a headless run.")
	flag.Parse()

	var err error
	if cfg.Style, err = parseStyle(line, bg); err != nil {
		exit(err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		exit(fmt.Errorf("-log-level: %w", err))
	}

	var a *app.App
	newApp := func(h hal.HAL) func() error {
		a = app.New(h, cfg)
		return a.Step
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case headless.Enabled:
		headless.Width, headless.Height = width, height
		err = hal.RunHeadless(ctx, newApp, headless)
		if err == nil && snapshot != "" && a != nil {
			err = a.Snapshot(snapshot)
		}
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: headless.Hz, WheelScale: wheel})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Width: width, Height: height, WheelScale: wheel})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		exit(err)
	}
}

func parseStyle(line, bg string) (surface.Style, error) {
	style := surface.DefaultStyle
	var err error
	if style.Line, err = surface.ParseColor(line); err != nil {
		return style, fmt.Errorf("-line: %w", err)
	}
	if style.Background, err = surface.ParseColor(bg); err != nil {
		return style, fmt.Errorf("-bg: %w", err)
	}
	return style, nil
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
