// Package app wires the grid model, the input controller and the HAL into a
// per-frame step function the hosts can drive.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"pangrid/grid"
	"pangrid/hal"
	"pangrid/hud"
	"pangrid/input"
	"pangrid/internal/buildinfo"
	"pangrid/loop"
	"pangrid/surface"

	"github.com/gogpu/gg"
)

// Config tunes the widget. The zero value is usable.
type Config struct {
	// Delay is the coalescing window for drags and scrolls (0 = next frame).
	Delay time.Duration
	// SettleDelay is the pause after which a scroll is re-committed.
	SettleDelay time.Duration
	HUD         bool
	Style       surface.Style
	LogLevel    slog.Level
	// SnapshotLineWidth is the stroke width used by Snapshot.
	SnapshotLineWidth float64
}

// App is one running widget.
type App struct {
	h   hal.HAL
	cfg Config
	log *slog.Logger

	sched *loop.Scheduler
	surf  *surface.Framebuffer
	model *grid.Model
	disp  *input.Dispatcher
	ctrl  *input.Controller
}

// New builds the widget on h and renders the first frame.
func New(h hal.HAL, cfg Config) *App {
	if cfg.Style == (surface.Style{}) {
		cfg.Style = surface.DefaultStyle
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = input.DefaultSettle
	}

	log := newLogger(h, cfg.LogLevel)
	grid.SetLogger(log)
	gg.SetLogger(log)

	a := &App{
		h:     h,
		cfg:   cfg,
		log:   log,
		sched: loop.NewScheduler(),
		disp:  input.NewDispatcher(),
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	a.surf = surface.NewFramebuffer(fb, cfg.Style)

	var opts []grid.Option
	if cfg.HUD {
		opts = append(opts, grid.WithOverlay(hud.New(a.surf)))
	}
	a.model = grid.New(a.surf, opts...)

	a.ctrl = input.NewController(a.model, a.sched,
		input.WithDelay(cfg.Delay),
		input.WithSettle(cfg.SettleDelay),
		input.WithLogger(log),
	)
	a.ctrl.Bind(a.disp)

	log.Info("app: start", "build", buildinfo.String(), "hud", cfg.HUD,
		"delay", cfg.Delay, "settle", cfg.SettleDelay)
	a.Resize()
	return a
}

func newLogger(h hal.HAL, level slog.Level) *slog.Logger {
	l := h.Logger()
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(hal.LogWriter(l), &slog.HandlerOptions{Level: level}))
}

// Model exposes the grid model, mostly for tests and snapshots.
func (a *App) Model() *grid.Model { return a.model }

// Dispatcher is where pointer events enter the widget.
func (a *App) Dispatcher() *input.Dispatcher { return a.disp }

// Step runs one host frame: it drains pending HAL events, advances the
// scheduler to the newest tick and paints one animation frame.
func (a *App) Step() error {
	if d := a.h.Display(); d != nil {
		a.drainResize(d.Resized())
	}
	if in := a.h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.drainKeys(kbd.Events())
		}
		if ptr := in.Pointer(); ptr != nil {
			a.drainPointer(ptr.Events())
		}
	}
	if t := a.h.Time(); t != nil {
		a.drainTicks(t.Ticks())
	}
	a.sched.RunFrame()
	return nil
}

func (a *App) drainResize(ch <-chan struct{}) {
	if ch == nil {
		return
	}
	for {
		select {
		case <-ch:
			a.Resize()
		default:
			return
		}
	}
}

func (a *App) drainKeys(ch <-chan hal.KeyEvent) {
	if ch == nil {
		return
	}
	for {
		select {
		case ev := <-ch:
			if ev.Press && ev.Code == hal.KeyHome {
				a.Reset()
			}
		default:
			return
		}
	}
}

func (a *App) drainPointer(ch <-chan hal.PointerEvent) {
	if ch == nil {
		return
	}
	for {
		select {
		case pe := <-ch:
			ev, ok := input.FromHAL(pe)
			if !ok {
				continue
			}
			a.disp.Dispatch(&ev)
		default:
			return
		}
	}
}

func (a *App) drainTicks(ch <-chan uint64) {
	if ch == nil {
		return
	}
	var (
		seq uint64
		got bool
	)
	for {
		select {
		case seq = <-ch:
			got = true
		default:
			if got {
				a.sched.Advance(time.Duration(seq) * time.Millisecond)
			}
			return
		}
	}
}

// Resize re-reads the framebuffer size and starts over at the initial
// viewport.
func (a *App) Resize() {
	a.model.Resize()
	s := a.model.Size()
	g := a.model.Grid()
	a.log.Debug("app: resize", "width", s.Width, "height", s.Height,
		"cols", g.Cols, "rows", g.Rows)
}

// Reset returns to the initial viewport at the current size.
func (a *App) Reset() {
	a.log.Info("app: reset")
	a.model.Initialize(a.model.Size())
}

// Snapshot renders the current viewport at the current size into a PNG.
func (a *App) Snapshot(path string) error {
	s := a.model.Size()
	if s.Empty() {
		return fmt.Errorf("snapshot: empty surface %vx%v", s.Width, s.Height)
	}

	c := surface.NewCanvas(int(s.Width), int(s.Height), a.cfg.Style, a.cfg.SnapshotLineWidth)
	defer c.Close()

	m := grid.New(c)
	m.Initialize(s)
	m.SetViewport(a.model.Viewport())
	if err := c.Flush(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	a.log.Info("app: snapshot", "path", path)
	return nil
}
