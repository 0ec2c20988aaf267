package hal

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal runs the widget in the terminal. Each cell shows two
// framebuffer rows as a half block, so the framebuffer is cols x rows*2.
// Mouse drag and wheel events are forwarded; q, Esc and Ctrl-C quit.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	cfg = cfg.withDefaults()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	h := newHost(cols, rows*2, cfg.LogOut)
	h.ptr.setWheelScale(cfg.WheelScale)
	step := newApp(h)

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	in := &terminalInput{h: h}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if in.handle(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			halfBlocks(h.disp.fb, func(x, y int, top, bottom color.RGBA) {
				style := tcell.StyleDefault.
					Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
					Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
				screen.SetContent(x, y, '▀', nil, style)
			})
			screen.Show()
		}
	}
}

// terminalInput translates tcell events into HAL events.
type terminalInput struct {
	h      *hostHAL
	button bool
}

// handle processes one event and reports whether the user asked to quit.
func (in *terminalInput) handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, hgt := e.Size()
		in.h.disp.resize(w, hgt*2)

	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyHome:
			in.h.kbd.emit(KeyEvent{Code: KeyHome, Press: true})
		case tcell.KeyRune:
			if e.Rune() == 'q' {
				return true
			}
			in.h.kbd.emit(KeyEvent{Press: true, Rune: e.Rune()})
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		in.mouse(x, y, e.Buttons())
	}
	return false
}

func (in *terminalInput) mouse(x, y int, buttons tcell.ButtonMask) {
	p := in.h.ptr
	fb := in.h.disp.fb

	switch {
	case buttons&tcell.WheelUp != 0:
		p.wheel(0, 1)
		return
	case buttons&tcell.WheelDown != 0:
		p.wheel(0, -1)
		return
	case buttons&tcell.WheelLeft != 0:
		p.wheel(1, 0)
		return
	case buttons&tcell.WheelRight != 0:
		p.wheel(-1, 0)
		return
	}

	down := buttons&tcell.Button1 != 0
	pressed := down && !in.button
	released := !down && in.button
	in.button = down
	p.mouse(x, y*2, fb.width, fb.height, pressed, released)
}

// halfBlocks walks the framebuffer two rows at a time and reports the
// colors of the upper and lower pixel for every terminal cell.
func halfBlocks(fb *hostFramebuffer, set func(x, y int, top, bottom color.RGBA)) {
	for cy := 0; cy*2 < fb.height; cy++ {
		for cx := 0; cx < fb.width; cx++ {
			tr, tg, tb := fb.pixelRGB(cx, cy*2)
			br, bg, bb := fb.pixelRGB(cx, cy*2+1)
			set(cx, cy,
				color.RGBA{R: tr, G: tg, B: tb, A: 0xff},
				color.RGBA{R: br, G: bg, B: bb, A: 0xff},
			)
		}
	}
}
