package hal

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func drainPointer(p *hostPointer) []PointerEvent {
	var out []PointerEvent
	for {
		select {
		case ev := <-p.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func kinds(evs []PointerEvent) []PointerKind {
	out := make([]PointerKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func sameKinds(a, b []PointerKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride/len = %d/%d, want 8/24", fb.StrideBytes(), len(fb.Buffer()))
	}
	if fb.resize(4, 3) {
		t.Fatalf("resize() to the same size reported a change")
	}
	if !fb.resize(10, 2) {
		t.Fatalf("resize() to a new size reported no change")
	}
	if fb.Width() != 10 || fb.Height() != 2 || len(fb.Buffer()) != 40 {
		t.Fatalf("after resize: %dx%d len %d, want 10x2 len 40", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
	fb.resize(-1, 5)
	if fb.Width() != 0 || len(fb.Buffer()) != 0 {
		t.Fatalf("negative width: %dx%d len %d, want 0 wide", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
}

func TestFramebufferClearAndPixel(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	fb.ClearRGB(0xff, 0, 0)
	r, g, b := fb.pixelRGB(2, 1)
	if r != 0xff || g != 0 || b != 0 {
		t.Fatalf("pixelRGB() = %d,%d,%d, want 255,0,0", r, g, b)
	}
	if r, g, b := fb.pixelRGB(3, 0); r|g|b != 0 {
		t.Fatalf("pixelRGB() outside = %d,%d,%d, want 0,0,0", r, g, b)
	}

	snap := fb.snapshotRGB565(nil)
	if !bytes.Equal(snap, fb.Buffer()) {
		t.Fatalf("snapshotRGB565() differs from the buffer")
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range []struct{ r, g, b uint8 }{{0, 0, 0}, {0xff, 0xff, 0xff}, {0xff, 0, 0}, {0, 0xff, 0}, {0, 0, 0xff}} {
		r, g, b := RGB888From565(RGB565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("RGB888From565(RGB565(%v)) = %d,%d,%d", c, r, g, b)
		}
	}
}

func TestDisplayResizeSignals(t *testing.T) {
	d := newHostDisplay(10, 10)
	if d.resize(10, 10) {
		t.Fatalf("resize() to the same size reported a change")
	}
	select {
	case <-d.Resized():
		t.Fatalf("unexpected resize signal")
	default:
	}

	d.resize(20, 10)
	d.resize(30, 10)
	select {
	case <-d.Resized():
	default:
		t.Fatalf("missing resize signal")
	}
	select {
	case <-d.Resized():
		t.Fatalf("resizes were not collapsed into one signal")
	default:
	}
	if d.Framebuffer().Width() != 30 {
		t.Fatalf("Width() = %d, want 30", d.Framebuffer().Width())
	}
}

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }
func (l *lines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func TestLogWriter(t *testing.T) {
	var got lines
	w := LogWriter(&got)

	w.Write([]byte("one\ntw"))
	w.Write([]byte("o\n"))
	w.Write([]byte("three"))
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("lines = %q, want [one two]", got)
	}
	w.Write([]byte("\n"))
	if len(got) != 3 || got[2] != "three" {
		t.Fatalf("lines = %q, want three at the end", got)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &hostLogger{w: &buf}
	l.WriteLineString("a")
	l.WriteLineBytes([]byte("b"))
	if buf.String() != "a\nb\n" {
		t.Fatalf("output = %q, want %q", buf.String(), "a\nb\n")
	}
}

func TestHostTime(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })

	ht.step()
	select {
	case v := <-ht.Ticks():
		t.Fatalf("first step published %d", v)
	default:
	}

	now = now.Add(2500 * time.Microsecond)
	ht.step()
	if v := <-ht.Ticks(); v != 2 {
		t.Fatalf("tick = %d, want 2", v)
	}

	// The leftover 0.5ms carries into the next step.
	now = now.Add(600 * time.Microsecond)
	ht.step()
	if v := <-ht.Ticks(); v != 3 {
		t.Fatalf("tick = %d, want 3", v)
	}

	now = now.Add(100 * time.Microsecond)
	ht.step()
	select {
	case v := <-ht.Ticks():
		t.Fatalf("sub-millisecond step published %d", v)
	default:
	}
}

func TestHostTimeDropsStale(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTimeWithClock(func() time.Time { return now })
	ht.step()
	for i := 0; i < cap(ht.ch)+10; i++ {
		now = now.Add(time.Millisecond)
		ht.step()
	}
	var last uint64
	for {
		select {
		case v := <-ht.Ticks():
			last = v
			continue
		default:
		}
		break
	}
	if want := uint64(cap(ht.ch) + 10); last != want {
		t.Fatalf("last tick = %d, want %d", last, want)
	}
}

func TestPointerMouse(t *testing.T) {
	p := newHostPointer()

	p.mouse(10, 10, 100, 100, true, false)
	got := drainPointer(p)
	if want := []PointerKind{PointerDown, PointerMove}; !sameKinds(kinds(got), want) {
		t.Fatalf("press = %v, want %v", kinds(got), want)
	}

	p.mouse(10, 10, 100, 100, false, false)
	if got := drainPointer(p); len(got) != 0 {
		t.Fatalf("idle frame = %v, want nothing", kinds(got))
	}

	p.mouse(20, 15, 100, 100, false, true)
	got = drainPointer(p)
	if want := []PointerKind{PointerMove, PointerUp}; !sameKinds(kinds(got), want) {
		t.Fatalf("move+release = %v, want %v", kinds(got), want)
	}
	if got[0].X != 20 || got[0].Y != 15 || got[0].Source != SourceMouse {
		t.Fatalf("move = %+v, want mouse at (20,15)", got[0])
	}

	p.mouse(150, 15, 100, 100, false, false)
	got = drainPointer(p)
	if want := []PointerKind{PointerLeave}; !sameKinds(kinds(got), want) {
		t.Fatalf("leave = %v, want %v", kinds(got), want)
	}

	p.mouse(160, 15, 100, 100, true, false)
	if got := drainPointer(p); len(got) != 0 {
		t.Fatalf("outside = %v, want nothing", kinds(got))
	}
}

func TestPointerWheel(t *testing.T) {
	p := newHostPointer()
	p.wheel(0, 0)
	if got := drainPointer(p); len(got) != 0 {
		t.Fatalf("zero wheel = %v, want nothing", kinds(got))
	}

	p.wheel(0, -1)
	got := drainPointer(p)
	if len(got) != 1 || got[0].Kind != PointerWheel || got[0].DeltaY != DefaultWheelScale || got[0].DeltaX != 0 {
		t.Fatalf("wheel down = %+v, want DeltaY %v", got, DefaultWheelScale)
	}

	p.setWheelScale(4)
	p.setWheelScale(-1)
	p.wheel(0.5, 2)
	got = drainPointer(p)
	if len(got) != 1 || got[0].DeltaX != -2 || got[0].DeltaY != -8 {
		t.Fatalf("wheel = %+v, want deltas (-2, -8)", got)
	}
}

func TestPointerTouch(t *testing.T) {
	p := newHostPointer()

	p.touch([]TouchPoint{{ID: 1, X: 5, Y: 5}})
	got := drainPointer(p)
	if len(got) != 1 || got[0].Kind != PointerDown || got[0].Source != SourceTouch || len(got[0].Touches) != 1 {
		t.Fatalf("start = %+v, want one touch down", got)
	}

	p.touch([]TouchPoint{{ID: 1, X: 5, Y: 5}})
	if got := drainPointer(p); len(got) != 0 {
		t.Fatalf("still touch = %v, want nothing", kinds(got))
	}

	p.touch([]TouchPoint{{ID: 1, X: 8, Y: 5}, {ID: 2, X: 50, Y: 50}})
	got = drainPointer(p)
	if want := []PointerKind{PointerDown, PointerMove}; !sameKinds(kinds(got), want) {
		t.Fatalf("second finger = %v, want %v", kinds(got), want)
	}

	p.touch(nil)
	got = drainPointer(p)
	if len(got) != 1 || got[0].Kind != PointerUp || len(got[0].Touches) != 0 {
		t.Fatalf("release = %+v, want touch up with no points", got)
	}
}

func TestPointerDropsOnOverflow(t *testing.T) {
	p := newHostPointer()
	for i := 0; i < cap(p.ch)+5; i++ {
		p.wheel(0, 1)
	}
	if got := len(drainPointer(p)); got != cap(p.ch) {
		t.Fatalf("queued = %d, want %d", got, cap(p.ch))
	}
}

func TestHalfBlocks(t *testing.T) {
	fb := newHostFramebuffer(2, 3)
	fb.ClearRGB(0xff, 0xff, 0xff)
	off := 1*fb.stride + 0*2
	fb.buf[off], fb.buf[off+1] = 0, 0

	type cell struct{ top, bottom color.RGBA }
	got := map[[2]int]cell{}
	halfBlocks(fb, func(x, y int, top, bottom color.RGBA) {
		got[[2]int{x, y}] = cell{top, bottom}
	})
	if len(got) != 4 {
		t.Fatalf("cells = %d, want 4", len(got))
	}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0, 0, 0, 0xff}
	if c := got[[2]int{0, 0}]; c.top != white || c.bottom != black {
		t.Fatalf("cell (0,0) = %+v, want white over black", c)
	}
	// The odd last row pairs with a pixel outside the buffer.
	if c := got[[2]int{1, 1}]; c.top != white || c.bottom != black {
		t.Fatalf("cell (1,1) = %+v, want white over black", c)
	}
}

func TestTerminalInput(t *testing.T) {
	var logs strings.Builder
	h := newHost(10, 10, &logs)
	in := &terminalInput{h: h}

	if !in.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatalf("q did not quit")
	}
	if !in.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatalf("Esc did not quit")
	}

	in.handle(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	select {
	case ev := <-h.kbd.Events():
		if ev.Code != KeyHome || !ev.Press {
			t.Fatalf("key = %+v, want Home press", ev)
		}
	default:
		t.Fatalf("Home was not forwarded")
	}

	in.handle(tcell.NewEventResize(20, 7))
	if h.disp.fb.Width() != 20 || h.disp.fb.Height() != 14 {
		t.Fatalf("framebuffer = %dx%d, want 20x14", h.disp.fb.Width(), h.disp.fb.Height())
	}

	in.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	in.handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	got := drainPointer(h.ptr)
	if want := []PointerKind{PointerDown, PointerMove, PointerUp}; !sameKinds(kinds(got), want) {
		t.Fatalf("click = %v, want %v", kinds(got), want)
	}
	if got[0].Y != 4 {
		t.Fatalf("Y = %v, want 4 (two pixel rows per cell)", got[0].Y)
	}

	in.handle(tcell.NewEventMouse(3, 2, tcell.WheelDown, tcell.ModNone))
	got = drainPointer(h.ptr)
	if len(got) != 1 || got[0].Kind != PointerWheel || got[0].DeltaY <= 0 {
		t.Fatalf("wheel down = %+v, want positive DeltaY", got)
	}
}
