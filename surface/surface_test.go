package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"pangrid/grid"
	"pangrid/hal"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *testFB) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

var (
	testStyle = Style{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Line:       color.RGBA{R: 0, G: 0, B: 0, A: 0xff},
	}
	bgPixel   = hal.RGB565(0xff, 0xff, 0xff)
	linePixel = hal.RGB565(0, 0, 0)
)

func TestFramebufferStrokeRect(t *testing.T) {
	fb := newTestFB(20, 20)
	s := NewFramebuffer(fb, testStyle)
	s.Clear()
	s.StrokeRect(2.4, 3.6, 5, 5)

	// Corners round to (2,4) and (7,9).
	for _, p := range [][2]int{{2, 4}, {7, 4}, {2, 9}, {7, 9}, {5, 4}, {2, 6}, {7, 7}, {4, 9}} {
		if got := fb.at(p[0], p[1]); got != linePixel {
			t.Fatalf("pixel %v = %#04x, want line", p, got)
		}
	}
	for _, p := range [][2]int{{4, 6}, {1, 4}, {8, 9}, {2, 3}, {0, 0}} {
		if got := fb.at(p[0], p[1]); got != bgPixel {
			t.Fatalf("pixel %v = %#04x, want background", p, got)
		}
	}
}

func TestFramebufferStrokeRectClipped(t *testing.T) {
	fb := newTestFB(10, 10)
	s := NewFramebuffer(fb, testStyle)
	s.Clear()
	s.StrokeRect(-5, -5, 8, 8)
	s.StrokeRect(8, 8, 50, 50)

	if got := fb.at(3, 0); got != linePixel {
		t.Fatalf("pixel (3,0) = %#04x, want line", got)
	}
	if got := fb.at(8, 9); got != linePixel {
		t.Fatalf("pixel (8,9) = %#04x, want line", got)
	}
	if got := fb.at(5, 5); got != bgPixel {
		t.Fatalf("pixel (5,5) = %#04x, want background", got)
	}
}

func TestFramebufferDisplayer(t *testing.T) {
	fb := newTestFB(8, 4)
	s := NewFramebuffer(fb, testStyle)

	if w, h := s.Size(); w != 8 || h != 4 {
		t.Fatalf("Size() = %d,%d, want 8,4", w, h)
	}
	s.SetPixel(3, 2, color.RGBA{R: 0xff, A: 0xff})
	if got, want := fb.at(3, 2), hal.RGB565(0xff, 0, 0); got != want {
		t.Fatalf("SetPixel: pixel = %#04x, want %#04x", got, want)
	}
	s.SetPixel(-1, 100, color.RGBA{R: 0xff, A: 0xff})

	if err := s.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
}

func TestFramebufferRendersGrid(t *testing.T) {
	fb := newTestFB(100, 50)
	s := NewFramebuffer(fb, testStyle)
	m := grid.New(s)
	m.Resize()

	if got := m.Grid(); got.Cols != 3 || got.Rows != 2 {
		t.Fatalf("Grid() = %+v, want 3x2", got)
	}
	// Viewport starts at (-1, -0.5): first vertical line at x=1.
	if got := fb.at(1, 20); got != linePixel {
		t.Fatalf("pixel (1,20) = %#04x, want line", got)
	}
	if got := fb.at(18, 12); got != bgPixel {
		t.Fatalf("pixel (18,12) = %#04x, want background", got)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#505050")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}) {
		t.Fatalf("ParseColor = %+v", c)
	}
	if got := Hex(c); got != "#505050" {
		t.Fatalf("Hex() = %q, want #505050", got)
	}
	if _, err := ParseColor("grey"); err == nil {
		t.Fatalf("ParseColor(grey) err = nil, want error")
	}
}

func TestCanvasRendersPNG(t *testing.T) {
	c := NewCanvas(100, 50, testStyle, 1)
	defer c.Close()

	if b := c.Bounds(); b.Width != 100 || b.Height != 50 {
		t.Fatalf("Bounds() = %+v, want 100x50", b)
	}
	m := grid.New(c)
	m.Resize()
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("image bounds = %v, want 100x50", b)
	}
	r, _, _, _ := img.At(18, 12).RGBA()
	if r>>8 < 250 {
		t.Fatalf("cell interior red = %d, want background", r>>8)
	}
	r, _, _, _ = img.At(1, 20).RGBA()
	if r>>8 >= 250 {
		t.Fatalf("grid line red = %d, want darker than background", r>>8)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10, DefaultStyle, 0)
	defer c.Close()
	if err := c.Resize(40, 30); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if b := c.Bounds(); b.Width != 40 || b.Height != 30 {
		t.Fatalf("Bounds() = %+v, want 40x30", b)
	}
	if err := c.Resize(0, 30); err == nil {
		t.Fatalf("Resize(0, 30) err = nil, want error")
	}
}
