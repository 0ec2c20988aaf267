package surface

import (
	"image/color"
	"math"

	"pangrid/grid"
	"pangrid/hal"

	"tinygo.org/x/drivers"
)

// Framebuffer draws into an RGB565 hal.Framebuffer. It also satisfies
// drivers.Displayer so tinyfont can write onto the same pixels.
type Framebuffer struct {
	fb    hal.Framebuffer
	style Style
}

var (
	_ grid.Surface      = (*Framebuffer)(nil)
	_ drivers.Displayer = (*Framebuffer)(nil)
)

// NewFramebuffer wraps fb. The framebuffer's size is read on every call, so
// the host may reallocate it between renders.
func NewFramebuffer(fb hal.Framebuffer, style Style) *Framebuffer {
	return &Framebuffer{fb: fb, style: style}
}

func (s *Framebuffer) usable() bool {
	return s.fb != nil && s.fb.Format() == hal.PixelFormatRGB565 && s.fb.Buffer() != nil
}

func (s *Framebuffer) Bounds() grid.Size {
	if s.fb == nil {
		return grid.Size{}
	}
	return grid.Size{Width: float64(s.fb.Width()), Height: float64(s.fb.Height())}
}

func (s *Framebuffer) Clear() {
	if s.fb == nil {
		return
	}
	bg := s.style.Background
	s.fb.ClearRGB(bg.R, bg.G, bg.B)
}

// StrokeRect draws a one pixel outline whose corners are rounded to the
// nearest pixel. Parts outside the buffer are clipped.
func (s *Framebuffer) StrokeRect(x, y, w, h float64) {
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))
	if x1 < x0 || y1 < y0 {
		return
	}

	c := s.style.Line
	s.fill(x0, y0, x1-x0+1, 1, c)
	s.fill(x0, y1, x1-x0+1, 1, c)
	s.fill(x0, y0, 1, y1-y0+1, c)
	s.fill(x1, y0, 1, y1-y0+1, c)
}

func (s *Framebuffer) Flush() error {
	if s.fb == nil {
		return nil
	}
	return s.fb.Present()
}

// Size implements drivers.Displayer.
func (s *Framebuffer) Size() (x, y int16) {
	if s.fb == nil {
		return 0, 0
	}
	return int16(min(s.fb.Width(), math.MaxInt16)), int16(min(s.fb.Height(), math.MaxInt16))
}

// SetPixel implements drivers.Displayer.
func (s *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	s.fill(int(x), int(y), 1, 1, c)
}

// Display implements drivers.Displayer.
func (s *Framebuffer) Display() error {
	return s.Flush()
}

// FillRectangle paints a solid rectangle, clipped to the buffer.
func (s *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	s.fill(int(x), int(y), int(width), int(height), c)
	return nil
}

func (s *Framebuffer) fill(x, y, width, height int, c color.RGBA) {
	if !s.usable() {
		return
	}
	buf := s.fb.Buffer()
	w := s.fb.Width()
	h := s.fb.Height()

	x0 := clampInt(x, 0, w)
	y0 := clampInt(y, 0, h)
	x1 := clampInt(x+width, 0, w)
	y1 := clampInt(y+height, 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := s.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
