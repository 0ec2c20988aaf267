package surface

import (
	"fmt"
	"io"

	"pangrid/grid"

	"github.com/gogpu/gg"
)

// Canvas draws through a gg context. It backs snapshots and gridsnap.
type Canvas struct {
	dc        *gg.Context
	style     Style
	lineWidth float64
	err       error
}

var _ grid.Surface = (*Canvas)(nil)

// NewCanvas returns a width x height canvas.
func NewCanvas(width, height int, style Style, lineWidth float64) *Canvas {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &Canvas{
		dc:        gg.NewContext(width, height),
		style:     style,
		lineWidth: lineWidth,
	}
}

func (c *Canvas) Bounds() grid.Size {
	return grid.Size{Width: float64(c.dc.Width()), Height: float64(c.dc.Height())}
}

func (c *Canvas) Clear() {
	c.err = nil
	bg := c.style.Background
	c.dc.ClearWithColor(gg.RGBA2(
		float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255, float64(bg.A)/255,
	))
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.dc.SetColor(c.style.Line)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.DrawRectangle(x, y, w, h)
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = err
	}
}

// Flush reports the first stroke error since the last Clear.
func (c *Canvas) Flush() error {
	if c.err != nil {
		return fmt.Errorf("canvas stroke: %w", c.err)
	}
	return nil
}

// Resize changes the canvas size; the contents are discarded.
func (c *Canvas) Resize(width, height int) error {
	return c.dc.Resize(width, height)
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %q: %w", path, err)
	}
	return nil
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
