// Package hud draws a one-line status strip over the grid.
package hud

import (
	"fmt"
	"image/color"

	"pangrid/grid"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorPanel = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	colorText  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

const (
	fontHeight = 10
	fontOffset = 7
	padding    = 2
)

// Display is a tinyfont target that can also fill rectangles.
type Display interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// HUD prints the pan offset and grid shape in the top-left corner.
type HUD struct {
	d    Display
	font tinyfont.Fonter
}

var _ grid.Overlay = (*HUD)(nil)

func New(d Display) *HUD {
	return &HUD{d: d, font: &proggy.TinySZ8pt7b}
}

// Text returns the status line for v and g.
func Text(v grid.Viewport, g grid.Grid) string {
	return fmt.Sprintf("x:%.0f y:%.0f  %dx%d", v.X, v.Y, g.Cols, g.Rows)
}

func (h *HUD) DrawOverlay(v grid.Viewport, g grid.Grid) {
	if h.d == nil {
		return
	}
	s := Text(v, g)
	_, outbox := tinyfont.LineWidth(h.font, s)

	w, _ := h.d.Size()
	width := min(int16(outbox)+2*padding, w)
	_ = h.d.FillRectangle(0, 0, width, fontHeight+2*padding, colorPanel)
	tinyfont.WriteLine(h.d, h.font, padding, padding+fontOffset, s, colorText)
}
