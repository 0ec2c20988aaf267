// Package surface provides grid.Surface implementations: an RGB565
// framebuffer target for the live hosts and a gg canvas for PNG output.
package surface

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the colors a surface paints with.
type Style struct {
	Background color.RGBA
	Line       color.RGBA
}

// DefaultStyle is a white page with grey grid lines.
var DefaultStyle = Style{
	Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Line:       color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff},
}

// ParseColor parses a hex color such as "#505050".
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
