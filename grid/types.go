package grid

// Size is the pixel size of the drawing surface.
type Size struct {
	Width  float64
	Height float64
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Viewport is the visible window into the unbounded plane.
//
// X and Y are the pan offset; Width and Height always mirror the surface
// size. Viewports are values: callers build a new one instead of mutating.
type Viewport struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Pan returns v moved by (dx, dy).
func (v Viewport) Pan(dx, dy float64) Viewport {
	return Viewport{X: v.X + dx, Y: v.Y + dy, Width: v.Width, Height: v.Height}
}

// InitialViewport returns the viewport installed by Initialize: a small
// offset of 1% of the size so lines do not sit flush with the edges.
func InitialViewport(s Size) Viewport {
	return Viewport{
		X:      -s.Width * 0.01,
		Y:      -s.Height * 0.01,
		Width:  s.Width,
		Height: s.Height,
	}
}

// Grid is the visible cell count and the pixel size of one cell.
type Grid struct {
	Rows   int
	Cols   int
	Width  float64
	Height float64
}
