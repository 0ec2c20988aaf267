package grid

// Surface is a drawable target the model renders into.
type Surface interface {
	Bounds() Size
	Clear()
	StrokeRect(x, y, w, h float64)
	Flush() error
}

// Overlay draws on top of the grid after each render.
type Overlay interface {
	DrawOverlay(v Viewport, g Grid)
}

// Option configures a Model.
type Option func(*Model)

// WithOverlay installs an overlay drawn after the grid lines.
func WithOverlay(o Overlay) Option {
	return func(m *Model) { m.overlay = o }
}

// Model owns the surface size, the viewport and the derived grid.
//
// It is not safe for concurrent use; all calls are expected to come from the
// host's frame loop.
type Model struct {
	surface Surface
	overlay Overlay

	size     Size
	viewport Viewport
	grid     Grid
}

// New returns a model bound to s. Call Initialize before the first render.
func New(s Surface, opts ...Option) *Model {
	m := &Model{surface: s}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Size() Size         { return m.size }
func (m *Model) Viewport() Viewport { return m.viewport }
func (m *Model) Grid() Grid         { return m.grid }

// Initialize replaces all state for a new surface size and renders.
func (m *Model) Initialize(s Size) {
	m.size = s
	m.viewport = InitialViewport(s)
	m.grid = Layout(s)
	Logger().Debug("grid: initialize",
		"width", s.Width, "height", s.Height,
		"cols", m.grid.Cols, "rows", m.grid.Rows)
	m.Render()
}

// Resize re-initializes the model from the surface's current bounds.
func (m *Model) Resize() {
	m.Initialize(m.surface.Bounds())
}

// SetViewport replaces the viewport and renders. Panning is unbounded.
func (m *Model) SetViewport(v Viewport) {
	m.viewport = v
	m.Render()
}

// Origin returns the offset of the first grid line inside the surface.
func (m *Model) Origin() (x0, y0 float64) {
	return Mod(-m.viewport.X, m.grid.Width), Mod(-m.viewport.Y, m.grid.Height)
}

// Render clears the surface and strokes every visible cell, plus one cell of
// padding on each side so panning never shows a gap at the edges.
func (m *Model) Render() {
	if m.surface == nil {
		return
	}
	m.surface.Clear()

	g := m.grid
	if g.Width > 0 && g.Height > 0 {
		x0, y0 := m.Origin()
		for row := -1; row <= g.Rows; row++ {
			for col := -1; col <= g.Cols; col++ {
				m.surface.StrokeRect(
					x0+float64(col)*g.Width,
					y0+float64(row)*g.Height,
					g.Width,
					g.Height,
				)
			}
		}
	}

	if m.overlay != nil {
		m.overlay.DrawOverlay(m.viewport, g)
	}
	if err := m.surface.Flush(); err != nil {
		Logger().Warn("grid: flush failed", "err", err)
	}
}
