package grid

import "math"

const minCells = 2

// breakpoints maps the longer screen dimension to a base cell count.
var breakpoints = []struct {
	above float64
	count int
}{
	{2800, 7},
	{1920, 6},
	{1440, 5},
	{1024, 4},
}

// BaseCount returns the cell count along an axis of the given length.
func BaseCount(screen float64) int {
	for _, bp := range breakpoints {
		if screen > bp.above {
			return bp.count
		}
	}
	return 3
}

// Layout picks the grid for a surface size. The longer axis takes the base
// count and the shorter one follows the aspect ratio, never below two cells.
func Layout(s Size) Grid {
	if s.Empty() {
		return Grid{Rows: minCells, Cols: minCells}
	}

	var rows, cols int
	if s.Width > s.Height {
		cols = BaseCount(s.Width)
		rows = max(int(math.Floor(float64(cols)*s.Height/s.Width)), minCells)
	} else {
		rows = BaseCount(s.Height)
		cols = max(int(math.Floor(float64(rows)*s.Width/s.Height)), minCells)
	}

	return Grid{
		Rows:   rows,
		Cols:   cols,
		Width:  s.Width / float64(cols),
		Height: s.Height / float64(rows),
	}
}

// Mod returns a mod d normalized into [0, d) for d > 0.
func Mod(a, d float64) float64 {
	if d <= 0 {
		return 0
	}
	r := math.Mod(a, d)
	if r < 0 {
		r += d
	}
	// r+d rounds up to d for tiny negative remainders.
	if r >= d {
		r = 0
	}
	return r
}
