//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (p *hostPointer) poll(width, height int) {
	x, y := ebiten.CursorPosition()
	p.mouse(x, y, width, height,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	)

	p.wheel(ebiten.Wheel())

	ids := ebiten.AppendTouchIDs(nil)
	current := make([]TouchPoint, 0, len(ids))
	for _, id := range ids {
		tx, ty := ebiten.TouchPosition(id)
		current = append(current, TouchPoint{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	p.touch(current)
}
