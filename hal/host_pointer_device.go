package hal

// DefaultWheelScale is the number of pixels one wheel step scrolls.
const DefaultWheelScale = 48

type hostPointer struct {
	ch         chan PointerEvent
	wheelScale float64

	// mouse
	inside bool
	lastX  int
	lastY  int

	// touch, keyed by id
	touches map[int]TouchPoint
}

func newHostPointer() *hostPointer {
	return &hostPointer{
		ch:         make(chan PointerEvent, 64),
		wheelScale: DefaultWheelScale,
		touches:    map[int]TouchPoint{},
	}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) setWheelScale(scale float64) {
	if scale > 0 {
		p.wheelScale = scale
	}
}

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// wheel converts device wheel steps (positive = up/left) into pixel deltas
// (positive = down/right).
func (p *hostPointer) wheel(stepsX, stepsY float64) {
	if stepsX == 0 && stepsY == 0 {
		return
	}
	p.emit(PointerEvent{
		Kind:   PointerWheel,
		Source: SourceMouse,
		X:      float64(p.lastX),
		Y:      float64(p.lastY),
		DeltaX: -stepsX * p.wheelScale,
		DeltaY: -stepsY * p.wheelScale,
	})
}

// mouse feeds one frame of mouse state. Moves outside the surface are not
// reported; leaving it is.
func (p *hostPointer) mouse(x, y, width, height int, pressed, released bool) {
	in := x >= 0 && y >= 0 && x < width && y < height
	ev := PointerEvent{Source: SourceMouse, X: float64(x), Y: float64(y)}

	if pressed && in {
		ev.Kind = PointerDown
		p.emit(ev)
	}
	if (x != p.lastX || y != p.lastY) && in {
		ev.Kind = PointerMove
		p.emit(ev)
	}
	if released {
		ev.Kind = PointerUp
		p.emit(ev)
	}
	if p.inside && !in {
		ev.Kind = PointerLeave
		p.emit(ev)
	}

	p.inside = in
	p.lastX, p.lastY = x, y
}

// touch feeds the set of touches active this frame and emits start, move
// and end events by diffing against the previous frame.
func (p *hostPointer) touch(current []TouchPoint) {
	var started, ended, moved bool
	next := make(map[int]TouchPoint, len(current))
	for _, tp := range current {
		next[tp.ID] = tp
		prev, ok := p.touches[tp.ID]
		switch {
		case !ok:
			started = true
		case prev.X != tp.X || prev.Y != tp.Y:
			moved = true
		}
	}
	for id := range p.touches {
		if _, ok := next[id]; !ok {
			ended = true
		}
	}
	p.touches = next

	emit := func(kind PointerKind) {
		touches := append([]TouchPoint(nil), current...)
		p.emit(PointerEvent{Kind: kind, Source: SourceTouch, Touches: touches})
	}
	if started {
		emit(PointerDown)
	}
	if moved {
		emit(PointerMove)
	}
	if ended {
		emit(PointerUp)
	}
}
