// Package input turns pointer, touch and wheel events into viewport
// updates.
package input

import "pangrid/hal"

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Kind is the type of an input event.
type Kind uint8

const (
	MouseDown Kind = iota + 1
	MouseMove
	MouseUp
	MouseLeave
	TouchStart
	TouchMove
	TouchEnd
	Wheel
)

var kindNames = [...]string{
	MouseDown:  "mousedown",
	MouseMove:  "mousemove",
	MouseUp:    "mouseup",
	MouseLeave: "mouseleave",
	TouchStart: "touchstart",
	TouchMove:  "touchmove",
	TouchEnd:   "touchend",
	Wheel:      "wheel",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// IsTouch reports whether k is a touch event kind.
func (k Kind) IsTouch() bool {
	return k == TouchStart || k == TouchMove || k == TouchEnd
}

// Event is one input event as delivered to handlers.
//
// Mouse events carry X/Y; touch events carry the touches still on the
// surface; wheel events carry pixel deltas.
type Event struct {
	Kind    Kind
	X, Y    float64
	Touches []Point
	DeltaX  float64
	DeltaY  float64

	defaultPrevented bool
	stopped          bool
}

// PreventDefault tells the host to skip its native handling.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps later handlers from seeing the event.
func (e *Event) StopPropagation() { e.stopped = true }

func (e *Event) PropagationStopped() bool { return e.stopped }

// ClientPoint extracts the pointer position: the mouse position, or the
// first touch point. It reports false for a touch event with no touches.
func ClientPoint(e *Event) (Point, bool) {
	if e.Kind.IsTouch() {
		if len(e.Touches) == 0 {
			return Point{}, false
		}
		return e.Touches[0], true
	}
	return Point{X: e.X, Y: e.Y}, true
}

// FromHAL converts a HAL pointer event. It reports false for events that
// have no input counterpart.
func FromHAL(ev hal.PointerEvent) (Event, bool) {
	out := Event{X: ev.X, Y: ev.Y, DeltaX: ev.DeltaX, DeltaY: ev.DeltaY}
	if len(ev.Touches) > 0 {
		out.Touches = make([]Point, len(ev.Touches))
		for i, tp := range ev.Touches {
			out.Touches[i] = Point{X: tp.X, Y: tp.Y}
		}
	}

	touch := ev.Source == hal.SourceTouch
	switch ev.Kind {
	case hal.PointerDown:
		out.Kind = pick(touch, TouchStart, MouseDown)
	case hal.PointerMove:
		out.Kind = pick(touch, TouchMove, MouseMove)
	case hal.PointerUp:
		out.Kind = pick(touch, TouchEnd, MouseUp)
	case hal.PointerLeave:
		if touch {
			return Event{}, false
		}
		out.Kind = MouseLeave
	case hal.PointerWheel:
		out.Kind = Wheel
	default:
		return Event{}, false
	}
	return out, true
}

func pick(touch bool, t, m Kind) Kind {
	if touch {
		return t
	}
	return m
}
