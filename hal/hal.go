package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNoWindow is returned by RunWindow in builds without cgo.
var ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyHome
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind is the phase of a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
	PointerLeave
	PointerWheel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// PointerSource tells mouse events from touch events.
type PointerSource uint8

const (
	SourceMouse PointerSource = iota + 1
	SourceTouch
)

// TouchPoint is one active touch, in framebuffer pixels.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// PointerEvent is a mouse, touch or wheel event in framebuffer pixels.
//
// Mouse events carry X/Y. Touch events carry the touches still on the
// surface, so a touch-end may have none. Wheel deltas are in pixels;
// positive DeltaY scrolls down.
type PointerEvent struct {
	Kind    PointerKind
	Source  PointerSource
	X, Y    float64
	Touches []TouchPoint
	DeltaX  float64
	DeltaY  float64
}

// Pointer provides mouse, touch and wheel events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	// Resized signals that the framebuffer changed size. Hosts send
	// without blocking; one pending signal covers any number of resizes.
	Resized() <-chan struct{}
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// Each tick is one millisecond of host time; the value is the running tick
// count.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the widget and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
