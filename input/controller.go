package input

import (
	"log/slog"
	"time"

	"pangrid/grid"
	"pangrid/loop"
)

// DefaultSettle is how long scrolling must pause before the trailing
// re-render.
const DefaultSettle = 100 * time.Millisecond

// Target is the model the controller pans.
type Target interface {
	Viewport() grid.Viewport
	SetViewport(v grid.Viewport)
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelay sets the coalescing delay for drag moves and scrolls.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithSettle sets the pause after which a scroll is re-committed.
func WithSettle(d time.Duration) Option {
	return func(c *Controller) { c.settleDelay = d }
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

type delta struct {
	dx, dy float64
}

// Controller turns drag and wheel input into viewport commits.
//
// Drag moves and scrolls go through a Coalescer each, so a burst of events
// commits once per frame with the newest data. All methods must be called
// from the loop that drives the scheduler.
type Controller struct {
	target      Target
	sched       *loop.Scheduler
	log         *slog.Logger
	delay       time.Duration
	settleDelay time.Duration

	// current is non-nil exactly while dragging.
	current *Point

	drag   *loop.Coalescer[Point]
	scroll *loop.Coalescer[delta]

	settle      loop.TimerID
	settleArmed bool

	subs []Subscription
}

func NewController(t Target, s *loop.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		target:      t,
		sched:       s,
		log:         slog.New(slog.DiscardHandler),
		settleDelay: DefaultSettle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.drag = loop.NewCoalescer(s, c.delay, c.applyDrag)
	c.scroll = loop.NewCoalescer(s, c.delay, c.applyScroll)
	return c
}

// Bind subscribes the controller to src. A controller binds to one source
// at a time; binding again drops the previous subscriptions.
func (c *Controller) Bind(src Source) {
	c.Unbind()
	on := func(h Handler, kinds ...Kind) {
		for _, k := range kinds {
			c.subs = append(c.subs, src.Subscribe(k, h))
		}
	}
	on(c.StartDrag, MouseDown, TouchStart)
	on(c.Drag, MouseMove, TouchMove)
	on(c.StopDrag, MouseUp, MouseLeave, TouchEnd)
	on(c.Scroll, Wheel)
}

// Unbind removes all subscriptions and drops work that has not fired yet.
func (c *Controller) Unbind() {
	for _, s := range c.subs {
		s.Remove()
	}
	c.subs = nil
	c.drag.Cancel()
	c.scroll.Cancel()
	c.stopSettle()
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.current != nil }

// Current returns the last pointer position of the active drag.
func (c *Controller) Current() (Point, bool) {
	if c.current == nil {
		return Point{}, false
	}
	return *c.current, true
}

// StartDrag handles mouse-down and touch-start.
func (c *Controller) StartDrag(e *Event) {
	e.PreventDefault()
	e.StopPropagation()

	p, ok := ClientPoint(e)
	if !ok {
		return
	}
	c.current = &p
	c.log.Debug("input: drag start", "x", p.X, "y", p.Y, "kind", e.Kind)
}

// Drag handles mouse-move and touch-move.
func (c *Controller) Drag(e *Event) {
	e.PreventDefault()
	e.StopPropagation()

	p, ok := ClientPoint(e)
	if !ok {
		return
	}
	c.drag.Trigger(p)
}

// StopDrag handles mouse-up, mouse-leave and touch-end.
func (c *Controller) StopDrag(e *Event) {
	e.PreventDefault()
	e.StopPropagation()

	if c.current != nil {
		c.log.Debug("input: drag stop", "kind", e.Kind)
	}
	c.current = nil
}

// Scroll handles wheel events.
func (c *Controller) Scroll(e *Event) {
	e.PreventDefault()
	e.StopPropagation()

	c.scroll.Trigger(delta{dx: e.DeltaX, dy: e.DeltaY})
}

// applyDrag applies one coalesced drag move. The content follows the pointer,
// so the viewport moves against it.
func (c *Controller) applyDrag(p Point) {
	if c.current == nil {
		return
	}
	from := *c.current
	v := c.target.Viewport().Pan(from.X-p.X, from.Y-p.Y)
	c.current = &p
	c.commit(v)
}

func (c *Controller) applyScroll(d delta) {
	c.commit(c.target.Viewport().Pan(d.dx, d.dy))

	c.stopSettle()
	c.settleArmed = true
	c.settle = c.sched.AfterFunc(c.settleDelay, func() {
		c.settleArmed = false
		c.commit(c.target.Viewport())
	})
}

func (c *Controller) stopSettle() {
	if c.settleArmed {
		c.sched.Stop(c.settle)
		c.settleArmed = false
	}
}

func (c *Controller) commit(v grid.Viewport) {
	c.log.Debug("input: commit viewport", "x", v.X, "y", v.Y)
	c.target.SetViewport(v)
}
