package loop

import "time"

// State is the lifecycle of a Coalescer.
type State uint8

const (
	// Idle: nothing scheduled and no frame in flight.
	Idle State = iota
	// Scheduled: the delay timer is armed.
	Scheduled
	// Fired: the timer ran and the call waits for the next frame.
	Fired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scheduled:
		return "scheduled"
	case Fired:
		return "fired"
	default:
		return "unknown"
	}
}

// Coalescer collapses bursts of calls into one.
//
// Trigger cancels any armed timer and arms a new one; when it fires, fn is
// queued for the next animation frame with the argument of the last Trigger.
// Once queued, a frame call cannot be withdrawn.
type Coalescer[T any] struct {
	sched *Scheduler
	delay time.Duration
	fn    func(T)

	timer    TimerID
	armed    bool
	inflight int
}

// NewCoalescer wraps fn. A zero delay still defers fn to the next Advance
// and then to the frame after it.
func NewCoalescer[T any](s *Scheduler, delay time.Duration, fn func(T)) *Coalescer[T] {
	return &Coalescer[T]{sched: s, delay: delay, fn: fn}
}

// Trigger schedules fn(arg), replacing a call that has not fired yet.
func (c *Coalescer[T]) Trigger(arg T) {
	if c.armed {
		c.sched.Stop(c.timer)
	}
	c.armed = true
	c.timer = c.sched.AfterFunc(c.delay, func() {
		c.armed = false
		c.inflight++
		c.sched.RequestFrame(func() {
			c.inflight--
			c.fn(arg)
		})
	})
}

// Cancel disarms a scheduled call. Calls already queued for a frame still run.
func (c *Coalescer[T]) Cancel() {
	if !c.armed {
		return
	}
	c.sched.Stop(c.timer)
	c.armed = false
}

// State reports where the most recent Trigger is in its lifecycle.
func (c *Coalescer[T]) State() State {
	switch {
	case c.armed:
		return Scheduled
	case c.inflight > 0:
		return Fired
	default:
		return Idle
	}
}
