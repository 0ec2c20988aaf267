// Package loop provides the single-threaded timer and animation-frame queue
// that the widget runs on, plus the Coalescer built on top of it.
//
// Nothing here starts goroutines. The host advances time with Advance and
// paints with RunFrame, both from its frame loop.
package loop

import (
	"sort"
	"time"
)

// TimerID identifies a pending timer. The zero value is never issued.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// Scheduler holds delay timers and frame callbacks.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []timer
	frames []func()
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the time of the last Advance.
func (s *Scheduler) Now() time.Duration { return s.now }

// AfterFunc arms fn to run once the clock reaches Now()+d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := timer{id: s.nextID, due: s.now + d, fn: fn}

	// Keep timers ordered by due time; equal due times stay FIFO.
	i := sort.Search(len(s.timers), func(i int) bool { return s.timers[i].due > t.due })
	s.timers = append(s.timers, timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
	return t.id
}

// Stop cancels a pending timer. It reports whether the timer was pending.
func (s *Scheduler) Stop(id TimerID) bool {
	for i := range s.timers {
		if s.timers[i].id != id {
			continue
		}
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		return true
	}
	return false
}

// RequestFrame queues fn for the next RunFrame.
func (s *Scheduler) RequestFrame(fn func()) {
	s.frames = append(s.frames, fn)
}

// Advance moves the clock to now (it never goes backwards) and runs every
// timer that was due at that point. Timers armed by those callbacks wait for
// a later Advance even if their delay is zero. It returns the number of
// timers run.
func (s *Scheduler) Advance(now time.Duration) int {
	if now > s.now {
		s.now = now
	}

	var due []TimerID
	for _, t := range s.timers {
		if t.due > s.now {
			break
		}
		due = append(due, t.id)
	}

	ran := 0
	for _, id := range due {
		fn, ok := s.take(id)
		if !ok {
			// Stopped by an earlier callback.
			continue
		}
		fn()
		ran++
	}
	return ran
}

// RunFrame runs the frame callbacks queued before the call. Callbacks queued
// while running are left for the next frame.
func (s *Scheduler) RunFrame() int {
	frames := s.frames
	s.frames = nil
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

// Pending returns the number of armed timers and queued frame callbacks.
func (s *Scheduler) Pending() (timers, frames int) {
	return len(s.timers), len(s.frames)
}

func (s *Scheduler) take(id TimerID) (func(), bool) {
	for i := range s.timers {
		if s.timers[i].id != id {
			continue
		}
		fn := s.timers[i].fn
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		return fn, true
	}
	return nil, false
}
