package hal

import "time"

const tickDur = time.Millisecond

// hostTime turns wall-clock progress between frames into 1ms ticks.
type hostTime struct {
	ch    chan uint64
	seq   uint64
	clock func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(clock func() time.Time) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), clock: clock}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the ticks elapsed since the previous step. The first call
// only starts the clock.
func (t *hostTime) step() {
	now := t.clock()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc %= tickDur
	t.seq += ticks
	t.publish()
}

// publish sends the latest count. Only the newest value matters to readers,
// so a full channel is drained of stale values first.
func (t *hostTime) publish() {
	for {
		select {
		case t.ch <- t.seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
