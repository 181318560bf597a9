package stopwatch

import "time"

// Timer is an accumulating elapsed-time counter. Time is banked into
// accumulated whenever a run segment ends; while running, the live value is
// accumulated plus the length of the current segment.
//
// Timer is not safe for concurrent use; Engine guards its two timers.
type Timer struct {
	accumulated time.Duration
	startedAt   time.Duration
	running     bool
}

// Elapsed returns the displayed value at now.
func (t *Timer) Elapsed(now time.Duration) time.Duration {
	if !t.running {
		return t.accumulated
	}
	seg := now - t.startedAt
	if seg < 0 {
		seg = 0
	}
	return t.accumulated + seg
}

func (t *Timer) start(now time.Duration) {
	if t.running {
		return
	}
	t.startedAt = now
	t.running = true
}

func (t *Timer) stop(now time.Duration) {
	if !t.running {
		return
	}
	t.accumulated = t.Elapsed(now)
	t.startedAt = 0
	t.running = false
}

// restart zeroes the timer and opens a new segment at now, so Elapsed(now)
// is exactly zero.
func (t *Timer) restart(now time.Duration) {
	t.accumulated = 0
	t.startedAt = now
	t.running = true
}

func (t *Timer) reset() {
	*t = Timer{}
}
