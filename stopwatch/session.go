package stopwatch

import "time"

// Session is a consistent snapshot of the engine for rendering. Laps is a
// copy and may be kept by the caller.
type Session struct {
	Total time.Duration
	Lap   time.Duration
	Laps  []Lap
	State RunState
}

// Running reports whether the session is running.
func (s Session) Running() bool {
	return s.State == Running
}

// CompletedLaps returns the recorded laps without the seed, oldest first.
func (s Session) CompletedLaps() []Lap {
	out := make([]Lap, 0, len(s.Laps))
	for _, l := range s.Laps {
		if !l.Seed {
			out = append(out, l)
		}
	}
	return out
}

// CurrentLapNumber is the label number of the in-progress lap, or 0 before
// the first start.
func (s Session) CurrentLapNumber() int {
	return len(s.Laps)
}

// Fastest returns the shortest completed lap. ok is false until at least one
// lap has been recorded after the seed.
func (s Session) Fastest() (d time.Duration, ok bool) {
	return s.extreme(func(a, b time.Duration) bool { return a < b })
}

// Slowest returns the longest completed lap.
func (s Session) Slowest() (d time.Duration, ok bool) {
	return s.extreme(func(a, b time.Duration) bool { return a > b })
}

func (s Session) extreme(better func(a, b time.Duration) bool) (time.Duration, bool) {
	if len(s.Laps) <= 1 {
		return 0, false
	}
	completed := s.CompletedLaps()
	if len(completed) == 0 {
		return 0, false
	}
	best := completed[0].Duration
	for _, l := range completed[1:] {
		if better(l.Duration, best) {
			best = l.Duration
		}
	}
	return best, true
}
