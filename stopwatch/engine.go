// Package stopwatch contains the timing domain: the accumulating Timer, the
// Engine state machine that runs a Total and a Lap timer in lockstep, the
// Session snapshot with its derived fastest/slowest values, and FormatTime.
//
// Maintenance notes:
//   - Engine mutations (Start, Stop, RecordLap, Reset) are expected to come
//     from a single goroutine (the application command loop). Tick and
//     Snapshot may be called from any goroutine; the engine lock makes every
//     transition observable as a whole.
//   - Every transition reads the clock once and uses that single reading for
//     both timers, so Total and Lap never drift apart on a start or stop.
package stopwatch

import (
	"sync"
	"time"

	"Lapwatch/clock"
)

// RunState is the shared running/stopped flag of both timers.
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Lap is one recorded lap boundary. The seed lap is pushed on the first
// start of a session and stands for "lap 1 in progress"; it is never
// compared or displayed as a value.
type Lap struct {
	Duration time.Duration
	Seed     bool
}

// Engine owns the Total and Lap timers and the lap list.
type Engine struct {
	clock clock.Clock

	mu    sync.RWMutex
	state RunState
	total Timer
	lap   Timer
	laps  []Lap
}

// NewEngine creates a stopped engine with zero timers and no laps.
func NewEngine(c clock.Clock) *Engine {
	return &Engine{clock: c, state: Stopped}
}

// State returns the current run state.
func (e *Engine) State() RunState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Start opens a run segment on both timers. The first start of a session
// seeds the lap list. Returns false if the engine was already running.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Running {
		return false
	}

	now := e.clock.Now()
	if len(e.laps) == 0 {
		e.laps = append(e.laps, Lap{Duration: e.lap.Elapsed(now), Seed: true})
	}
	e.total.start(now)
	e.lap.start(now)
	e.state = Running
	return true
}

// Stop banks both timers. Returns false if the engine was already stopped.
func (e *Engine) Stop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Stopped {
		return false
	}

	now := e.clock.Now()
	e.total.stop(now)
	e.lap.stop(now)
	e.state = Stopped
	return true
}

// RecordLap appends the current lap time and restarts the Lap timer from
// zero at the same clock reading. The Total timer is untouched. Ignored
// (returns false) while stopped.
func (e *Engine) RecordLap() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Running {
		return false
	}

	now := e.clock.Now()
	e.laps = append(e.laps, Lap{Duration: e.lap.Elapsed(now)})
	e.lap.restart(now)
	return true
}

// Reset zeroes both timers and clears the laps. Ignored (returns false)
// while running.
func (e *Engine) Reset() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Stopped {
		return false
	}

	e.total.reset()
	e.lap.reset()
	e.laps = nil
	return true
}

// Tick computes the session as displayed at now. It has no side effects.
func (e *Engine) Tick(now time.Duration) Session {
	e.mu.RLock()
	defer e.mu.RUnlock()

	laps := make([]Lap, len(e.laps))
	copy(laps, e.laps)
	return Session{
		Total: e.total.Elapsed(now),
		Lap:   e.lap.Elapsed(now),
		Laps:  laps,
		State: e.state,
	}
}

// Snapshot is Tick at the current clock reading.
func (e *Engine) Snapshot() Session {
	return e.Tick(e.clock.Now())
}
