// Package frame drives display refreshes while the stopwatch runs.
//
// A Loop is a ticker-backed chain of frames. Each run of the loop gets a new
// generation number; Stop bumps the generation and waits for the goroutine to
// exit, so frames from a cancelled run are never delivered after Stop
// returns. Callbacks that hop to another goroutine (fyne.Do) should check
// Valid before acting on a frame.
package frame

import (
	"context"
	"sync"
	"time"

	"Lapwatch/clock"
)

// DefaultInterval approximates a 60Hz display.
const DefaultInterval = 16 * time.Millisecond

// Frame is delivered to the loop callback once per refresh.
type Frame struct {
	Gen uint64
	Now time.Duration
}

// Loop is a cancellable refresh loop. The zero value is not usable; call New.
type Loop struct {
	clock    clock.Clock
	interval time.Duration

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped loop. A non-positive interval selects
// DefaultInterval.
func New(c clock.Clock, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{clock: c, interval: interval}
}

// Interval returns the refresh period.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Running reports whether a run is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Start begins delivering frames to fn until Stop is called or ctx is done.
// It is a no-op if the loop is already running. fn runs on the loop's
// goroutine and must not call Stop.
func (l *Loop) Start(ctx context.Context, fn func(Frame)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}

	l.gen++
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(runCtx, l.gen, l.clock.NewTicker(l.interval), fn, l.done)
}

// Stop cancels the current run and waits for its goroutine to exit. Safe to
// call when stopped.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.cancel == nil {
		l.mu.Unlock()
		return
	}
	l.gen++
	l.cancel()
	done := l.done
	l.cancel = nil
	l.done = nil
	l.mu.Unlock()

	<-done
}

// Valid reports whether f belongs to the current run.
func (l *Loop) Valid(f Frame) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil && f.Gen == l.gen
}

func (l *Loop) run(ctx context.Context, gen uint64, ticker clock.Ticker, fn func(Frame), done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			f := Frame{Gen: gen, Now: l.clock.Now()}
			if !l.Valid(f) {
				return
			}
			fn(f)
		}
	}
}
