// Package clock provides the monotonic time source used by the stopwatch
// engine and the frame loop.
//
// Readings are offsets from an arbitrary origin, never wall-clock times. In
// production use NewReal; tests use the fake in clock/testutil.
package clock

import "time"

// Clock is a monotonic time source plus a ticker factory.
type Clock interface {
	// Now returns the time elapsed since the clock's origin.
	Now() time.Duration

	// NewTicker returns a ticker that delivers ticks every d.
	NewTicker(d time.Duration) Ticker
}

// Ticker wraps time.Ticker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real reads the process monotonic clock.
type Real struct {
	origin time.Time
}

var _ Clock = (*Real)(nil)

// NewReal creates a clock whose origin is the moment of the call.
func NewReal() *Real {
	return &Real{origin: time.Now()}
}

// Now returns the monotonic time since the origin.
func (r *Real) Now() time.Duration {
	return time.Since(r.origin)
}

// NewTicker returns a ticker backed by time.Ticker.
func (r *Real) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }
