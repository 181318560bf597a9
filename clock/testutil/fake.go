package testutil

import (
	"sync"
	"time"

	"Lapwatch/clock"
)

// FakeClock is a manually driven clock. Time only moves on Advance.
type FakeClock struct {
	mtx     sync.Mutex
	now     time.Duration
	tickers []*FakeTicker
}

var _ clock.Clock = new(FakeClock)

// Now returns the current fake reading.
func (f *FakeClock) Now() time.Duration {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.now
}

// Set moves the clock to an absolute reading without firing tickers.
func (f *FakeClock) Set(d time.Duration) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.now = d
}

// Advance moves the clock forward by d and delivers one tick to every live
// ticker. A tick is dropped if the ticker's previous tick was not consumed,
// the same way time.Ticker drops ticks for slow receivers.
func (f *FakeClock) Advance(d time.Duration) {
	f.mtx.Lock()
	f.now += d
	now := f.now
	tickers := make([]*FakeTicker, len(f.tickers))
	copy(tickers, f.tickers)
	f.mtx.Unlock()

	for _, t := range tickers {
		t.fire(now)
	}
}

// NewTicker returns a ticker that fires on Advance. The period is ignored.
func (f *FakeClock) NewTicker(_ time.Duration) clock.Ticker {
	t := &FakeTicker{c: make(chan time.Time, 1)}
	f.mtx.Lock()
	f.tickers = append(f.tickers, t)
	f.mtx.Unlock()
	return t
}

// Tickers returns how many tickers have not been stopped.
func (f *FakeClock) Tickers() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	n := 0
	for _, t := range f.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

// FakeTicker is the ticker handed out by FakeClock.
type FakeTicker struct {
	c       chan time.Time
	stopped bool
	mtx     sync.Mutex
}

var _ clock.Ticker = new(FakeTicker)

func (t *FakeTicker) C() <-chan time.Time {
	return t.c
}

func (t *FakeTicker) Stop() {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.stopped = true
}

func (t *FakeTicker) isStopped() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.stopped
}

func (t *FakeTicker) fire(now time.Duration) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.stopped {
		return
	}
	select {
	case t.c <- time.Unix(0, 0).Add(now):
	default:
	}
}
