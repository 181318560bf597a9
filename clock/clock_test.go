package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Lapwatch/clock"
	"Lapwatch/clock/testutil"
)

func TestRealIsMonotonic(t *testing.T) {
	c := clock.NewReal()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	assert.GreaterOrEqual(t, a, time.Duration(0))
	assert.Greater(t, b, a)
}

func TestRealTickerTicks(t *testing.T) {
	tk := clock.NewReal().NewTicker(time.Millisecond)
	defer tk.Stop()
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("real ticker never fired")
	}
}

func TestFakeClockAdvanceFiresLiveTickers(t *testing.T) {
	c := new(testutil.FakeClock)
	live := c.NewTicker(time.Millisecond)
	stopped := c.NewTicker(time.Millisecond)
	stopped.Stop()
	assert.Equal(t, 1, c.Tickers())

	c.Advance(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, c.Now())

	select {
	case <-live.C():
	default:
		t.Fatal("live ticker did not fire")
	}
	select {
	case <-stopped.C():
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFakeClockSetDoesNotTick(t *testing.T) {
	c := new(testutil.FakeClock)
	tk := c.NewTicker(time.Millisecond)
	c.Set(time.Hour)
	assert.Equal(t, time.Hour, c.Now())
	select {
	case <-tk.C():
		t.Fatal("Set fired a tick")
	default:
	}
}
