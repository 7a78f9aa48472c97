package engine

import (
	"sync/atomic"
	"time"
)

// Clock abstracts wall time so tick, event and offline logic can be
// tested at exact instants.
type Clock interface {
	Now() time.Time
}

// RealClock is the production clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock is a manually driven clock for tests. It never advances on
// its own. Construct with NewFakeClock; the zero value starts at the
// Unix epoch.
type FakeClock struct {
	nanos atomic.Int64
}

func NewFakeClock(start time.Time) *FakeClock {
	c := &FakeClock{}
	c.nanos.Store(start.UnixNano())
	return c
}

func (c *FakeClock) Now() time.Time {
	return time.Unix(0, c.nanos.Load())
}

// Set jumps the clock to an absolute instant, backwards included.
func (c *FakeClock) Set(t time.Time) {
	c.nanos.Store(t.UnixNano())
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.nanos.Add(int64(d))
}
