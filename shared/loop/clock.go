// Package loop holds the frame pacing primitives: a monotonic clock, the
// fixed-cadence scheduler and the resize debouncer. Like shared/character it
// has no graphics dependency.
package loop

import "time"

// Clock reports monotonic time since some fixed origin.
type Clock interface {
	Now() time.Duration
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock backed by the runtime's monotonic reading.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration { return c.now }

func (c *ManualClock) Advance(d time.Duration) { c.now += d }

func (c *ManualClock) Set(now time.Duration) { c.now = now }
