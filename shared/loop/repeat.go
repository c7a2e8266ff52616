package loop

import "time"

// Repeat emulates keyboard auto-repeat for polled input: a key fires when it
// goes down, again once it has been held for Delay, then every Interval.
// Timing follows the clock, not the host's update rate.
type Repeat struct {
	Delay    time.Duration
	Interval time.Duration
}

// Fire reports whether a held key emits a key-down at now. justPressed marks
// the first update the key is down; next is the deadline returned by the
// previous call for this key. Missed repeats after a stall are dropped.
func (r Repeat) Fire(now, next time.Duration, justPressed bool) (bool, time.Duration) {
	switch {
	case justPressed:
		return true, now + r.Delay
	case r.Interval <= 0 || now < next:
		return false, next
	}
	next += r.Interval
	if next <= now {
		next = now + r.Interval
	}
	return true, next
}
