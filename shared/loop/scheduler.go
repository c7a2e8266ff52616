package loop

import "time"

// Budget returns the frame budget for a target cadence in Hz.
func Budget(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

// Scheduler gates passes to a target cadence. The host calls Advance at every
// opportunity it gets; a pass runs only once more than one budget has elapsed
// since the last accepted pass. Late opportunities run a single pass, missed
// ticks are dropped rather than caught up.
type Scheduler struct {
	budget  time.Duration
	last    time.Duration
	passes  uint64
	stopped bool
}

func NewScheduler(hz float64) *Scheduler {
	return &Scheduler{budget: Budget(hz)}
}

func (s *Scheduler) Budget() time.Duration { return s.budget }

// SetCadence changes the target rate for later passes.
func (s *Scheduler) SetCadence(hz float64) {
	s.budget = Budget(hz)
}

// Advance runs pass if a tick is due at now and reports whether it did.
func (s *Scheduler) Advance(now time.Duration, pass func()) bool {
	if s.stopped || now-s.last <= s.budget {
		return false
	}
	s.last = now
	s.passes++
	pass()
	return true
}

// Stop halts all future passes.
func (s *Scheduler) Stop() { s.stopped = true }

func (s *Scheduler) Stopped() bool { return s.stopped }

// Passes counts accepted ticks.
func (s *Scheduler) Passes() uint64 { return s.passes }
