package loop

import "time"

// Size is a viewport extent in pixels.
type Size struct {
	Width  int
	Height int
}

// Debouncer coalesces a burst of size changes into one, delivered after the
// size has stayed unchanged for the quiet period.
type Debouncer struct {
	quiet    time.Duration
	applied  Size
	pending  Size
	deadline time.Duration
	armed    bool
}

// NewDebouncer starts from the size already in effect.
func NewDebouncer(quiet time.Duration, initial Size) *Debouncer {
	return &Debouncer{quiet: quiet, applied: initial, pending: initial}
}

// Notify records the size observed at now. Repeating the pending size does
// not extend the deadline.
func (d *Debouncer) Notify(now time.Duration, size Size) {
	if size == d.pending && (d.armed || size == d.applied) {
		return
	}
	d.pending = size
	if size == d.applied {
		d.armed = false
		return
	}
	d.deadline = now + d.quiet
	d.armed = true
}

// Poll returns the settled size once the quiet period has passed.
func (d *Debouncer) Poll(now time.Duration) (Size, bool) {
	if !d.armed || now < d.deadline {
		return Size{}, false
	}
	d.armed = false
	d.applied = d.pending
	return d.applied, true
}

// SetQuiet changes the quiet period for later notifications. A resize already
// pending keeps its deadline.
func (d *Debouncer) SetQuiet(quiet time.Duration) { d.quiet = quiet }
