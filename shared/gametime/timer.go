// Package gametime provides the polled timers and clocks that drive the
// simulation at a fixed step.
package gametime

// Clock reports simulated time.
type Clock interface {
	// FrameTime is the length of the current step in seconds.
	FrameTime() float64
	// Time is the simulated time in seconds since start.
	Time() float64
}

// EventTimer fires once per Period. It is polled rather than scheduled.
type EventTimer struct {
	Period float64
	next   float64
	primed bool
}

// NewEventTimer returns a timer that first fires one period after its first poll.
func NewEventTimer(period float64) *EventTimer {
	return &EventTimer{Period: period}
}

// Triggered reports whether a period has elapsed at time now and, if so,
// starts the next period.
func (t *EventTimer) Triggered(now float64) bool {
	if !t.primed {
		t.primed = true
		t.next = now + t.Period
		return false
	}
	if now < t.next {
		return false
	}
	t.next = now + t.Period
	return true
}

// Ready reports whether the timer would fire at now, without consuming it.
func (t *EventTimer) Ready(now float64) bool {
	return !t.primed || now >= t.next
}

// Fire consumes the timer at now regardless of its state.
func (t *EventTimer) Fire(now float64) {
	t.primed = true
	t.next = now + t.Period
}

// Countdown is a one-shot timer measured in seconds remaining.
type Countdown struct {
	Remaining float64
}

// Start arms the countdown.
func (c *Countdown) Start(d float64) {
	c.Remaining = d
}

// Active reports whether time remains.
func (c *Countdown) Active() bool {
	return c.Remaining > 0
}

// Tick advances the countdown and reports whether it expired on this tick.
func (c *Countdown) Tick(dt float64) bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining -= dt
	return c.Remaining <= 0
}
