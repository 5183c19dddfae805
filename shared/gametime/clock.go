package gametime

// FixedStep is a Clock that advances by a constant step per tick.
type FixedStep struct {
	step  float64
	now   float64
	frame uint64
}

// NewFixedStep returns a clock that advances 1/tps seconds per tick.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return &FixedStep{step: 1 / float64(tps)}
}

// FrameTime implements Clock.
func (c *FixedStep) FrameTime() float64 {
	return c.step
}

// Time implements Clock.
func (c *FixedStep) Time() float64 {
	return c.now
}

// Frame is the number of completed ticks.
func (c *FixedStep) Frame() uint64 {
	return c.frame
}

// Tick advances the clock by one step and runs fn with the step length.
func (c *FixedStep) Tick(fn func(dt float64)) {
	c.now += c.step
	c.frame++
	if fn != nil {
		fn(c.step)
	}
}

// ManualClock is a Clock whose time is set by the caller.
type ManualClock struct {
	Step float64
	Now  float64
}

// FrameTime implements Clock.
func (c *ManualClock) FrameTime() float64 {
	return c.Step
}

// Time implements Clock.
func (c *ManualClock) Time() float64 {
	return c.Now
}

// Advance moves the clock forward by one step.
func (c *ManualClock) Advance() {
	c.Now += c.Step
}
