package engine

import "time"

const minSpeed = 0.01

// Clock accumulates simulated seconds from wall-clock deltas scaled by
// a speed multiplier. It does not assume a fixed frame rate: each
// Advance measures the actual gap since the previous one.
type Clock struct {
	elapsed  float64
	speed    float64
	last     time.Time
	baseline bool
	running  bool
}

func NewClock() *Clock {
	return &Clock{speed: 1.0}
}

// Advance folds the wall-clock delta since the previous call into the
// accumulated simulated time and returns the new total. The first call
// after a start or resume only records the baseline. While the clock is
// frozen, Advance is a pure read.
func (c *Clock) Advance(now time.Time) float64 {
	if !c.running {
		return c.elapsed
	}
	if !c.baseline {
		c.last = now
		c.baseline = true
		return c.elapsed
	}

	dt := now.Sub(c.last).Seconds()
	if dt < 0 {
		// Non-monotonic wall clock; time never runs backwards.
		dt = 0
	}
	c.elapsed += dt * c.speed
	c.last = now
	return c.elapsed
}

func (c *Clock) Elapsed() float64 { return c.elapsed }

func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed applies to subsequent deltas only; there is no retroactive
// rescaling. Multipliers at or below zero are rejected.
func (c *Clock) SetSpeed(multiplier float64) bool {
	if multiplier < minSpeed {
		return false
	}
	c.speed = multiplier
	return true
}

// Resume unfreezes the clock. The baseline is cleared so the next
// Advance measures from "now" instead of jumping over the gap.
func (c *Clock) Resume() {
	c.running = true
	c.baseline = false
}

// Freeze stops accumulation; Advance becomes a read until Resume.
func (c *Clock) Freeze() {
	c.running = false
}

func (c *Clock) Reset() {
	c.elapsed = 0
	c.baseline = false
	c.running = false
}
