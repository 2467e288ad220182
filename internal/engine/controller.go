// Package engine owns the race lifecycle: the simulation clock, the
// phase state machine, and the per-frame snapshot handed to renderers.
//
// All simulation state is mutated here and nowhere else. Frontends read
// frames passed by value and feed user input back through the
// transition methods.
package engine

import (
	"time"

	"github.com/san-kum/curverace/internal/curve"
	"github.com/san-kum/curverace/internal/rank"
)

// Sample is one curve's state within a frame, in registry order.
type Sample struct {
	Name     string
	Color    string
	Progress float64
	// Time is the display time: live elapsed while descending, frozen
	// to the nominal duration once the curve finishes.
	Time     float64
	Duration float64
}

// Frame is the immutable per-tick snapshot consumed by renderers and
// panels.
type Frame struct {
	Phase   Phase
	Elapsed float64
	Speed   float64
	Samples []Sample
	Ranking []rank.Entry
}

// Controller drives the animation. One frame callback runs at a time;
// while running the frontend re-arms the next tick after Step returns,
// and a stale tick that fires after pause or reset finds the phase
// changed and mutates nothing.
type Controller struct {
	set       *curve.Set
	clock     *Clock
	tracker   *rank.Tracker
	phase     Phase
	parameter float64
}

func NewController(parameter float64) *Controller {
	return &Controller{
		set:       curve.NewSet(parameter),
		clock:     NewClock(),
		tracker:   rank.NewTracker(),
		phase:     PhaseIdle,
		parameter: parameter,
	}
}

func (c *Controller) Set() *curve.Set { return c.set }

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Parameter() float64 { return c.parameter }

func (c *Controller) Speed() float64 { return c.clock.Speed() }

// SetSpeed takes effect on the next frame's delta. Non-positive
// multipliers are ignored.
func (c *Controller) SetSpeed(multiplier float64) bool {
	return c.clock.SetSpeed(multiplier)
}

// SetParameter reshapes the weighted cycloid. Rejected while a run is
// in flight (running or paused); the new value applies from the next
// Start. The [0,1] domain is enforced by the caller.
func (c *Controller) SetParameter(p float64) bool {
	if c.phase == PhaseRunning || c.phase == PhasePaused {
		return false
	}
	c.parameter = p
	c.set = curve.NewSet(p)
	return true
}

// Start begins a fresh run from idle or complete. Elapsed time, the
// completion flag, and ranking history are all cleared.
func (c *Controller) Start() bool {
	if c.phase == PhaseRunning || c.phase == PhasePaused {
		return false
	}
	c.clock.Reset()
	c.tracker.Reset()
	c.clock.Resume()
	c.phase = PhaseRunning
	return true
}

// Pause freezes accumulated time. Only valid while running.
func (c *Controller) Pause() bool {
	if c.phase != PhaseRunning {
		return false
	}
	c.clock.Freeze()
	c.phase = PhasePaused
	return true
}

// Resume continues a paused run. The clock re-baselines so the pause
// interval contributes exactly zero simulated time.
func (c *Controller) Resume() bool {
	if c.phase != PhasePaused {
		return false
	}
	c.clock.Resume()
	c.phase = PhaseRunning
	return true
}

// Reset returns to idle from any phase, zeroing time and rankings.
func (c *Controller) Reset() {
	c.clock.Reset()
	c.tracker.Reset()
	c.phase = PhaseIdle
}

// Step advances the simulation by the wall-clock delta and returns the
// frame to render. When the phase is not running it degrades to
// Snapshot: no time advances and no ranking history is written.
func (c *Controller) Step(now time.Time) Frame {
	if c.phase != PhaseRunning {
		return c.Snapshot()
	}

	elapsed := c.clock.Advance(now)
	if elapsed >= c.set.MaxDuration() {
		c.phase = PhaseComplete
		c.clock.Freeze()
	}

	samples := c.samples(elapsed)
	ranking := c.tracker.Update(toRankSamples(samples))
	return Frame{
		Phase:   c.phase,
		Elapsed: elapsed,
		Speed:   c.clock.Speed(),
		Samples: samples,
		Ranking: ranking,
	}
}

// Snapshot builds the current frame without mutating anything. Used
// for one-off static renders on state changes while not running.
func (c *Controller) Snapshot() Frame {
	elapsed := c.clock.Elapsed()
	return Frame{
		Phase:   c.phase,
		Elapsed: elapsed,
		Speed:   c.clock.Speed(),
		Samples: c.samples(elapsed),
		Ranking: c.tracker.Entries(),
	}
}

func (c *Controller) samples(elapsed float64) []Sample {
	curves := c.set.Curves()
	samples := make([]Sample, len(curves))
	for i, cv := range curves {
		progress := elapsed / cv.Duration
		if progress > 1 {
			progress = 1
		}
		display := elapsed
		if display > cv.Duration {
			display = cv.Duration
		}
		samples[i] = Sample{
			Name:     cv.Name,
			Color:    cv.Color,
			Progress: progress,
			Time:     display,
			Duration: cv.Duration,
		}
	}
	return samples
}

func toRankSamples(samples []Sample) []rank.Sample {
	rs := make([]rank.Sample, len(samples))
	for i, s := range samples {
		rs[i] = rank.Sample{Name: s.Name, Progress: s.Progress, Time: s.Time}
	}
	return rs
}
