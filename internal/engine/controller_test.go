package engine

import (
	"math"
	"testing"

	"github.com/san-kum/curverace/internal/curve"
	"github.com/san-kum/curverace/internal/rank"
)

func sampleByName(f Frame, name string) Sample {
	for _, s := range f.Samples {
		if s.Name == name {
			return s
		}
	}
	return Sample{}
}

func TestControllerTransitions(t *testing.T) {
	c := NewController(0)

	if c.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %s, want idle", c.Phase())
	}

	if !c.Start() {
		t.Fatal("Start from idle rejected")
	}
	if c.Phase() != PhaseRunning {
		t.Fatalf("phase after Start = %s", c.Phase())
	}
	if c.Start() {
		t.Error("Start while running should be rejected")
	}
	if c.Resume() {
		t.Error("Resume while running should be rejected")
	}

	if !c.Pause() {
		t.Fatal("Pause while running rejected")
	}
	if c.Phase() != PhasePaused {
		t.Fatalf("phase after Pause = %s", c.Phase())
	}
	if c.Pause() {
		t.Error("Pause while paused should be rejected")
	}
	if c.Start() {
		t.Error("Start while paused should be rejected")
	}

	if !c.Resume() {
		t.Fatal("Resume while paused rejected")
	}
	if c.Phase() != PhaseRunning {
		t.Fatalf("phase after Resume = %s", c.Phase())
	}

	c.Reset()
	if c.Phase() != PhaseIdle {
		t.Fatalf("phase after Reset = %s", c.Phase())
	}
}

func TestControllerRaceScenario(t *testing.T) {
	c := NewController(0)
	c.Start()

	c.Step(at(0))
	frame := c.Step(at(2000)) // 2.0 simulated seconds at speed 1

	brach := sampleByName(frame, curve.Brachistochrone)
	if brach.Progress != 1.0 {
		t.Errorf("brachistochrone progress = %f, want 1.0", brach.Progress)
	}
	line := sampleByName(frame, curve.StraightLine)
	if math.Abs(line.Progress-0.8) > 1e-9 {
		t.Errorf("straight line progress = %f, want 0.8", line.Progress)
	}

	// Brachistochrone and weighted cycloid tie at progress 1.0; the
	// brachistochrone precedes in registry order, so the stable sort
	// ranks it first.
	if frame.Ranking[0].Name != curve.Brachistochrone {
		t.Errorf("rank 0 = %s, want brachistochrone", frame.Ranking[0].Name)
	}
	if frame.Ranking[len(frame.Ranking)-1].Name != curve.StraightLine {
		t.Errorf("last rank = %s, want straight line", frame.Ranking[len(frame.Ranking)-1].Name)
	}
}

func TestControllerCompletion(t *testing.T) {
	c := NewController(0)
	c.Start()
	c.Step(at(0))

	// Past the slowest curve (straight line, 2.5s) with overshoot.
	frame := c.Step(at(2700))
	if frame.Phase != PhaseComplete {
		t.Fatalf("phase = %s, want complete", frame.Phase)
	}

	// Displayed times freeze at nominal durations despite the 2.7s of
	// elapsed simulated time.
	wants := map[string]float64{
		curve.StraightLine:    2.5,
		curve.Parabola:        2.2,
		curve.Brachistochrone: 2.0,
		curve.WeightedCycloid: 2.0,
	}
	for name, want := range wants {
		s := sampleByName(frame, name)
		if math.Abs(s.Time-want) > 1e-9 {
			t.Errorf("%s display time = %f, want %f", name, s.Time, want)
		}
		if s.Progress != 1.0 {
			t.Errorf("%s progress = %f, want 1.0", name, s.Progress)
		}
	}

	// A stale tick after completion mutates nothing.
	again := c.Step(at(5000))
	if again.Phase != PhaseComplete {
		t.Errorf("stale tick changed phase to %s", again.Phase)
	}
	if math.Abs(again.Elapsed-frame.Elapsed) > 1e-9 {
		t.Errorf("stale tick advanced time: %f -> %f", frame.Elapsed, again.Elapsed)
	}
}

func TestControllerRestartAfterComplete(t *testing.T) {
	c := NewController(0)
	c.Start()
	c.Step(at(0))
	c.Step(at(3000))

	if !c.Start() {
		t.Fatal("Start from complete rejected")
	}
	frame := c.Step(at(4000)) // baseline frame of the new run
	if frame.Elapsed != 0 {
		t.Errorf("elapsed after restart = %f, want 0", frame.Elapsed)
	}
	for _, e := range frame.Ranking {
		if e.Transition != rank.None {
			t.Errorf("%s carries transition %s into a fresh run", e.Name, e.Transition)
		}
	}
}

func TestControllerResetClearsEverything(t *testing.T) {
	c := NewController(0)
	c.Start()
	c.Step(at(0))
	c.Step(at(3000)) // completes

	c.Reset()
	frame := c.Snapshot()
	if frame.Phase != PhaseIdle {
		t.Errorf("phase = %s, want idle", frame.Phase)
	}
	if frame.Elapsed != 0 {
		t.Errorf("elapsed = %f, want 0", frame.Elapsed)
	}
	if len(frame.Ranking) != 0 {
		t.Errorf("ranking not cleared: %d entries", len(frame.Ranking))
	}
	for _, s := range frame.Samples {
		if s.Progress != 0 || s.Time != 0 {
			t.Errorf("%s not reset: progress %f, time %f", s.Name, s.Progress, s.Time)
		}
	}
}

func TestControllerParameterGating(t *testing.T) {
	c := NewController(0)

	if !c.SetParameter(0.5) {
		t.Fatal("SetParameter while idle rejected")
	}
	d, _ := c.Set().Duration(curve.WeightedCycloid)
	if math.Abs(d-3.0) > 1e-9 {
		t.Errorf("weighted duration = %f, want 3.0", d)
	}

	c.Start()
	if c.SetParameter(1.0) {
		t.Error("SetParameter while running should be rejected")
	}
	c.Pause()
	if c.SetParameter(1.0) {
		t.Error("SetParameter while paused should be rejected")
	}
	c.Resume()

	d, _ = c.Set().Duration(curve.WeightedCycloid)
	if math.Abs(d-3.0) > 1e-9 {
		t.Errorf("duration changed mid-run: %f", d)
	}

	c.Reset()
	if !c.SetParameter(0) {
		t.Error("SetParameter after reset rejected")
	}
}

func TestControllerPauseFreezesFrame(t *testing.T) {
	c := NewController(0)
	c.Start()
	c.Step(at(0))
	running := c.Step(at(1000))
	c.Pause()

	frozen := c.Step(at(2000))
	if frozen.Phase != PhasePaused {
		t.Fatalf("phase = %s, want paused", frozen.Phase)
	}
	if math.Abs(frozen.Elapsed-running.Elapsed) > 1e-9 {
		t.Errorf("paused step advanced time: %f -> %f", running.Elapsed, frozen.Elapsed)
	}

	c.Resume()
	c.Step(at(10000)) // baseline only
	resumed := c.Step(at(10500))
	if math.Abs(resumed.Elapsed-1.5) > 1e-9 {
		t.Errorf("elapsed after resume = %f, want 1.5", resumed.Elapsed)
	}
}

func TestControllerSpeed(t *testing.T) {
	c := NewController(0)
	if c.SetSpeed(0) || c.SetSpeed(-2) {
		t.Error("non-positive speed accepted")
	}
	if !c.SetSpeed(4) {
		t.Fatal("SetSpeed(4) rejected")
	}

	c.Start()
	c.Step(at(0))
	frame := c.Step(at(500)) // 0.5s wall at 4x
	if math.Abs(frame.Elapsed-2.0) > 1e-9 {
		t.Errorf("elapsed = %f, want 2.0", frame.Elapsed)
	}
}
