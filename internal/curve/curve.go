// Package curve provides the registry of descent curves raced by the
// engine.
//
// Each curve maps a normalized progress value in [0,1] to a point in
// the unit square, descending from (0,1) to (1,0), and carries a fixed
// nominal completion duration. The weighted cycloid is the one tunable
// variant: its duration and shape depend on a parameter in [0,1] and it
// collapses to the plain brachistochrone at parameter 0.
package curve

import (
	"fmt"
	"math"
)

type Point struct {
	X, Y float64
}

// PositionFunc maps progress in [0,1] to a point in the unit square.
// Callers clamp progress; functions are total over the closed domain.
type PositionFunc func(s float64) Point

type Curve struct {
	Name     string
	Color    string // hex, shared by TUI and GUI frontends
	Duration float64
	Position PositionFunc
}

const (
	StraightLine    = "Straight Line"
	Parabola        = "Parabola"
	Brachistochrone = "Brachistochrone"
	WeightedCycloid = "Weighted Cycloid"
)

const (
	lineDuration     = 2.5
	parabolaDuration = 2.2
	cycloidDuration  = 2.0
	weightedBase     = 2.0
	weightedSagDepth = 0.15
)

// Set is an ordered registry of curves. Registry order is significant:
// it is the tie-break order for ranking.
type Set struct {
	curves []Curve
	byName map[string]int
}

// NewSet builds the default registry. The parameter shapes the weighted
// cycloid; values outside [0,1] are undefined behavior and the set does
// not validate them.
func NewSet(parameter float64) *Set {
	curves := []Curve{
		{
			Name:     StraightLine,
			Color:    "#ff6b6b",
			Duration: lineDuration,
			Position: linePosition,
		},
		{
			Name:     Parabola,
			Color:    "#feca57",
			Duration: parabolaDuration,
			Position: parabolaPosition,
		},
		{
			Name:     Brachistochrone,
			Color:    "#00ff88",
			Duration: cycloidDuration,
			Position: cycloidPosition,
		},
		{
			Name:     WeightedCycloid,
			Color:    "#00ccff",
			Duration: weightedBase * (1 + parameter),
			Position: weightedCycloidPosition(parameter),
		},
	}

	s := &Set{
		curves: curves,
		byName: make(map[string]int, len(curves)),
	}
	for i, c := range s.curves {
		s.byName[c.Name] = i
	}
	return s
}

// Curves returns the registry in order. The slice is shared; callers
// must not modify it.
func (s *Set) Curves() []Curve { return s.curves }

func (s *Set) Names() []string {
	names := make([]string, len(s.curves))
	for i, c := range s.curves {
		names[i] = c.Name
	}
	return names
}

func (s *Set) Get(name string) (Curve, error) {
	i, ok := s.byName[name]
	if !ok {
		return Curve{}, fmt.Errorf("unknown curve: %s", name)
	}
	return s.curves[i], nil
}

// Evaluate returns the position of a curve at the given progress.
func (s *Set) Evaluate(name string, progress float64) (Point, error) {
	c, err := s.Get(name)
	if err != nil {
		return Point{}, err
	}
	return c.Position(progress), nil
}

func (s *Set) Duration(name string) (float64, error) {
	c, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	return c.Duration, nil
}

// MaxDuration is the completion threshold for a race: once elapsed time
// reaches it, every curve has finished.
func (s *Set) MaxDuration() float64 {
	max := 0.0
	for _, c := range s.curves {
		if c.Duration > max {
			max = c.Duration
		}
	}
	return max
}

func linePosition(s float64) Point {
	return Point{X: s, Y: 1 - s}
}

func parabolaPosition(s float64) Point {
	return Point{X: s, Y: (1 - s) * (1 - s)}
}

// cycloidPosition is the brachistochrone arc normalized to the unit
// square: theta sweeps [0, pi] and both coordinates are rescaled so the
// endpoints land exactly on (0,1) and (1,0).
func cycloidPosition(s float64) Point {
	theta := s * math.Pi
	x := (theta - math.Sin(theta)) / math.Pi
	y := 1 - (1-math.Cos(theta))/2
	return Point{X: x, Y: y}
}

// weightedCycloidPosition blends the cycloid with a parameter-weighted
// vertical sag. The sin(pi*s) factor pins both endpoints for every
// parameter value.
func weightedCycloidPosition(parameter float64) PositionFunc {
	return func(s float64) Point {
		p := cycloidPosition(s)
		p.Y -= parameter * weightedSagDepth * math.Sin(math.Pi*s)
		return p
	}
}
