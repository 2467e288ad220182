package render

import (
	"errors"
	"math"

	"github.com/san-kum/curverace/internal/curve"
	"github.com/san-kum/curverace/internal/engine"
)

// pathSegments is the fixed sampling resolution for curve paths. A
// hundred straight segments is visually smooth at terminal densities;
// the renderer is deliberately not adaptive.
const pathSegments = 100

const markerRadius = 1

var ErrNoSurface = errors.New("render: no surface")

// Renderer paints frames onto a Canvas. It holds no simulation state:
// every call takes a snapshot and produces dots, nothing else.
type Renderer struct {
	gridStep float64
}

func NewRenderer() *Renderer {
	return &Renderer{gridStep: 0.25}
}

// RenderFrame draws, in order: background, grid, labeled axes, every
// curve's full path, then one marker per curve. Markers track live
// progress only while the race is running; in any other phase they sit
// at the start position so a paused or idle screen never shows a stale
// mid-run point.
func (r *Renderer) RenderFrame(c *Canvas, set *curve.Set, frame engine.Frame) error {
	if c == nil {
		return ErrNoSurface
	}

	c.Clear()
	r.drawGrid(c)
	r.drawAxes(c)

	curves := set.Curves()
	for _, cv := range curves {
		r.drawPath(c, cv)
	}
	for i, cv := range curves {
		progress := 0.0
		if frame.Phase == engine.PhaseRunning && i < len(frame.Samples) {
			progress = clamp01(frame.Samples[i].Progress)
		}
		p := cv.Position(progress)
		x, y := r.project(c, p)
		c.Blob(x, y, markerRadius)
	}
	return nil
}

func (r *Renderer) drawGrid(c *Canvas) {
	w, h := c.DotWidth(), c.DotHeight()
	for f := r.gridStep; f < 1; f += r.gridStep {
		x := int(math.Round(f * float64(w-1)))
		for y := 0; y < h; y += 3 {
			c.Set(x, y)
		}
		y := int(math.Round(f * float64(h-1)))
		for x := 0; x < w; x += 3 {
			c.Set(x, y)
		}
	}
}

func (r *Renderer) drawAxes(c *Canvas) {
	w, h := c.DotWidth(), c.DotHeight()
	c.Line(0, 0, 0, h-1)
	c.Line(0, h-1, w-1, h-1)
	// Labels sit one cell in from the corners so start and finish
	// markers stay visible.
	c.Text(1, 0, "1")
	c.Text(1, c.Height()-1, "0")
	c.Text(c.Width()-2, c.Height()-1, "1")
}

func (r *Renderer) drawPath(c *Canvas, cv curve.Curve) {
	prev := cv.Position(0)
	px, py := r.project(c, prev)
	for i := 1; i <= pathSegments; i++ {
		p := cv.Position(float64(i) / pathSegments)
		x, y := r.project(c, p)
		c.Line(px, py, x, y)
		px, py = x, y
	}
}

// project maps a unit-square point to dot coordinates, flipping y so
// (0,1) is the top-left of the raster.
func (r *Renderer) project(c *Canvas, p curve.Point) (int, int) {
	x := int(math.Round(p.X * float64(c.DotWidth()-1)))
	y := int(math.Round((1 - p.Y) * float64(c.DotHeight()-1)))
	return x, y
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
