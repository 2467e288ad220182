// Package export renders race snapshots to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/curverace/internal/curve"
	"github.com/san-kum/curverace/internal/engine"
	"github.com/san-kum/curverace/internal/render"
)

const pathSamples = 100

// CanvasToSVG converts the dot raster to an SVG dot field, one circle
// per lit dot.
func CanvasToSVG(c *render.Canvas, scale float64) string {
	if c == nil {
		return ""
	}

	width := float64(c.DotWidth()) * scale
	height := float64(c.DotHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	radius := scale * 0.4
	for y := 0; y < c.DotHeight(); y++ {
		for x := 0; x < c.DotWidth(); x++ {
			if !c.DotSet(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
				float64(x)*scale+scale/2, float64(y)*scale+scale/2, radius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// FrameToSVG renders a frame as smooth vector paths with per-curve
// colors and a marker circle at each position, independent of the dot
// raster.
func FrameToSVG(set *curve.Set, frame engine.Frame, width, height int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	project := func(p curve.Point) (float64, float64) {
		return p.X * float64(width), (1 - p.Y) * float64(height)
	}

	for _, cv := range set.Curves() {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, cv.Color))
		for i := 0; i <= pathSamples; i++ {
			x, y := project(cv.Position(float64(i) / pathSamples))
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for i, cv := range set.Curves() {
		progress := 0.0
		if frame.Phase == engine.PhaseRunning && i < len(frame.Samples) {
			progress = frame.Samples[i].Progress
		}
		x, y := project(cv.Position(progress))
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"%s\"/>\n", x, y, cv.Color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
