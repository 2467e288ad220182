// Package gui is the raylib pixel frontend for curve races. It drives
// the same engine controller as the TUI, drawing paths and markers on a
// real raster at display refresh.
package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/curverace/internal/audio"
	"github.com/san-kum/curverace/internal/config"
	"github.com/san-kum/curverace/internal/curve"
	"github.com/san-kum/curverace/internal/engine"
	"github.com/san-kum/curverace/internal/rank"
)

const (
	windowW = 960
	windowH = 620

	plotX = 40
	plotY = 40
	plotW = 560
	plotH = 540

	sidebarX = 640

	pathSegments = 100
)

var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colGrid    = rl.NewColor(30, 30, 30, 255)
	colAxis    = rl.NewColor(90, 90, 90, 255)
	colText    = rl.NewColor(200, 200, 200, 255)
	colTextDim = rl.NewColor(110, 110, 110, 255)
	colUp      = rl.NewColor(0, 220, 120, 255)
	colDown    = rl.NewColor(230, 70, 70, 255)
)

type App struct {
	ctrl     *engine.Controller
	chimes   *audio.Chimes
	param    float64
	finished map[string]bool
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, chimes *audio.Chimes) {
	app := &App{
		ctrl:     engine.NewController(cfg.Parameter),
		chimes:   chimes,
		param:    cfg.Parameter,
		finished: make(map[string]bool),
	}
	app.ctrl.SetSpeed(cfg.Speed)

	rl.InitWindow(windowW, windowH, "curverace")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	for !rl.WindowShouldClose() {
		app.handleInput()

		var frame engine.Frame
		if app.ctrl.Phase() == engine.PhaseRunning {
			frame = app.ctrl.Step(time.Now())
			app.observe(frame)
		} else {
			frame = app.ctrl.Snapshot()
		}

		rl.BeginDrawing()
		app.draw(frame)
		rl.EndDrawing()
	}
}

func (a *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		switch a.ctrl.Phase() {
		case engine.PhaseRunning:
			a.ctrl.Pause()
		case engine.PhasePaused:
			a.ctrl.Resume()
		default:
			a.finished = make(map[string]bool)
			a.ctrl.Start()
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.finished = make(map[string]bool)
		a.ctrl.Reset()
	case rl.IsKeyPressed(rl.KeyUp):
		a.adjustParameter(0.05)
	case rl.IsKeyPressed(rl.KeyDown):
		a.adjustParameter(-0.05)
	case rl.IsKeyPressed(rl.KeyEqual):
		a.ctrl.SetSpeed(a.ctrl.Speed() * 1.25)
	case rl.IsKeyPressed(rl.KeyMinus):
		a.ctrl.SetSpeed(a.ctrl.Speed() / 1.25)
	}
}

func (a *App) adjustParameter(delta float64) {
	p := a.param + delta
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	if a.ctrl.SetParameter(p) {
		a.param = p
	}
}

func (a *App) observe(frame engine.Frame) {
	for _, e := range frame.Ranking {
		if e.Progress >= 1 && !a.finished[e.Name] {
			a.finished[e.Name] = true
			if a.chimes != nil && a.chimes.Active() {
				a.chimes.Trigger(e.Rank)
			}
		}
	}
}

// project maps a unit-square point into the plot rectangle, y up.
func project(p curve.Point) rl.Vector2 {
	return rl.NewVector2(
		float32(plotX+p.X*plotW),
		float32(plotY+(1-p.Y)*plotH),
	)
}

func (a *App) draw(frame engine.Frame) {
	rl.ClearBackground(colBg)
	a.drawPlot(frame)
	a.drawSidebar(frame)
}

func (a *App) drawPlot(frame engine.Frame) {
	for i := 1; i < 4; i++ {
		f := float32(i) * 0.25
		x := float32(plotX) + f*plotW
		y := float32(plotY) + f*plotH
		rl.DrawLineV(rl.NewVector2(x, plotY), rl.NewVector2(x, plotY+plotH), colGrid)
		rl.DrawLineV(rl.NewVector2(plotX, y), rl.NewVector2(plotX+plotW, y), colGrid)
	}
	rl.DrawLineV(rl.NewVector2(plotX, plotY), rl.NewVector2(plotX, plotY+plotH), colAxis)
	rl.DrawLineV(rl.NewVector2(plotX, plotY+plotH), rl.NewVector2(plotX+plotW, plotY+plotH), colAxis)
	rl.DrawText("1", plotX-18, plotY-6, 16, colTextDim)
	rl.DrawText("0", plotX-18, plotY+plotH-8, 16, colTextDim)
	rl.DrawText("1", plotX+plotW-4, plotY+plotH+8, 16, colTextDim)

	curves := a.ctrl.Set().Curves()
	for _, cv := range curves {
		col := hexColor(cv.Color)
		prev := project(cv.Position(0))
		for i := 1; i <= pathSegments; i++ {
			next := project(cv.Position(float64(i) / pathSegments))
			rl.DrawLineEx(prev, next, 2, col)
			prev = next
		}
	}

	for i, cv := range curves {
		progress := 0.0
		if frame.Phase == engine.PhaseRunning && i < len(frame.Samples) {
			progress = frame.Samples[i].Progress
		}
		pos := project(cv.Position(progress))
		rl.DrawCircleV(pos, 7, hexColor(cv.Color))
		rl.DrawCircleLinesV(pos, 9, colAxis)
	}
}

func (a *App) drawSidebar(frame engine.Frame) {
	y := int32(plotY)
	rl.DrawText("CURVE RACE", sidebarX, y, 24, colText)
	y += 36

	status := frame.Phase.String()
	rl.DrawText(status, sidebarX, y, 18, colTextDim)
	y += 30

	rl.DrawText(fmt.Sprintf("t = %.2fs   speed %.2fx", frame.Elapsed, frame.Speed), sidebarX, y, 18, colText)
	y += 26
	rl.DrawText(fmt.Sprintf("shape parameter %.2f", a.ctrl.Parameter()), sidebarX, y, 18, colText)
	y += 40

	rl.DrawText("RANKING", sidebarX, y, 18, colTextDim)
	y += 28

	if len(frame.Ranking) == 0 {
		rl.DrawText("press space to start", sidebarX, y, 18, colTextDim)
		y += 26
	}

	colors := make(map[string]string, len(frame.Samples))
	for _, s := range frame.Samples {
		colors[s.Name] = s.Color
	}
	for _, e := range frame.Ranking {
		arrow, arrowCol := " ", colTextDim
		switch e.Transition {
		case rank.Advanced:
			arrow, arrowCol = "^", colUp
		case rank.Declined:
			arrow, arrowCol = "v", colDown
		}
		rl.DrawText(arrow, sidebarX, y, 18, arrowCol)
		line := fmt.Sprintf("%d. %-17s %5.2fs", e.Rank+1, e.Name, e.Time)
		rl.DrawText(line, sidebarX+18, y, 18, hexColor(colors[e.Name]))

		barX := int32(sidebarX + 18)
		barY := y + 20
		rl.DrawRectangle(barX, barY, 240, 4, colGrid)
		rl.DrawRectangle(barX, barY, int32(240*e.Progress), 4, hexColor(colors[e.Name]))
		y += 34
	}

	rl.DrawText("space start/pause   r reset", sidebarX, windowH-70, 16, colTextDim)
	rl.DrawText("up/down shape   +/- speed", sidebarX, windowH-48, 16, colTextDim)
}

// hexColor parses "#rrggbb" into a raylib color.
func hexColor(hex string) rl.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return colText
	}
	return rl.NewColor(hexByte(hex[1:3]), hexByte(hex[3:5]), hexByte(hex[5:7]), 255)
}

func hexByte(s string) uint8 {
	var v int
	for _, c := range s {
		v *= 16
		switch {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		}
	}
	return uint8(v)
}
