package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/curverace/internal/audio"
	"github.com/san-kum/curverace/internal/config"
	"github.com/san-kum/curverace/internal/engine"
	"github.com/san-kum/curverace/internal/render"
)

const (
	historyCapacity = 600
	parameterStep   = 0.05
	speedFactor     = 1.25
)

// TickMsg drives one animation frame. Gen is the scheduling generation:
// every lifecycle transition bumps it, so a tick armed before a pause
// or reset arrives stale and is dropped without touching state.
type TickMsg struct {
	At  time.Time
	Gen int
}

// Model is the live race view. All simulation state lives in the
// controller; the model owns only presentation concerns.
type Model struct {
	ctrl     *engine.Controller
	renderer *render.Renderer
	canvas   *render.Canvas
	chimes   *audio.Chimes

	fps   int
	gen   int
	frame engine.Frame

	leaderHist []float64
	finished   map[string]bool

	recording bool
	rec       *recorder
	showHelp  bool
}

func NewModel(cfg *config.Config, ctrl *engine.Controller, chimes *audio.Chimes) Model {
	SetTheme(cfg.Theme)
	return Model{
		ctrl:       ctrl,
		renderer:   render.NewRenderer(),
		canvas:     render.NewCanvas(cfg.Width, cfg.Height),
		chimes:     chimes,
		fps:        cfg.FPS,
		frame:      ctrl.Snapshot(),
		leaderHist: make([]float64, 0, historyCapacity),
		finished:   make(map[string]bool),
	}
}

// Init schedules nothing: idle views are static and the frame loop only
// arms itself once the race starts.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.chimes != nil && m.chimes.Active() {
			m.chimes.Stop()
		}
		return m, tea.Quit

	case " ":
		switch m.frame.Phase {
		case engine.PhaseRunning:
			m.ctrl.Pause()
			m.gen++
			m.frame = m.ctrl.Snapshot()
			return m, nil
		case engine.PhasePaused:
			m.ctrl.Resume()
			m.gen++
			m.frame = m.ctrl.Snapshot()
			return m, m.tick()
		default:
			if m.ctrl.Start() {
				m.gen++
				m.leaderHist = m.leaderHist[:0]
				m.finished = make(map[string]bool)
				m.frame = m.ctrl.Snapshot()
				return m, m.tick()
			}
		}

	case "r":
		m.ctrl.Reset()
		m.gen++
		m.leaderHist = m.leaderHist[:0]
		m.finished = make(map[string]bool)
		m.frame = m.ctrl.Snapshot()

	case "+", "=":
		m.ctrl.SetSpeed(m.ctrl.Speed() * speedFactor)
	case "-", "_":
		m.ctrl.SetSpeed(m.ctrl.Speed() / speedFactor)

	case "up", "k":
		m.adjustParameter(parameterStep)
	case "down", "j":
		m.adjustParameter(-parameterStep)

	case "t":
		NextTheme()

	case "g":
		if m.recording {
			m.rec.save("race.gif")
			m.recording = false
			m.rec = nil
		} else {
			m.recording = true
			m.rec = newRecorder()
		}

	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// adjustParameter nudges the weighted cycloid shape. The controller
// rejects the change mid-run; the UI clamp keeps the value in [0,1].
func (m *Model) adjustParameter(delta float64) {
	p := m.ctrl.Parameter() + delta
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	if m.ctrl.SetParameter(p) {
		m.frame = m.ctrl.Snapshot()
	}
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		// Cancelled generation; a pause or reset beat this tick.
		return m, nil
	}
	if m.ctrl.Phase() != engine.PhaseRunning {
		return m, nil
	}

	m.frame = m.ctrl.Step(msg.At)
	m.observeFrame()

	if m.recording {
		m.renderer.RenderFrame(m.canvas, m.ctrl.Set(), m.frame)
		m.rec.capture(m.canvas)
	}

	if m.frame.Phase != engine.PhaseRunning {
		// Completed on this frame: render it, stop scheduling.
		m.gen++
		return m, nil
	}
	return m, m.tick()
}

// observeFrame feeds the side-panel chart and fires finish chimes.
func (m *Model) observeFrame() {
	if len(m.frame.Ranking) > 0 {
		m.leaderHist = append(m.leaderHist, m.frame.Ranking[0].Progress)
		if len(m.leaderHist) > historyCapacity {
			m.leaderHist = m.leaderHist[1:]
		}
	}

	for _, e := range m.frame.Ranking {
		if e.Progress >= 1 && !m.finished[e.Name] {
			m.finished[e.Name] = true
			if m.chimes != nil && m.chimes.Active() {
				m.chimes.Trigger(e.Rank)
			}
		}
	}
}

func (m Model) View() string {
	m.renderer.RenderFrame(m.canvas, m.ctrl.Set(), m.frame)
	canvasView := canvasStyle().Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle().Render("CURVE RACE") + "\n")

	running := m.frame.Phase == engine.PhaseRunning
	status := strings.ToUpper(m.frame.Phase.String())
	if m.recording {
		status += " ●REC"
	}
	s.WriteString(statusStyle(running).Render(status) + "\n\n")

	s.WriteString(labelStyle().Render("Time") + valueStyle().Render(fmt.Sprintf("%.2fs", m.frame.Elapsed)) + "\n")
	s.WriteString(labelStyle().Render("Speed") + valueStyle().Render(fmt.Sprintf("%.2fx", m.frame.Speed)) + "\n")
	s.WriteString(labelStyle().Render("Shape") + valueStyle().Render(parameterBar(m.ctrl.Parameter())) + "\n")

	s.WriteString("\nRANKING\n")
	if len(m.frame.Ranking) == 0 {
		s.WriteString(labelStyle().Render("  (press space to start)") + "\n")
	} else {
		colors := make(map[string]string, len(m.frame.Samples))
		for _, smp := range m.frame.Samples {
			colors[smp.Name] = smp.Color
		}
		for _, e := range m.frame.Ranking {
			name := lipgloss.NewStyle().
				Foreground(lipgloss.Color(colors[e.Name])).
				Width(17).
				Render(e.Name)
			row := fmt.Sprintf("%s %d. %s %5.2fs %s",
				TransitionArrow(e.Transition), e.Rank+1, name, e.Time, ProgressBar(e.Progress, 10))
			s.WriteString(row + "\n")
		}
	}

	if len(m.leaderHist) > 1 {
		chart := asciigraph.Plot(m.leaderHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("leader progress"))
		s.WriteString(graphStyle().Render(chart) + "\n")
	}

	s.WriteString(helpStyle().Render("\n─────────────────────\nSP:Start/Pause R:Reset Q:Quit\nT:Theme G:Record ?:Help\n↑↓:Shape +-:Speed"))

	panel := panelStyle().Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func parameterBar(p float64) string {
	const width = 10
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %.2f", strings.Repeat("=", filled), strings.Repeat("-", width-filled), p)
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start / pause / resume   ║
║  R        - Reset race               ║
║  Q        - Quit                     ║
║  +/-      - Speed multiplier         ║
║  Up/K     - Weighted cycloid +0.05   ║
║  Down/J   - Weighted cycloid -0.05   ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
