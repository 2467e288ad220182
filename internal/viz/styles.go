package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/curverace/internal/rank"
)

// Styles are built from CurrentTheme on demand so the theme key takes
// effect on the next frame without restyling machinery.

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Bold(true).MarginBottom(1)
}

func canvasStyle() lipgloss.Style {
	return lipgloss.NewStyle().Padding(1, 2)
}

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).
		Padding(1, 2).
		Width(44)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(11)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

func statusStyle(running bool) lipgloss.Style {
	if running {
		return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Warning).Bold(true)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).MarginTop(1)
}

func graphStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Padding(1, 0)
}

// TransitionArrow renders the rank movement hint for a ranking row.
func TransitionArrow(t rank.Transition) string {
	switch t {
	case rank.Advanced:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Render("▲")
	case rank.Declined:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render("▼")
	default:
		return " "
	}
}

// ProgressBar renders a colored completion bar, green near the finish.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := lipgloss.NewStyle().Foreground(CurrentTheme.Error)
	if percent >= 0.999 {
		style = lipgloss.NewStyle().Foreground(CurrentTheme.Success)
	} else if percent > 0.4 {
		style = lipgloss.NewStyle().Foreground(CurrentTheme.Warning)
	}
	return style.Render(bar)
}
