package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is a horizontal fill gauge. Percent is clamped to 0..100.
type Bar struct {
	Percent float64
	Fill    lipgloss.TerminalColor
}

func (b Bar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	pct := min(max(b.Percent, 0), 100)
	filled := int(pct / 100 * float64(width))
	if pct > 0 && filled == 0 {
		filled = 1
	}
	fill := lipgloss.NewStyle()
	if b.Fill != nil {
		fill = fill.Foreground(b.Fill)
	}
	track := lipgloss.NewStyle().Foreground(paneBorderColor)
	return fill.Render(strings.Repeat("█", filled)) + track.Render(strings.Repeat("░", width-filled))
}
