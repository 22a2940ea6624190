package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerSubStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	avatarStyle = lipgloss.NewStyle().
			Background(colorMauve).
			Foreground(colorMantle).
			Bold(true).
			Padding(0, 1)

	activeNavStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(colorTabOff)

	panelTitleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	panelSubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	strongStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
)
