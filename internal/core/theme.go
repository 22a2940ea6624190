package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clinicflow/internal/clinic"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorWarning  lipgloss.Color = "#f9e2af"
	colorError    lipgloss.Color = "#f38ba8"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorOverlay  lipgloss.Color = "#7f849c"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

// CategoryColor is the foreground colour for a presentation category.
func CategoryColor(c clinic.Category) lipgloss.Color {
	switch c {
	case clinic.CategorySuccess:
		return colorSuccess
	case clinic.CategoryWarning:
		return colorWarning
	case clinic.CategoryDanger:
		return colorError
	case clinic.CategoryInfo:
		return colorAccent
	case clinic.CategoryAccent:
		return colorMauve
	case clinic.CategoryMuted:
		return colorOverlay
	default:
		return colorMuted
	}
}

// CategoryStyle renders text in the category's colour.
func CategoryStyle(c clinic.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c))
}

// Badge renders a bold bracketed label in the category's colour.
func Badge(text string, c clinic.Category) string {
	return CategoryStyle(c).Bold(true).Render("[" + text + "]")
}

// Muted renders secondary text.
func Muted(text string) string {
	return helpDescStyle.Render(text)
}

// Strong renders emphasised text.
func Strong(text string) string {
	return strongStyle.Render(text)
}
