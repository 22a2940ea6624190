package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorderColor   = lipgloss.Color("#6c7086")
	paneSelectedColor = lipgloss.Color("#89b4fa")
	paneFocusedColor  = lipgloss.Color("#a6e3a1")
	paneTextColor     = lipgloss.Color("#cdd6f4")
)

// Pane draws rounded chrome with the title set into the top border. A zero
// Height fills the box it is rendered into.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if h <= 0 {
		h = height
	}
	if height > 0 && h > height {
		h = height
	}
	if width < 4 {
		width = 4
	}
	if h < 3 {
		h = 3
	}

	border := paneBorderColor
	if p.Selected {
		border = paneSelectedColor
	}
	if p.Focused {
		border = paneFocusedColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneTextColor).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(paneTextColor)

	titlePrefix := "  "
	if p.Selected {
		titlePrefix = "▶ "
	}
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = contentStyle.Render(ansi.Truncate(line, contentWidth, ""))
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
