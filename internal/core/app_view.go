package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	width := max(1, m.width)

	var body string
	if bodyHeight > 0 {
		sidebarW := min(m.chrome.SidebarWidth, max(1, width/3))
		mainW := max(1, width-sidebarW-1)
		sidebar := renderSidebar(m, sidebarW, bodyHeight)
		main := renderMain(m, mainW, bodyHeight)
		body = joinColumns(sidebar, main, sidebarW, bodyHeight)
		if top := m.screens.Top(); top != nil {
			body = widgets.RenderPopup(body, top.View(max(20, width-24), max(8, bodyHeight-6)), width, bodyHeight)
		}
	}
	body = widgets.FitHeight(body, bodyHeight)
	view := strings.Join([]string{header, body, status, footer}, "\n")
	view = widgets.FitHeight(view, max(1, m.height))
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Background(colorMantle).Render("ClinicFlow AI") +
		headerSubStyle.Render("  Smart Healthcare Workflow")
	initials := strings.TrimSpace(m.chrome.Initials)
	right := strings.TrimSpace(m.chrome.Clinician)
	if initials != "" {
		right = avatarStyle.Render(initials) + headerSubStyle.Render(" "+right)
	}
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func renderSidebar(m Model, width, height int) string {
	lines := make([]string, 0, len(nav.Items()))
	for i, it := range nav.Items() {
		marker := "  "
		style := inactiveNavStyle
		if m.selector.IsActive(it.ID) {
			marker = "▸ "
			style = activeNavStyle
		}
		lines = append(lines, style.Render(marker+string(rune('1'+i))+" "+it.Label))
	}
	return widgets.Pane{Title: "Navigation", Content: strings.Join(lines, "\n")}.Render(width, height)
}

func renderMain(m Model, width, height int) string {
	if m.panel == nil {
		return widgets.FitHeight(Muted("No panel available"), height)
	}
	heading := panelTitleStyle.Render(m.panel.Title())
	if sub := strings.TrimSpace(m.panel.Subtitle()); sub != "" {
		heading += "\n" + panelSubtitleStyle.Render(sub)
	}
	heading = TrimToWidth(heading, width)
	rest := max(0, height-lipgloss.Height(heading))
	content := m.panel.Build(&m).Render(width, rest)
	return widgets.FitHeight(heading+"\n"+content, height)
}

func joinColumns(left, right string, leftW, height int) string {
	l := strings.Split(widgets.FitHeight(left, height), "\n")
	r := strings.Split(widgets.FitHeight(right, height), "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		out[i] = widgets.PadRight(l[i], leftW) + " " + r[i]
	}
	return strings.Join(out, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
