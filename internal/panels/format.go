package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/widgets"
)

const cardHeight = 4

// labelValue renders "label .... value" across width cells. When space runs
// short the label gives way first; a value too wide to share the line drops
// below the label.
func labelValue(label, value string, width int) string {
	labelW, valueW := ansi.StringWidth(label), ansi.StringWidth(value)
	switch {
	case labelW+1+valueW <= width:
		return label + strings.Repeat(" ", width-labelW-valueW) + value
	case valueW+2 <= width:
		return ansi.Truncate(label, width-valueW-1, "…") + " " + value
	default:
		return ansi.Truncate(label, width, "…") + "\n" + ansi.Truncate(value, width, "…")
	}
}

func wrapMuted(text string, width int) []string {
	lines := widgets.Wrap(text, max(1, width))
	for i, l := range lines {
		lines[i] = core.Muted(l)
	}
	return lines
}

func gaugeLines(g clinic.Gauge, width int, c clinic.Category) []string {
	return []string{
		labelValue(g.Label, core.Strong(g.Value), width),
		widgets.Bar{Percent: g.Percent, Fill: core.CategoryColor(c)}.Render(max(1, width), 1),
	}
}

// card is a small bordered headline number with its change indicator.
func card(title, value, change string) widgets.Widget {
	content := core.Strong(value)
	if change != "" {
		content += "  " + core.CategoryStyle(clinic.TrendCategory(change)).Render(change)
	}
	return widgets.Pane{Title: title, Height: cardHeight, Content: content}
}

func cardRow(cards ...widgets.Widget) widgets.Widget {
	return widgets.HStack{Widgets: cards, Gap: 1}
}

func percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// noteCard is a card whose caption carries its own tone instead of a trend.
func noteCard(title, value, note string, tone clinic.Category) widgets.Widget {
	content := core.Strong(value) + "  " + core.CategoryStyle(tone).Render(note)
	return widgets.Pane{Title: title, Height: cardHeight, Content: content}
}
