package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(1, height-spacingTotal)
	heights := splitWidths(usable, len(v.Widgets), v.Ratios)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		h := max(1, heights[i])
		lines = append(lines, FitHeight(w.Render(width, h), h))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		r := ratios[i]
		if r <= 0 {
			r = 1
		}
		w := int(math.Floor((r / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Sized pins a child of Column to Height lines. A zero Height shares the
// space left over by the pinned children.
type Sized struct {
	Widget
	Height int
}

type Column struct {
	Children []Sized
}

func (c Column) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	flex, used := 0, 0
	for _, ch := range c.Children {
		if ch.Height <= 0 {
			flex++
			continue
		}
		used += ch.Height
	}
	rest := max(0, height-used)
	lines := make([]string, 0, len(c.Children))
	for _, ch := range c.Children {
		h := ch.Height
		if h <= 0 {
			h = rest / max(1, flex)
		}
		if h <= 0 || ch.Widget == nil {
			continue
		}
		lines = append(lines, FitHeight(ch.Render(width, h), h))
	}
	return FitHeight(strings.Join(lines, "\n"), height)
}
