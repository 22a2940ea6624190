package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Text renders pre-formatted content clipped to the box.
type Text struct {
	Content string
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(t.Content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

// Func adapts a render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}

// PadRight pads or truncates s to exactly width cells.
func PadRight(s string, width int) string {
	return padRight(s, width)
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Wrap breaks text on spaces so no line exceeds width cells.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := ""
	for _, w := range words {
		switch {
		case line == "":
			line = w
		case ansi.StringWidth(line)+1+ansi.StringWidth(w) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return lines
}
