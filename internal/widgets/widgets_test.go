package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 1)
	if got := ansi.StringWidth(out); got != 21 {
		t.Fatalf("row width = %d, want 21", got)
	}
	if idx := strings.Index(out, "B"); idx != 16 {
		t.Fatalf("second column starts at %d, want 16", idx)
	}
}

func TestVStackFillsHeight(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 7)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
	if got := len(strings.Split(out, "\n")); got != 7 {
		t.Fatalf("line count = %d, want 7", got)
	}
}

func TestPaneChromeAndIndicators(t *testing.T) {
	out := Pane{Title: "Queue", Content: "Emily Johnson"}.Render(30, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("pane height = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Fatalf("line %d width = %d, want 30", i, w)
		}
	}
	if !strings.Contains(ansi.Strip(lines[0]), "Queue") {
		t.Fatalf("title missing from top border: %q", ansi.Strip(lines[0]))
	}
	if !strings.Contains(ansi.Strip(out), "Emily Johnson") {
		t.Fatalf("content missing")
	}
	if !strings.Contains(ansi.Strip(Pane{Title: "Q", Focused: true}.Render(20, 3)), "● Q") {
		t.Fatalf("focused marker missing")
	}
	if !strings.Contains(ansi.Strip(Pane{Title: "Q", Selected: true}.Render(20, 3)), "▶ Q") {
		t.Fatalf("selected marker missing")
	}
}

func TestBarClampsPercent(t *testing.T) {
	full := ansi.Strip(Bar{Percent: 150}.Render(10, 1))
	if full != strings.Repeat("█", 10) {
		t.Fatalf("over-full bar = %q", full)
	}
	empty := ansi.Strip(Bar{Percent: -3}.Render(10, 1))
	if empty != strings.Repeat("░", 10) {
		t.Fatalf("negative bar = %q", empty)
	}
	half := ansi.Strip(Bar{Percent: 50}.Render(10, 1))
	if strings.Count(half, "█") != 5 {
		t.Fatalf("half bar = %q", half)
	}
}

func TestRenderPopupKeepsCanvasSize(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 40)+"\n", 11) + strings.Repeat(".", 40)
	out := RenderPopup(base, "palette", 40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("popup canvas height = %d, want 12", len(lines))
	}
	if !strings.Contains(ansi.Strip(out), "palette") {
		t.Fatalf("popup content missing")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("Chest pain with shortness of breath requires immediate attention.", 20)
	for _, line := range got {
		if ansi.StringWidth(line) > 20 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if strings.Join(got, " ") != "Chest pain with shortness of breath requires immediate attention." {
		t.Fatalf("wrap lost words: %q", got)
	}
}

func TestColumnPinsFixedChildren(t *testing.T) {
	out := Column{Children: []Sized{
		{Widget: fixedWidget{text: "top"}, Height: 2},
		{Widget: fixedWidget{text: "flex"}},
		{Widget: fixedWidget{text: "bottom"}, Height: 1},
	}}.Render(10, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("line count = %d, want 8", len(lines))
	}
	for idx, want := range map[int]string{0: "top", 2: "flex", 7: "bottom"} {
		if got := strings.TrimSpace(lines[idx]); got != want {
			t.Fatalf("line %d = %q, want %q", idx, got, want)
		}
	}
}

func TestPlaceOverlaysAtPosition(t *testing.T) {
	out := Place("", "XY", 3, 1, 8, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[1] != "   XY   " {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if strings.TrimSpace(lines[0]) != "" {
		t.Fatalf("row 0 should stay blank: %q", lines[0])
	}
}
