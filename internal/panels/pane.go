package panels

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/widgets"
)

type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() byte
	Focusable() bool
	Update(m *core.Model, msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// textPane is implemented by panes that own a text field.
type textPane interface {
	CapturesText() bool
}

// StaticPane renders read-only content. The render func receives the inner
// content width so it can wrap.
type StaticPane struct {
	id     string
	title  string
	scope  string
	jump   byte
	height int
	render func(width int) string
}

func NewStaticPane(id, title, scope string, jumpKey byte, height int, render func(width int) string) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, jump: jumpKey, height: height, render: render}
}

func (p *StaticPane) ID() string                                { return p.id }
func (p *StaticPane) Title() string                             { return p.title }
func (p *StaticPane) Scope() string                             { return p.scope }
func (p *StaticPane) JumpKey() byte                             { return p.jump }
func (p *StaticPane) Focusable() bool                           { return false }
func (p *StaticPane) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }
func (p *StaticPane) OnFocus() tea.Cmd                          { return nil }
func (p *StaticPane) OnBlur() tea.Cmd                           { return nil }
func (p *StaticPane) View(width, height int, selected, focused bool) string {
	content := ""
	if p.render != nil {
		content = p.render(max(1, width-4))
	}
	return widgets.Pane{Title: p.title, Height: p.height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

func NewPaneHost(panes ...Pane) PaneHost {
	seen := make(map[byte]string, len(panes))
	for _, pane := range panes {
		if pane == nil {
			continue
		}
		key := normalizePaneJumpKey(pane.JumpKey())
		if key == 0 {
			panic(fmt.Sprintf("pane %q must declare a single alphanumeric jump key", pane.ID()))
		}
		if other, exists := seen[key]; exists {
			panic(fmt.Sprintf("duplicate jump key %q across panes %q and %q", string(key), other, pane.ID()))
		}
		seen[key] = pane.ID()
	}
	return PaneHost{panes: panes, selected: 0, focused: -1}
}

func (h *PaneHost) Scope() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Title()
	}
	return ""
}

// CapturingText reports whether the focused pane is an active text field.
func (h *PaneHost) CapturingText() bool {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return false
	}
	tp, ok := h.panes[h.focused].(textPane)
	return ok && tp.CapturesText()
}

func (h *PaneHost) Focused() (Pane, bool) {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return nil, false
	}
	return h.panes[h.focused], true
}

func (h *PaneHost) activeIndex() int {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.focused
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.selected
	}
	return -1
}

// UpdateActive forwards keys only to a focused pane. Other messages, such as
// cursor blinks, go to every pane.
func (h *PaneHost) UpdateActive(m *core.Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		if h.focused < 0 || h.focused >= len(h.panes) {
			return nil
		}
		return h.panes[h.focused].Update(m, msg)
	}
	cmds := make([]tea.Cmd, 0, len(h.panes))
	for _, p := range h.panes {
		cmds = append(cmds, p.Update(m, msg))
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.focused >= 0 && h.focused < len(h.panes) {
		if msg.String() == "esc" {
			return true, h.unfocus(m)
		}
		// When focused, pane receives navigation keys directly.
		return false, nil
	}
	switch msg.String() {
	case "left", "up":
		return true, h.move(m, -1)
	case "right", "down":
		return true, h.move(m, 1)
	case "enter":
		return true, h.focusSelected(m)
	default:
		return false, nil
	}
}

func (h *PaneHost) move(m *core.Model, delta int) tea.Cmd {
	if len(h.panes) <= 1 {
		return nil
	}
	h.selected = (h.selected + delta + len(h.panes)) % len(h.panes)
	h.focused = -1
	m.SetStatus("Selected pane: " + h.panes[h.selected].Title())
	return nil
}

func (h *PaneHost) focusSelected(m *core.Model) tea.Cmd {
	if h.selected < 0 || h.selected >= len(h.panes) {
		return nil
	}
	pane := h.panes[h.selected]
	if !pane.Focusable() {
		m.SetStatus(pane.Title() + " has nothing to focus")
		return nil
	}
	h.focused = h.selected
	m.SetStatus("Focused pane: " + pane.Title())
	return pane.OnFocus()
}

func (h *PaneHost) unfocus(m *core.Model) tea.Cmd {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return nil
	}
	idx := h.focused
	h.focused = -1
	m.SetStatus("Pane unfocused: " + h.panes[idx].Title())
	return h.panes[idx].OnBlur()
}

type paneWidget struct {
	pane     Pane
	selected bool
	focused  bool
}

func (w paneWidget) Render(width, height int) string {
	return w.pane.View(width, height, w.selected, w.focused)
}

func (h *PaneHost) BuildPane(id string) widgets.Widget {
	for idx, p := range h.panes {
		if p.ID() == id {
			return paneWidget{pane: p, selected: idx == h.selected, focused: idx == h.focused}
		}
	}
	return widgets.Pane{Title: "Missing Pane", Height: 4, Content: id}
}

func (h *PaneHost) JumpTargets() []core.JumpTarget {
	out := make([]core.JumpTarget, 0, len(h.panes))
	for _, pane := range h.panes {
		if pane == nil {
			continue
		}
		key := normalizePaneJumpKey(pane.JumpKey())
		if key == 0 {
			continue
		}
		out = append(out, core.JumpTarget{
			Key:   string(key),
			Label: pane.Title(),
		})
	}
	return out
}

// JumpToTarget selects the pane with the given jump key and focuses it when
// it is focusable.
func (h *PaneHost) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	jumpKey := normalizeJumpTargetKey(key)
	if jumpKey == 0 {
		return false, nil
	}
	target := -1
	for idx, pane := range h.panes {
		if pane != nil && normalizePaneJumpKey(pane.JumpKey()) == jumpKey {
			target = idx
			break
		}
	}
	if target < 0 {
		return false, nil
	}

	var cmds []tea.Cmd
	if h.focused >= 0 && h.focused != target {
		cmds = append(cmds, h.panes[h.focused].OnBlur())
	}
	prevFocused := h.focused
	h.selected = target
	h.focused = -1
	if !h.panes[target].Focusable() {
		m.SetStatus("Selected pane: " + h.panes[target].Title())
		return true, tea.Batch(cmds...)
	}
	h.focused = target
	m.SetStatus("Focused pane: " + h.panes[target].Title())
	if prevFocused != target {
		cmds = append(cmds, h.panes[target].OnFocus())
	}
	return true, tea.Batch(cmds...)
}

func normalizePaneJumpKey(key byte) byte {
	if key == 0 {
		return 0
	}
	r := rune(key)
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	return byte(unicode.ToLower(r))
}

func normalizeJumpTargetKey(key string) byte {
	key = strings.TrimSpace(strings.ToLower(key))
	if len(key) != 1 {
		return 0
	}
	return normalizePaneJumpKey(key[0])
}
