package panels

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/core"
)

// hosted supplies the pane host plumbing shared by every panel.
type hosted struct {
	scope string
	host  PaneHost
}

func (h *hosted) Scope() string {
	if s := h.host.Scope(); s != "" {
		return s
	}
	return h.scope
}

func (h *hosted) ActivePaneTitle() string { return h.host.ActivePaneTitle() }
func (h *hosted) CapturingText() bool     { return h.host.CapturingText() }
func (h *hosted) JumpTargets() []core.JumpTarget {
	return h.host.JumpTargets()
}
func (h *hosted) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return h.host.JumpToTarget(m, key)
}
func (h *hosted) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return h.host.HandlePaneKey(m, msg)
}
func (h *hosted) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return h.host.UpdateActive(m, msg)
}

// Host exposes the pane host for tests and the jump picker.
func (h *hosted) Host() *PaneHost { return &h.host }
