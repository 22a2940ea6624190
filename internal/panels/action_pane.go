package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/widgets"
)

const buttonCategory = clinic.CategoryInfo

// ActionPane lists display-only buttons. Activating one logs it and reports
// it in the status bar; nothing else happens.
type ActionPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	height  int
	actions []clinic.QuickAction
	cursor  int
	pressed int
}

func NewActionPane(id, title, scope string, jumpKey byte, height int, actions []clinic.QuickAction) *ActionPane {
	return &ActionPane{id: id, title: title, scope: scope, jump: jumpKey, height: height, actions: actions}
}

func (p *ActionPane) ID() string       { return p.id }
func (p *ActionPane) Title() string    { return p.title }
func (p *ActionPane) Scope() string    { return p.scope }
func (p *ActionPane) JumpKey() byte    { return p.jump }
func (p *ActionPane) Focusable() bool  { return len(p.actions) > 0 }
func (p *ActionPane) OnFocus() tea.Cmd { return nil }
func (p *ActionPane) OnBlur() tea.Cmd  { return nil }

// Pressed counts activations since the pane was built.
func (p *ActionPane) Pressed() int { return p.pressed }

func (p *ActionPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.actions) == 0 {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(keyMsg, "row-down", p.scope):
		if p.cursor < len(p.actions)-1 {
			p.cursor++
		}
	case keys.IsAction(keyMsg, "row-up", p.scope):
		if p.cursor > 0 {
			p.cursor--
		}
	case keys.IsAction(keyMsg, "row-select", p.scope):
		p.pressed++
		pressAction(m, p.actions[p.cursor].Title)
	}
	return nil
}

func (p *ActionPane) View(width, height int, selected, focused bool) string {
	inner := max(1, width-4)
	lines := make([]string, 0, len(p.actions)*2)
	for i, a := range p.actions {
		marker := "  "
		if focused && i == p.cursor {
			marker = core.CategoryStyle(clinic.CategorySuccess).Render("> ")
		}
		lines = append(lines, marker+core.Badge(a.Title, buttonCategory))
		if a.Description != "" {
			for _, l := range widgets.Wrap(a.Description, max(1, inner-2)) {
				lines = append(lines, "  "+core.Muted(l))
			}
		}
	}
	return widgets.Pane{Title: p.title, Height: p.height, Content: strings.Join(lines, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

// pressAction records a display-only button press.
func pressAction(m *core.Model, title string) {
	m.Log().Debug().Str("action", title).Msg("display-only action")
	m.SetStatus(title + " (preview only)")
}
