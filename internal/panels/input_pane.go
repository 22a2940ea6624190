package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/widgets"
)

// InputPane hosts a single text field. Submitting it never changes any
// panel data.
type InputPane struct {
	id       string
	title    string
	scope    string
	jump     byte
	height   int
	button   string
	input    textinput.Model
	onSubmit func(m *core.Model, value string)
}

func NewInputPane(id, title, scope string, jumpKey byte, placeholder, button string) *InputPane {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "› "
	return &InputPane{id: id, title: title, scope: scope, jump: jumpKey, height: 3, button: button, input: inp}
}

func (p *InputPane) OnSubmit(fn func(m *core.Model, value string)) *InputPane {
	p.onSubmit = fn
	return p
}

func (p *InputPane) ID() string         { return p.id }
func (p *InputPane) Title() string      { return p.title }
func (p *InputPane) Scope() string      { return p.scope }
func (p *InputPane) JumpKey() byte      { return p.jump }
func (p *InputPane) Focusable() bool    { return true }
func (p *InputPane) CapturesText() bool { return p.input.Focused() }
func (p *InputPane) Value() string      { return p.input.Value() }
func (p *InputPane) SetValue(v string)  { p.input.SetValue(v) }

func (p *InputPane) OnFocus() tea.Cmd {
	return p.input.Focus()
}

func (p *InputPane) OnBlur() tea.Cmd {
	p.input.Blur()
	return nil
}

func (p *InputPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if p.onSubmit != nil {
			p.onSubmit(m, p.input.Value())
		}
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *InputPane) View(width, height int, selected, focused bool) string {
	inner := max(1, width-4)
	button := ""
	if p.button != "" {
		button = " " + core.Badge(p.button, buttonCategory)
	}
	p.input.Width = max(4, inner-ansi.StringWidth(p.input.Prompt)-ansi.StringWidth(button)-1)
	line := p.input.View() + button
	return widgets.Pane{Title: p.title, Height: p.height, Content: strings.TrimRight(line, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}
