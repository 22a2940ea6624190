package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clinicflow/internal/core"
)

var (
	paletteTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	paletteCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	paletteDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	paletteDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}

type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	options  []CommandOption
	cursor   int
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp}
	s.refresh()
	return s
}

// OpenCommandScreen builds a palette over the model's command registry. The
// chosen command runs through core.CommandExecuteMsg.
func OpenCommandScreen(m *core.Model, scope string) core.Screen {
	reg := m.CommandRegistry()
	search := func(query string) []CommandOption {
		results := reg.Search(query, scope, m)
		out := make([]CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
		}
		return out
	}
	return NewCommandScreen(scope, search, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Options() []CommandOption {
	return append([]CommandOption(nil), s.options...)
}

func (s *CommandScreen) Cursor() int { return s.cursor }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "up", "ctrl+p":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil, false
		case "down", "ctrl+n":
			if s.cursor < len(s.options)-1 {
				s.cursor++
			}
			return s, nil, false
		case "enter":
			if len(s.options) == 0 {
				return s, nil, false
			}
			it := s.options[s.cursor]
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	if s.search == nil {
		s.options = nil
	} else {
		s.options = s.search(query)
	}
	s.cursor = min(s.cursor, max(0, len(s.options)-1))
	if query != "" {
		s.cursor = 0
	}
}

func (s *CommandScreen) View(width, height int) string {
	inner := max(16, width-4)
	s.input.Width = max(8, inner-len(s.input.Prompt)-1)
	lines := []string{paletteTitleStyle.Render("Command Palette"), s.input.View(), ""}
	if len(s.options) == 0 {
		lines = append(lines, paletteDescStyle.Render("  No matching commands"))
	}
	rows := max(1, height-6)
	start := 0
	if s.cursor >= rows {
		start = s.cursor - rows + 1
	}
	for i := start; i < len(s.options) && i < start+rows; i++ {
		it := s.options[i]
		prefix := "  "
		style := lipgloss.NewStyle()
		if it.Disabled {
			style = paletteDisabledStyle
		}
		if i == s.cursor {
			prefix = paletteCursorStyle.Render("> ")
		}
		line := prefix + style.Render(it.Title())
		if it.Desc != "" {
			line += "  " + paletteDescStyle.Render(it.Desc)
		}
		lines = append(lines, core.TrimToWidth(line, inner))
	}
	return strings.Join(lines, "\n")
}
