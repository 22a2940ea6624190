package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/nav"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
	Score     int
}

type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, exists := r.commands[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.commands[c.ID] = c
}

// Search returns the commands visible in scope that match query, best match
// first. Registration order breaks ties; disabled commands sort last.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.TrimSpace(query)
	results := make([]CommandResult, 0, len(r.commands))
	for _, id := range r.order {
		c := r.commands[id]
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		matched, score := fuzzyMatchScore(c.Name, q)
		if !matched {
			matched, score = fuzzyMatchScore(c.Name+" "+c.Description+" "+c.ID, q)
		}
		if !matched {
			matched, score = typoMatchScore(c.Name, q)
		}
		if !matched {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
			Score:     score,
		})
	}
	slices.SortStableFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return b.Score - a.Score
	})
	return results
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return ErrorCmd(fmt.Errorf("unknown command %q", id))
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return ErrorCmd(errors.New(reason))
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// DefaultCommands are the shell commands offered by the palette in every
// scope: one "Go to" entry per panel plus panel cycling and quit.
func DefaultCommands() []Command {
	cmds := make([]Command, 0, len(nav.Items())+3)
	for _, it := range nav.Items() {
		id := string(it.ID)
		cmds = append(cmds, Command{
			ID:          "nav:" + id,
			Name:        "Go to " + it.Label,
			Description: "Show the " + it.Label + " panel",
			Scopes:      []string{"*"},
			Execute:     func(*Model) tea.Cmd { return SelectPanelCmd(id) },
		})
	}
	return append(cmds,
		Command{
			ID:          "nav:next",
			Name:        "Next panel",
			Description: "Cycle forward through the sidebar",
			Scopes:      []string{"*"},
			Execute: func(m *Model) tea.Cmd {
				next := m.selector
				next.Next()
				return m.Select(next.Active())
			},
		},
		Command{
			ID:          "nav:prev",
			Name:        "Previous panel",
			Description: "Cycle backward through the sidebar",
			Scopes:      []string{"*"},
			Execute: func(m *Model) tea.Cmd {
				prev := m.selector
				prev.Prev()
				return m.Select(prev.Active())
			},
		},
		Command{
			ID:          "app:quit",
			Name:        "Quit",
			Description: "Exit ClinicFlow",
			Scopes:      []string{"*"},
			Execute: func(m *Model) tea.Cmd {
				m.quitting = true
				return tea.Quit
			},
		},
	)
}
