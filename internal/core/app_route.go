package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/nav"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.SetStatus(msg.Text)
		return m, nil
	case ErrorMsg:
		m.SetError(msg.Err)
		return m, nil
	case SelectPanelMsg:
		return m, m.Select(msg.ID)
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case JumpTargetSelectedMsg:
		provider, ok := m.panel.(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		_, cmd := provider.JumpToTarget(&m, msg.Key)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			return m.updateTopScreen(msg)
		}
		if m.panel == nil {
			return m.handleGlobalKey(msg)
		}

		if capturer, ok := m.panel.(TextCapturer); ok && capturer.CapturingText() {
			if handler, ok := m.panel.(PaneKeyHandler); ok {
				if handled, cmd := handler.HandlePaneKey(&m, msg); handled {
					return m, cmd
				}
			}
			return m, m.panel.Update(&m, msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "jump", scope) {
			return m, m.activateJumpPicker()
		}
		if handler, ok := m.panel.(PaneKeyHandler); ok {
			if handled, cmd := handler.HandlePaneKey(&m, msg); handled {
				return m, cmd
			}
		}
		if next, cmd, handled := m.handleNavKey(msg, scope); handled {
			return next, cmd
		}
		return m, m.panel.Update(&m, msg)
	}

	if m.screens.Top() != nil {
		return m.updateTopScreen(msg)
	}
	if m.panel != nil {
		return m, m.panel.Update(&m, msg)
	}
	return m, nil
}

func (m Model) updateTopScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	m.screens.replaceTop(next)
	return m, cmd
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.ActiveScope()
	if m.keys.IsAction(msg, "quit", scope) {
		m.quitting = true
		return m, tea.Quit
	}
	next, cmd, _ := m.handleNavKey(msg, scope)
	return next, cmd
}

func (m Model) handleNavKey(msg tea.KeyMsg, scope string) (Model, tea.Cmd, bool) {
	if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
		m.screens.Push(m.OpenCommandModal(&m, scope))
		return m, nil, true
	}
	items := nav.Items()
	for i, it := range items {
		if m.keys.IsAction(msg, fmt.Sprintf("switch-panel-%d", i+1), scope) {
			return m, m.Select(string(it.ID)), true
		}
	}
	if m.keys.IsAction(msg, "next-panel", scope) {
		next := m.selector
		next.Next()
		return m, m.Select(next.Active()), true
	}
	if m.keys.IsAction(msg, "prev-panel", scope) {
		prev := m.selector
		prev.Prev()
		return m, m.Select(prev.Active()), true
	}
	return m, nil, false
}

func (m *Model) activateJumpPicker() tea.Cmd {
	provider, ok := m.panel.(JumpTargetProvider)
	if !ok || m.OpenJumpPickerModal == nil {
		return StatusCmd("No jump targets")
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		return StatusCmd("No jump targets")
	}
	m.screens.Push(m.OpenJumpPickerModal(m, targets))
	return nil
}
