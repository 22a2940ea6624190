package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text string
}

// ErrorMsg shows Err in the status bar with error styling. A nil Err clears
// the status line.
type ErrorMsg struct {
	Err error
}

// SelectPanelMsg asks the shell to show the panel named by ID. Unknown ids
// show the default panel.
type SelectPanelMsg struct {
	ID string
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type JumpTargetSelectedMsg struct {
	Key string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Err: err} }
}

func SelectPanelCmd(id string) tea.Cmd {
	return func() tea.Msg { return SelectPanelMsg{ID: id} }
}
