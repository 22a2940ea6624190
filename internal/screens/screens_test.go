package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
)

func typeText(t *testing.T, s core.Screen, text string) core.Screen {
	t.Helper()
	for _, r := range text {
		next, _, pop := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		require.False(t, pop)
		s = next
	}
	return s
}

func TestCommandScreenFiltersAndSelects(t *testing.T) {
	m := core.NewModel(nil, nil, core.NewCommandRegistry(core.DefaultCommands()), core.Chrome{}, zerolog.Nop())
	s := OpenCommandScreen(&m, "panel:dashboard")
	cs := s.(*CommandScreen)
	require.Len(t, cs.Options(), len(nav.Items())+3)

	s = typeText(t, s, "insig")
	opts := s.(*CommandScreen).Options()
	require.NotEmpty(t, opts)
	require.Equal(t, "nav:insights", opts[0].ID)

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, pop)
	require.NotNil(t, cmd)
	require.Equal(t, core.CommandExecuteMsg{CommandID: "nav:insights"}, cmd())
}

func TestCommandScreenCursorAndCancel(t *testing.T) {
	opts := []CommandOption{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta", Disabled: true, Reason: "blocked"}}
	s := NewCommandScreen("x", func(string) []CommandOption { return opts }, nil)
	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, s.Cursor())
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, s.Cursor())

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, pop)
	require.Equal(t, core.StatusMsg{Text: "blocked"}, cmd())

	_, _, pop = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, pop)
	require.Contains(t, s.View(60, 12), "Beta (blocked)")
}

func TestJumpPickerDirectKey(t *testing.T) {
	s := NewJumpPickerScreen([]core.JumpTarget{
		{Key: "q", Label: "Patient Queue"},
		{Key: "C", Label: "Chat"},
		{Key: "??", Label: "ignored"},
	})
	view := s.View(60, 12)
	require.Contains(t, view, "[c] Chat")
	require.NotContains(t, view, "ignored")

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.True(t, pop)
	require.Equal(t, core.JumpTargetSelectedMsg{Key: "c"}, cmd())
}

func TestJumpPickerEnterSelectsFirstMatch(t *testing.T) {
	s := NewJumpPickerScreen([]core.JumpTarget{{Key: "q", Label: "Patient Queue"}})
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, pop)
	require.Equal(t, core.JumpTargetSelectedMsg{Key: "q"}, cmd())

	_, _, pop = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, pop)
}
