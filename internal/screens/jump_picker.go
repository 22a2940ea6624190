package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clinicflow/internal/core"
)

type JumpPickerScreen struct {
	scope     string
	title     string
	targetByK map[string]core.JumpTarget
	picker    *core.Picker
}

func NewJumpPickerScreen(targets []core.JumpTarget) *JumpPickerScreen {
	items := make([]core.PickerItem, 0, len(targets))
	targetByK := make(map[string]core.JumpTarget, len(targets))
	for _, target := range targets {
		key := core.NormalizeJumpKey(target.Key)
		if key == "" {
			continue
		}
		target.Key = key
		targetByK[key] = target
		items = append(items, core.PickerItem{
			ID:     key,
			Label:  fmt.Sprintf("[%s] %s", key, target.Label),
			Search: key + " " + target.Label,
		})
	}
	return &JumpPickerScreen{
		scope:     "screen:jump-picker",
		title:     "Jump Picker",
		targetByK: targetByK,
		picker:    core.NewPicker("Jump Picker", items),
	}
}

func OpenJumpPickerScreen(_ *core.Model, targets []core.JumpTarget) core.Screen {
	return NewJumpPickerScreen(targets)
}

func (s *JumpPickerScreen) Title() string { return s.title }
func (s *JumpPickerScreen) Scope() string { return s.scope }

func (s *JumpPickerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := strings.ToLower(strings.TrimSpace(keyMsg.String()))
	if keyName == "esc" {
		return s, nil, true
	}
	if core.IsJumpGlyph(keyName) {
		if target, found := s.targetByK[keyName]; found {
			return s, func() tea.Msg { return core.JumpTargetSelectedMsg{Key: target.Key} }, true
		}
	}
	result := s.picker.HandleKey(keyName)
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		if result.Item.ID == "" {
			return s, nil, true
		}
		return s, func() tea.Msg { return core.JumpTargetSelectedMsg{Key: result.Item.ID} }, true
	default:
		return s, nil, false
	}
}

func (s *JumpPickerScreen) View(width, height int) string {
	lines := make([]string, 0, len(s.picker.Items())+4)
	q := strings.TrimSpace(s.picker.Query())
	if q == "" {
		q = "(type to filter)"
	}
	lines = append(lines, paletteTitleStyle.Render(s.title), "Filter: "+q, "")
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No jump targets")
	} else {
		cursor := s.picker.Cursor()
		for i, item := range items {
			prefix := "  "
			if i == cursor {
				prefix = paletteCursorStyle.Render("> ")
			}
			lines = append(lines, prefix+item.Label)
		}
	}
	lines = append(lines, "", paletteDescStyle.Render("Type pane key to jump. Enter selects row. Esc cancels."))
	inner := max(20, width-4)
	return core.ClipHeight(core.TrimToWidth(strings.Join(lines, "\n"), inner), max(6, height))
}
