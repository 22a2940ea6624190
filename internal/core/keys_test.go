package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"panel:a"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "panel:a") {
		t.Fatalf("expected ctrl+k in panel:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "panel:b") {
		t.Fatalf("did not expect ctrl+k in panel:b")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "panel:b") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestApplyActionKeybindingsOverridesOnlyNamedActions(t *testing.T) {
	defaults := DefaultKeyBindings()
	out := ApplyActionKeybindings(defaults, map[string][]string{"quit": {"x"}})
	reg := NewKeyRegistry(out)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, "quit", "panel:dashboard") {
		t.Fatalf("expected x to quit after override")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "panel:dashboard") {
		t.Fatalf("q should no longer quit")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, "switch-panel-3", "panel:dashboard") {
		t.Fatalf("untouched action lost its default key")
	}
	if defaults[0].Keys[0] != "q" {
		t.Fatalf("defaults mutated: %v", defaults[0].Keys)
	}
}

func TestDefaultBindingsCoverEveryPanel(t *testing.T) {
	byAction := DefaultKeybindingsByAction(DefaultKeyBindings())
	for i := 1; i <= 6; i++ {
		action := "switch-panel-" + string(rune('0'+i))
		if keys := byAction[action]; len(keys) != 1 || keys[0] != string(rune('0'+i)) {
			t.Fatalf("%s keys = %v", action, keys)
		}
	}
	if got := DefaultJumpKey(DefaultKeyBindings()); got != "v" {
		t.Fatalf("jump key = %q", got)
	}
}

func TestRowKeysFollowPaneKindAcrossPanels(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for _, scope := range []string{
		"pane:triage:queue",
		"pane:prescriptions:queue",
		"pane:appointments:schedule",
		"pane:workflow:steps",
		"pane:insights:actions",
		"pane:dashboard:actions",
	} {
		if !reg.IsAction(down, "row-down", scope) {
			t.Fatalf("expected j to move rows in %s", scope)
		}
	}
	for _, scope := range []string{"pane:triage:details", "panel:triage", "pane:prescriptions:search"} {
		if reg.IsAction(down, "row-down", scope) {
			t.Fatalf("did not expect j to move rows in %s", scope)
		}
	}
}

func TestBindingsForScopeKeepsRegistryIntact(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	queue := reg.BindingsForScope("pane:triage:queue")
	overlay := reg.BindingsForScope("screen:command")
	if len(queue) == 0 || len(overlay) == 0 {
		t.Fatalf("expected bindings in both scopes")
	}
	for _, b := range overlay {
		if b.Action == "row-down" {
			t.Fatalf("row keys leaked into the palette scope")
		}
	}
	if got := len(reg.BindingsForScope("*")); got == 0 {
		t.Fatalf("wildcard scope lost its bindings")
	}
}
