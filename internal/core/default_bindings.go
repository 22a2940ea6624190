package core

import (
	"fmt"
	"strings"

	"github.com/jask/clinicflow/internal/nav"
)

// rowScopes are the pane kinds that move a row cursor once focused.
var rowScopes = []string{"pane:*:queue", "pane:*:schedule", "pane:*:steps", "pane:*:actions"}

var overlayScopes = []string{"screen:command", "screen:jump-picker"}

func DefaultKeyBindings() []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"v"}, Action: "jump", Description: "jump mode", Scopes: []string{"*"}},
		{Keys: []string{"left"}, Action: "pane-nav", Description: "pane prev", Scopes: []string{"*"}},
		{Keys: []string{"right"}, Action: "pane-nav", Description: "pane next", Scopes: []string{"*"}},
		{Keys: []string{"up"}, Action: "pane-nav", Description: "pane prev", Scopes: []string{"*"}},
		{Keys: []string{"down"}, Action: "pane-nav", Description: "pane next", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: "pane-focus", Description: "focus pane", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "pane-blur", Description: "unfocus", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "row down", Scopes: rowScopes},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "row up", Scopes: rowScopes},
		{Keys: []string{"enter"}, Action: "row-select", Description: "select row", Scopes: rowScopes},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"tab"}, Action: "next-panel", Description: "next panel", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: "prev-panel", Description: "prev panel", Scopes: []string{"*"}},
	}
	for i, it := range nav.Items() {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{fmt.Sprintf("%d", i+1)},
			Action:      fmt.Sprintf("switch-panel-%d", i+1),
			Description: strings.ToLower(it.Label),
			Scopes:      []string{"*"},
		})
	}
	return append(bindings,
		KeyBinding{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: overlayScopes},
		KeyBinding{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: overlayScopes},
	)
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an entry in actionKeys. Actions absent from the map keep their defaults.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

func DefaultJumpKey(bindings []KeyBinding) string {
	for _, b := range bindings {
		if b.Action == "jump" && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return "v"
}
