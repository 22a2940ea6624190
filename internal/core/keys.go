package core

import (
	"path"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties keys to an action inside the scopes it lists. Scopes are
// glob patterns over the colon separated scope name, so "pane:*:queue"
// covers the queue pane of every panel and "*" covers everything.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry is fixed at construction; user overrides are folded in
// beforehand by ApplyActionKeybindings.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	return slices.DeleteFunc(slices.Clone(r.bindings), func(b KeyBinding) bool {
		return !scopeMatch(scope, b.Scopes)
	})
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	return slices.ContainsFunc(r.bindings, func(b KeyBinding) bool {
		return b.Action == action &&
			scopeMatch(scope, b.Scopes) &&
			slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed })
	})
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// scopeMatch reports whether scope falls under any of patterns. No patterns
// means the binding is global. Malformed patterns never match.
func scopeMatch(scope string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return slices.ContainsFunc(patterns, func(p string) bool {
		ok, err := path.Match(p, scope)
		return err == nil && ok
	})
}
