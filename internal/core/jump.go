package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

func NormalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	if !IsJumpGlyph(k) {
		return ""
	}
	return k
}

func IsJumpGlyph(k string) bool {
	r := []rune(k)
	if len(r) != 1 {
		return false
	}
	return unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])
}
