package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/widgets"
)

// RowFunc renders row i of a list. Rows may span several lines.
type RowFunc func(i, width int, cursor, selected bool) string

// ListPane is a focusable list with a cursor and a single selected row.
// The row count never changes after construction.
type ListPane struct {
	id       string
	title    string
	scope    string
	jump     byte
	height   int
	count    int
	caption  func(width int) string
	row      RowFunc
	onSelect func(m *core.Model, i int)
	cursor   int
	selected int
}

func NewListPane(id, title, scope string, jumpKey byte, height, count int, row RowFunc) *ListPane {
	return &ListPane{
		id:       id,
		title:    title,
		scope:    scope,
		jump:     jumpKey,
		height:   height,
		count:    count,
		row:      row,
		selected: -1,
	}
}

// WithCaption adds a fixed line block above the rows.
func (p *ListPane) WithCaption(caption func(width int) string) *ListPane {
	p.caption = caption
	return p
}

func (p *ListPane) OnSelect(fn func(m *core.Model, i int)) *ListPane {
	p.onSelect = fn
	return p
}

func (p *ListPane) ID() string       { return p.id }
func (p *ListPane) Title() string    { return p.title }
func (p *ListPane) Scope() string    { return p.scope }
func (p *ListPane) JumpKey() byte    { return p.jump }
func (p *ListPane) Focusable() bool  { return true }
func (p *ListPane) OnFocus() tea.Cmd { return nil }
func (p *ListPane) OnBlur() tea.Cmd  { return nil }
func (p *ListPane) Cursor() int      { return p.cursor }

// Selected returns the selected row index, or -1.
func (p *ListPane) Selected() int {
	if p.selected < 0 || p.selected >= p.count {
		return -1
	}
	return p.selected
}

// Select marks row i as selected and moves the cursor there. Out of range
// indexes clear the selection.
func (p *ListPane) Select(i int) {
	if i < 0 || i >= p.count {
		p.selected = -1
		return
	}
	p.selected = i
	p.cursor = i
}

func (p *ListPane) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || p.count == 0 {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(keyMsg, "row-down", p.scope):
		if p.cursor < p.count-1 {
			p.cursor++
		}
	case keys.IsAction(keyMsg, "row-up", p.scope):
		if p.cursor > 0 {
			p.cursor--
		}
	case keys.IsAction(keyMsg, "row-select", p.scope):
		p.Select(p.cursor)
		if p.onSelect != nil {
			p.onSelect(m, p.cursor)
		}
	}
	return nil
}

func (p *ListPane) View(width, height int, selected, focused bool) string {
	inner := max(1, width-4)
	var blocks []string
	if p.caption != nil {
		blocks = append(blocks, p.caption(inner))
	}
	rows := make([]string, p.count)
	for i := range rows {
		rows[i] = p.row(i, inner, focused && i == p.cursor, i == p.Selected())
	}
	h := p.height
	if h <= 0 || h > height {
		h = height
	}
	budget := max(1, h-2-lipgloss.Height(strings.Join(blocks, "\n")))
	if p.caption == nil {
		budget = max(1, h-2)
	}
	blocks = append(blocks, strings.Join(visibleRows(rows, p.cursor, budget), "\n"))
	return widgets.Pane{Title: p.title, Height: p.height, Content: strings.Join(blocks, "\n"), Selected: selected, Focused: focused}.Render(width, height)
}

// visibleRows drops leading rows until the cursor row fits in budget lines.
func visibleRows(rows []string, cursor, budget int) []string {
	start := 0
	for start < cursor {
		used := 0
		for i := start; i <= cursor && i < len(rows); i++ {
			used += lipgloss.Height(rows[i])
		}
		if used <= budget {
			break
		}
		start++
	}
	return rows[start:]
}
