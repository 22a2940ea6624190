package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// PickerItem is one selectable row. Search, when set, replaces Label as the
// text the query is matched against.
type PickerItem struct {
	ID     string
	Label  string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker narrows a fixed item list by a typed query and keeps a cursor over
// what is left. Best matches come first; ties keep insertion order.
type Picker struct {
	title   string
	items   []PickerItem
	matches []PickerItem
	query   string
	cursor  int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title), items: slices.Clone(items)}
	p.refilter()
	return p
}

func (p *Picker) Title() string       { return p.title }
func (p *Picker) Query() string       { return p.query }
func (p *Picker) Cursor() int         { return p.cursor }
func (p *Picker) Items() []PickerItem { return slices.Clone(p.matches) }

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.refilter()
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.matches) == 0 {
		return PickerItem{}, false
	}
	return p.matches[min(max(p.cursor, 0), len(p.matches)-1)], true
}

// HandleKey applies one key. Printable keys extend the query, so letters are
// never cursor keys here.
func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "ctrl+p":
		return p.step(-1)
	case "down", "ctrl+n":
		return p.step(1)
	case "enter":
		if item, ok := p.CurrentItem(); ok {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if r := []rune(p.query); len(r) > 0 {
			p.SetQuery(string(r[:len(r)-1]))
		}
	default:
		if len(keyName) == 1 && keyName[0] >= ' ' && keyName[0] <= '~' {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerResult{Action: PickerActionNone}
}

func (p *Picker) step(delta int) PickerResult {
	next := min(max(p.cursor+delta, 0), max(len(p.matches)-1, 0))
	if next == p.cursor {
		return PickerResult{Action: PickerActionNone}
	}
	p.cursor = next
	return PickerResult{Action: PickerActionMoved}
}

func (p *Picker) refilter() {
	type scored struct {
		item  PickerItem
		score int
	}
	q := strings.TrimSpace(p.query)
	hits := make([]scored, 0, len(p.items))
	for _, item := range p.items {
		text := cmp.Or(strings.TrimSpace(item.Search), item.Label)
		ok, score := fuzzyMatchScore(text, q)
		if !ok {
			ok, score = typoMatchScore(text, q)
		}
		if ok {
			hits = append(hits, scored{item: item, score: score})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return cmp.Compare(b.score, a.score) })

	p.matches = p.matches[:0]
	for _, h := range hits {
		p.matches = append(p.matches, h.item)
	}
	p.cursor = min(max(p.cursor, 0), max(len(p.matches)-1, 0))
}

// fuzzyMatchScore reports whether query is a case-insensitive subsequence of
// label. Matches at the start, consecutive runs and exact equality score
// higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	l, q := strings.ToLower(label), strings.ToLower(query)
	score, from, prev := len(q), 0, -2
	for i := 0; i < len(q); i++ {
		j := strings.IndexByte(l[from:], q[i])
		if j < 0 {
			return false, 0
		}
		pos := from + j
		switch {
		case pos == 0:
			score += 10
		case pos == prev+1:
			score += 3
		}
		prev, from = pos, pos+1
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

// typoMatchScore accepts a query of three or more characters that is within
// a small edit distance of any word in label. Typo matches always rank below
// subsequence matches.
func typoMatchScore(label, query string) (bool, int) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 3 {
		return false, 0
	}
	limit := max(1, len(q)/4)
	best := -1
	for _, word := range strings.Fields(strings.ToLower(label)) {
		d := levenshtein.ComputeDistance(q, word)
		if d <= limit && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, -best
}
