// Package nav holds the panel selector: the ordered navigation entries and
// the single active-panel identifier.
package nav

import "slices"

// PanelID identifies one of the top-level panels.
type PanelID string

const (
	Dashboard     PanelID = "dashboard"
	Triage        PanelID = "triage"
	Appointments  PanelID = "appointments"
	Prescriptions PanelID = "prescriptions"
	Insights      PanelID = "insights"
	Workflow      PanelID = "workflow"
)

// Default is shown at startup and for any identifier outside the fixed set.
const Default = Dashboard

// Item is one sidebar entry.
type Item struct {
	ID    PanelID
	Label string
}

var items = []Item{
	{ID: Dashboard, Label: "Dashboard"},
	{ID: Triage, Label: "AI Triage"},
	{ID: Appointments, Label: "Scheduling"},
	{ID: Prescriptions, Label: "Prescriptions"},
	{ID: Insights, Label: "Insights"},
	{ID: Workflow, Label: "Workflow"},
}

// Items returns the navigation entries in display order.
func Items() []Item {
	return slices.Clone(items)
}

// Lookup returns the entry for id, if id names one of the panels.
func Lookup(id string) (Item, bool) {
	for _, it := range items {
		if string(it.ID) == id {
			return it, true
		}
	}
	return Item{}, false
}

// Resolve maps an arbitrary identifier onto a panel, falling back to Default.
func Resolve(id string) PanelID {
	if it, ok := Lookup(id); ok {
		return it.ID
	}
	return Default
}

// IndexOf returns the sidebar position of the panel id resolves to.
func IndexOf(id string) int {
	target := Resolve(id)
	for i, it := range items {
		if it.ID == target {
			return i
		}
	}
	return 0
}

// Selector tracks the active panel identifier. Select is last-write-wins and
// never rejects an identifier; unknown identifiers resolve to Default.
type Selector struct {
	active string
}

func NewSelector() Selector {
	return Selector{active: string(Default)}
}

// Select replaces the active identifier.
func (s *Selector) Select(id string) {
	s.active = id
}

// Active returns the identifier exactly as last selected.
func (s Selector) Active() string {
	return s.active
}

// Current returns the panel that is displayed for the active identifier.
func (s Selector) Current() PanelID {
	return Resolve(s.active)
}

// IsActive reports whether id names the sidebar entry last selected. An
// unknown selection shows the default panel but highlights no entry.
func (s Selector) IsActive(id PanelID) bool {
	it, ok := Lookup(s.active)
	return ok && it.ID == id
}

// Next selects the entry after the current one, wrapping around.
func (s *Selector) Next() {
	s.step(1)
}

// Prev selects the entry before the current one, wrapping around.
func (s *Selector) Prev() {
	s.step(-1)
}

func (s *Selector) step(delta int) {
	idx := IndexOf(s.active)
	idx = (idx + delta + len(items)) % len(items)
	s.active = string(items[idx].ID)
}
