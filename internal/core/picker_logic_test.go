package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickerFiltersAndClampsCursor(t *testing.T) {
	p := NewPicker("panels", []PickerItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "triage", Label: "AI Triage"},
		{ID: "workflow", Label: "Workflow"},
	})
	p.HandleKey("down")
	p.HandleKey("down")
	require.Equal(t, 2, p.Cursor())

	for _, k := range []string{"t", "r", "i"} {
		p.HandleKey(k)
	}
	items := p.Items()
	require.Len(t, items, 1)
	require.Equal(t, "triage", items[0].ID)
	require.Equal(t, 0, p.Cursor())

	res := p.HandleKey("enter")
	require.Equal(t, PickerActionSelected, res.Action)
	require.Equal(t, "triage", res.Item.ID)

	p.HandleKey("backspace")
	require.Equal(t, "tr", p.Query())
	require.Equal(t, PickerActionCancelled, p.HandleKey("esc").Action)
}

func TestPickerToleratesTypos(t *testing.T) {
	p := NewPicker("panels", []PickerItem{
		{ID: "prescriptions", Label: "Prescriptions"},
		{ID: "insights", Label: "Insights"},
	})
	p.SetQuery("persciptions")
	items := p.Items()
	require.Len(t, items, 1)
	require.Equal(t, "prescriptions", items[0].ID)

	p.SetQuery("zzz")
	require.Empty(t, p.Items())
	_, ok := p.CurrentItem()
	require.False(t, ok)
}

func TestFuzzyMatchPrefersPrefixAndExact(t *testing.T) {
	ok, prefix := fuzzyMatchScore("Workflow", "wo")
	require.True(t, ok)
	ok, inner := fuzzyMatchScore("Go to Workflow", "wo")
	require.True(t, ok)
	require.Greater(t, prefix, inner)

	ok, exact := fuzzyMatchScore("Insights", "insights")
	require.True(t, ok)
	require.Greater(t, exact, prefix)
}
