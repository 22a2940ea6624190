package clinic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppointmentStatusCategory(t *testing.T) {
	cases := map[AppointmentStatus]Category{
		StatusConfirmed: CategorySuccess,
		StatusPending:   CategoryWarning,
		StatusCancelled: CategoryDanger,
		"":              CategoryNeutral,
		"rescheduled":   CategoryNeutral,
	}
	for in, want := range cases {
		require.Equal(t, want, AppointmentStatusCategory(in), "status %q", in)
	}
}

func TestRiskScoreCategoryBands(t *testing.T) {
	cases := []struct {
		score int
		want  Category
	}{
		{100, CategoryDanger},
		{92, CategoryDanger},
		{80, CategoryDanger},
		{79, CategoryWarning},
		{54, CategoryWarning},
		{50, CategoryWarning},
		{49, CategorySuccess},
		{23, CategorySuccess},
		{0, CategorySuccess},
		{-5, CategorySuccess},
		{250, CategoryDanger},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, RiskScoreCategory(tc.score), "score %d", tc.score)
	}
}

func TestPriorityCategory(t *testing.T) {
	require.Equal(t, CategoryDanger, PriorityCategory(PriorityUrgent))
	require.Equal(t, CategoryWarning, PriorityCategory(PriorityModerate))
	require.Equal(t, CategorySuccess, PriorityCategory(PriorityLow))
	require.Equal(t, CategoryNeutral, PriorityCategory("critical"))
	require.Equal(t, CategoryNeutral, PriorityCategory(""))
}

func TestPrescriptionStatusCategory(t *testing.T) {
	require.Equal(t, CategorySuccess, PrescriptionStatusCategory(RxValidated))
	require.Equal(t, CategoryWarning, PrescriptionStatusCategory(RxWarning))
	require.Equal(t, CategoryDanger, PrescriptionStatusCategory(RxFlagged))
	require.Equal(t, CategoryNeutral, PrescriptionStatusCategory("Validated"))
}

func TestRiskLevelCategory(t *testing.T) {
	require.Equal(t, CategorySuccess, RiskLevelCategory(RiskLow))
	require.Equal(t, CategoryWarning, RiskLevelCategory(RiskMedium))
	require.Equal(t, CategoryDanger, RiskLevelCategory(RiskHigh))
	require.Equal(t, CategoryNeutral, RiskLevelCategory("extreme"))
}

func TestStepTypeCategoryDistinctAndTotal(t *testing.T) {
	known := []StepType{StepStart, StepAI, StepUrgent, StepConsultation, StepStandard, StepEnd}
	seen := map[Category]StepType{}
	for _, st := range known {
		c := StepTypeCategory(st)
		require.NotEqual(t, CategoryNeutral, c, "step type %q should have its own category", st)
		prev, dup := seen[c]
		require.False(t, dup, "step types %q and %q share category %q", prev, st, c)
		seen[c] = st
	}
	require.Equal(t, CategoryNeutral, StepTypeCategory("handoff"))
}

func TestAuxiliaryCategoriesFallBack(t *testing.T) {
	require.Equal(t, CategoryDanger, AlertCategory(AlertUrgent))
	require.Equal(t, CategoryWarning, AlertCategory(AlertWarning))
	require.Equal(t, CategoryInfo, AlertCategory(AlertInfo))
	require.Equal(t, CategoryInfo, AlertCategory("other"))

	require.Equal(t, CategoryDanger, SeverityCategory("high"))
	require.Equal(t, CategoryWarning, SeverityCategory("medium"))
	require.Equal(t, CategoryInfo, SeverityCategory("low"))

	require.Equal(t, CategorySuccess, TrendCategory("+12%"))
	require.Equal(t, CategoryDanger, TrendCategory("-23%"))
	require.Equal(t, CategoryDanger, TrendCategory(""))

	require.Equal(t, CategoryAccent, SwatchCategory("purple"))
	require.Equal(t, CategoryInfo, SwatchCategory("teal"))
}

func TestInitials(t *testing.T) {
	require.Equal(t, "EJ", Initials("Emily Johnson"))
	require.Equal(t, "RD", Initials("  Robert   Davis "))
	require.Equal(t, "", Initials(""))
}
