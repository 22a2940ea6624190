package panels

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/screens"
)

func newAppModel(t *testing.T) core.Model {
	t.Helper()
	m := core.NewModel(Factories(), core.NewKeyRegistry(core.DefaultKeyBindings()), core.NewCommandRegistry(core.DefaultCommands()),
		core.Chrome{Clinician: "Dr. Smith", Initials: "DS"}, zerolog.Nop())
	m.OpenJumpPickerModal = screens.OpenJumpPickerScreen
	return send(t, m, tea.WindowSizeMsg{Width: 200, Height: 120})
}

func send(t *testing.T, m core.Model, msgs ...tea.Msg) core.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(core.Model)
		require.True(t, ok)
	}
	return m
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func plainView(m core.Model) string {
	return ansi.Strip(m.View())
}

func TestFactoriesCoverEveryNavigationEntry(t *testing.T) {
	factories := Factories()
	require.Len(t, factories, len(nav.Items()))
	for _, it := range nav.Items() {
		f, ok := factories[it.ID]
		require.True(t, ok, "missing factory for %s", it.ID)
		p := f()
		require.Equal(t, it.ID, p.ID())
		require.NotEmpty(t, p.Title())
		require.NotEmpty(t, p.Subtitle())
		require.NotSame(t, p, f(), "factory must build a fresh panel")
	}
}

func TestEndToEndScenario(t *testing.T) {
	m := newAppModel(t)
	require.Equal(t, nav.Dashboard, m.CurrentPanel())
	view := plainView(m)
	require.Contains(t, view, "Active Patients")
	require.Contains(t, view, "247")

	m = send(t, m, keyRune('2'))
	triage, ok := m.Panel().(*TriagePanel)
	require.True(t, ok)
	queue := triage.Queue()
	require.Len(t, queue, 4)
	require.Equal(t, "Emily Johnson", queue[0].Name)
	require.Equal(t, 87, queue[0].RiskScore)

	m = send(t, m, enter(), enter())
	pt, ok := triage.SelectedPatient()
	require.True(t, ok)
	require.Equal(t, "Emily Johnson", pt.Name)
	require.Len(t, triage.Chat(), 5)
	require.Equal(t, triageChat, triage.Chat())

	m = send(t, m, keyRune('6'), keyRune('v'))
	workflow, ok := m.Panel().(*WorkflowPanel)
	require.True(t, ok)
	require.Equal(t, 1, m.Screens())
	next, cmd := m.Update(keyRune('w'))
	m = next.(core.Model)
	require.NotNil(t, cmd)
	m = send(t, m, cmd(), enter())
	step, ok := workflow.SelectedStep()
	require.True(t, ok)
	require.Equal(t, clinic.StepMetrics{Processed: 247, AvgTime: "2 min", Efficiency: 95}, step.Metrics)

	view = plainView(m)
	require.Contains(t, view, "Patients Processed:")
	require.Contains(t, view, "2 min")
	require.Contains(t, view, "95%")
}

func TestPanelsRenderEveryRow(t *testing.T) {
	m := newAppModel(t)

	view := plainView(send(t, m, keyRune('2')))
	require.Equal(t, len(triageQueue), strings.Count(view, "Risk: "))
	for _, pt := range triageQueue {
		require.Contains(t, view, pt.Name)
		require.Contains(t, view, fmt.Sprintf("Risk: %d", pt.RiskScore))
	}

	view = plainView(send(t, m, keyRune('3')))
	require.Equal(t, len(appointments), strings.Count(view, appointmentRoom+"   "+appointmentPhysician))

	view = plainView(send(t, m, keyRune('4')))
	require.Equal(t, len(prescriptions), strings.Count(view, " found"))
	for _, rx := range prescriptions {
		require.Contains(t, view, rx.Medication)
	}
}

func TestTriageRowsKeepRiskScoreWhenNarrow(t *testing.T) {
	m := newAppModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, keyRune('2'))
	view := plainView(m)
	require.Contains(t, view, "Robert Davis")
	require.Contains(t, view, "Risk: 92")
	require.Contains(t, view, "Risk: 87")
}

func TestSwitchingPanelsResetsLocalState(t *testing.T) {
	m := newAppModel(t)
	m = send(t, m, keyRune('2'), enter(), keyRune('j'), enter())
	triage := m.Panel().(*TriagePanel)
	pt, ok := triage.SelectedPatient()
	require.True(t, ok)
	require.Equal(t, "Michael Chen", pt.Name)

	m = send(t, m, keyRune('4'), keyRune('2'))
	fresh := m.Panel().(*TriagePanel)
	require.NotSame(t, triage, fresh)
	_, ok = fresh.SelectedPatient()
	require.False(t, ok)
}

func TestChatInputCapturesGlobalKeys(t *testing.T) {
	m := newAppModel(t)
	m = send(t, m, keyRune('2'))
	triage := m.Panel().(*TriagePanel)
	_, _ = triage.JumpToTarget(&m, "i")
	require.True(t, triage.CapturingText())

	m = send(t, m, keyRune('q'), keyRune('3'), enter())
	require.Equal(t, nav.Triage, m.CurrentPanel(), "typing digits must not switch panels")
	require.Equal(t, "q3", triage.ChatInput())
	require.Len(t, triage.Chat(), 5)
	require.Len(t, triage.Queue(), 4)
	status, _ := m.Status()
	require.Equal(t, "Send (preview only)", status)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, keyRune('3'))
	require.Equal(t, nav.Appointments, m.CurrentPanel())
}

func TestTriageSelectionOnlyChangesDetails(t *testing.T) {
	p := NewTriagePanel()
	before := p.Queue()
	p.SetLocalSelection(4)
	pt, ok := p.SelectedPatient()
	require.True(t, ok)
	require.Equal(t, "Robert Davis", pt.Name)
	require.Equal(t, before, p.Queue())
	require.Contains(t, ansi.Strip(p.renderDetails(60)), "160/95")

	p.SetLocalSelection(99)
	_, ok = p.SelectedPatient()
	require.False(t, ok)
	p.SetChatInput("It hurts")
	require.Equal(t, "It hurts", p.ChatInput())
	require.Equal(t, triageChat, p.Chat())
}

func TestAppointmentsDateDefaultsToToday(t *testing.T) {
	day := time.Date(2026, time.March, 4, 15, 0, 0, 0, time.UTC)
	p := newAppointmentsPanel(day)
	require.Equal(t, "2026-03-04", p.Date())

	before := p.Appointments()
	p.SetDate("2026-12-25")
	require.Equal(t, "2026-12-25", p.Date())
	require.Equal(t, before, p.Appointments())

	p.SetLocalSelection(3)
	a, ok := p.SelectedAppointment()
	require.True(t, ok)
	require.Equal(t, "Emma Wilson", a.Patient)
	require.Equal(t, clinic.StatusPending, a.Status)
}

func TestAppointmentsDateUsesUTCCalendarDay(t *testing.T) {
	before := time.Now().UTC().Format(dateLayout)
	got := NewAppointmentsPanel().Date()
	after := time.Now().UTC().Format(dateLayout)
	require.Contains(t, []string{before, after}, got)
}

func TestAppointmentRowsShowFixedRoomAndPhysician(t *testing.T) {
	for i := range appointments {
		row := ansi.Strip(renderAppointmentRow(i, 100, false, false))
		require.Contains(t, row, appointmentRoom)
		require.Contains(t, row, appointmentPhysician)
		require.Contains(t, row, appointments[i].Patient)
	}
}

func TestPrescriptionSearchNeverFilters(t *testing.T) {
	p := NewPrescriptionsPanel()
	before := p.Prescriptions()
	p.SetSearchText("warfarin")
	p.SetDrugSearchText("zzz")
	require.Equal(t, "warfarin", p.SearchText())
	require.Equal(t, "zzz", p.DrugSearchText())
	require.Equal(t, before, p.Prescriptions())
	require.Len(t, p.Prescriptions(), 4)
	require.Contains(t, ansi.Strip(renderDrugDatabase(40)), "124 known interactions")

	p.SetLocalSelection(2)
	rx, ok := p.SelectedPrescription()
	require.True(t, ok)
	require.Equal(t, clinic.RiskHigh, rx.RiskLevel)
}

func TestDashboardShowsFixedFigures(t *testing.T) {
	m := newAppModel(t)
	view := plainView(m)
	for _, want := range []string{"Appointments Today", "Patient Triage AI", "97.3%", systemStatus, "John D."} {
		require.Contains(t, view, want)
	}
}

func TestDashboardRefreshIsDisplayOnly(t *testing.T) {
	m := newAppModel(t)
	dash := m.Panel().(*DashboardPanel)
	_, _ = dash.JumpToTarget(&m, "r")
	m = send(t, m, enter())
	status, isErr := m.Status()
	require.False(t, isErr)
	require.Equal(t, "Refresh (preview only)", status)
	require.Equal(t, nav.Dashboard, m.CurrentPanel())
}

func TestInsightsRenderStaticData(t *testing.T) {
	m := newAppModel(t)
	m = send(t, m, keyRune('5'))
	require.IsType(t, &InsightsPanel{}, m.Panel())
	view := plainView(m)
	for _, want := range []string{"Diabetes Complications", "At-Risk Patients", "Prediction Accuracy", modelLastUpdated} {
		require.Contains(t, view, want)
	}
}

func TestWorkflowGraphIsFixed(t *testing.T) {
	p := NewWorkflowPanel()
	steps := p.Steps()
	require.Len(t, steps, 12)
	require.Len(t, p.Connections(), 14)
	ids := map[string]bool{}
	for _, s := range steps {
		ids[s.ID] = true
	}
	for _, c := range p.Connections() {
		require.True(t, ids[c.From], "unknown from %q", c.From)
		require.True(t, ids[c.To], "unknown to %q", c.To)
	}

	_, ok := p.SelectedStep()
	require.False(t, ok)
	require.Contains(t, ansi.Strip(p.renderDetails(200)), workflowHint)

	p.SetLocalSelection("urgent_case")
	step, ok := p.SelectedStep()
	require.True(t, ok)
	require.Equal(t, 58, step.Metrics.Processed)
	details := ansi.Strip(p.renderDetails(60))
	require.Contains(t, details, "immediate_consult")
	require.Contains(t, details, "scheduling")
	require.Len(t, p.Steps(), 12)

	p.SetLocalSelection("nope")
	_, ok = p.SelectedStep()
	require.False(t, ok)
}

func TestWorkflowChartDrawsEveryStep(t *testing.T) {
	chart := renderChart(120, 30, 0, true, 2)
	lines := strings.Split(chart, "\n")
	require.Len(t, lines, 30)
	plain := ansi.Strip(chart)
	require.Contains(t, plain, "›")
	require.Equal(t, len(workflowSteps), strings.Count(plain, "╭")+strings.Count(plain, "┏"))
	require.Contains(t, plain, "checkin → triage")
}

func TestWorkflowChartKeysMoveStepCursor(t *testing.T) {
	m := newAppModel(t)
	m = send(t, m, keyRune('6'))
	wf := m.Panel().(*WorkflowPanel)
	_, _ = wf.JumpToTarget(&m, "w")
	m = send(t, m, keyRune('j'), keyRune('j'), enter())
	step, ok := wf.SelectedStep()
	require.True(t, ok)
	require.Equal(t, "scheduling", step.ID)
	status, _ := m.Status()
	require.Equal(t, "Selected step: "+step.Title, status)
}
