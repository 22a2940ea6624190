package panels

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

var workflowSteps = []clinic.WorkflowStep{
	{ID: "checkin", Title: "Patient Check-in", Description: "Patients arrive and check in at the front desk", Type: clinic.StepStart,
		Position: clinic.Position{X: 100, Y: 100}, Metrics: clinic.StepMetrics{Processed: 247, AvgTime: "2 min", Efficiency: 95}},
	{ID: "triage", Title: "AI-powered Symptom Assessment", Description: "Conversational AI collects patient symptoms and medical history", Type: clinic.StepAI,
		Position: clinic.Position{X: 350, Y: 100}, Metrics: clinic.StepMetrics{Processed: 247, AvgTime: "5 min", Efficiency: 97}},
	{ID: "scheduling", Title: "AI-assisted Triage & Appointment Scheduling", Description: "AI prioritizes patients and optimizes appointment scheduling", Type: clinic.StepAI,
		Position: clinic.Position{X: 600, Y: 100}, Metrics: clinic.StepMetrics{Processed: 247, AvgTime: "1 min", Efficiency: 89}},
	{ID: "virtual_coding", Title: "Virtual Coding Assistant", Description: "AI assists with medical coding and documentation", Type: clinic.StepAI,
		Position: clinic.Position{X: 850, Y: 100}, Metrics: clinic.StepMetrics{Processed: 156, AvgTime: "3 min", Efficiency: 94}},
	{ID: "non_urgent", Title: "Non-Urgent Case", Description: "Standard consultation pathway for non-urgent patients", Type: clinic.StepStandard,
		Position: clinic.Position{X: 250, Y: 300}, Metrics: clinic.StepMetrics{Processed: 189, AvgTime: "25 min", Efficiency: 92}},
	{ID: "urgent_case", Title: "Urgent Case", Description: "Fast-track pathway for urgent medical cases", Type: clinic.StepUrgent,
		Position: clinic.Position{X: 650, Y: 300}, Metrics: clinic.StepMetrics{Processed: 58, AvgTime: "8 min", Efficiency: 96}},
	{ID: "consultation", Title: "Consultation with Physician", Description: "AI-informed diagnosis & treatment suggestions", Type: clinic.StepConsultation,
		Position: clinic.Position{X: 150, Y: 450}, Metrics: clinic.StepMetrics{Processed: 189, AvgTime: "15 min", Efficiency: 93}},
	{ID: "immediate_consult", Title: "Immediate Physician Consultation", Description: "Emergency consultation for urgent cases", Type: clinic.StepUrgent,
		Position: clinic.Position{X: 550, Y: 450}, Metrics: clinic.StepMetrics{Processed: 58, AvgTime: "5 min", Efficiency: 98}},
	{ID: "diagnostic", Title: "AI-supported Diagnostic Imaging/Lab Tests", Description: "AI assists with diagnostic test interpretation", Type: clinic.StepAI,
		Position: clinic.Position{X: 750, Y: 450}, Metrics: clinic.StepMetrics{Processed: 98, AvgTime: "12 min", Efficiency: 91}},
	{ID: "prescription", Title: "Automated Prescription & Follow-up Reminders", Description: "AI validates prescriptions and sets follow-up reminders", Type: clinic.StepAI,
		Position: clinic.Position{X: 350, Y: 600}, Metrics: clinic.StepMetrics{Processed: 167, AvgTime: "2 min", Efficiency: 99}},
	{ID: "data_analysis", Title: "AI-driven Data Analysis & Personalized Health Recommendations", Description: "Machine learning provides personalized care insights", Type: clinic.StepAI,
		Position: clinic.Position{X: 150, Y: 750}, Metrics: clinic.StepMetrics{Processed: 247, AvgTime: "1 min", Efficiency: 95}},
	{ID: "discharge", Title: "Patient Discharge & Ongoing Monitoring", Description: "Patient care continues with AI-powered monitoring", Type: clinic.StepEnd,
		Position: clinic.Position{X: 550, Y: 750}, Metrics: clinic.StepMetrics{Processed: 247, AvgTime: "3 min", Efficiency: 94}},
}

var workflowConnections = []clinic.Connection{
	{From: "checkin", To: "triage"},
	{From: "triage", To: "scheduling"},
	{From: "scheduling", To: "virtual_coding"},
	{From: "scheduling", To: "non_urgent"},
	{From: "scheduling", To: "urgent_case"},
	{From: "non_urgent", To: "consultation"},
	{From: "urgent_case", To: "immediate_consult"},
	{From: "urgent_case", To: "diagnostic"},
	{From: "consultation", To: "prescription"},
	{From: "immediate_consult", To: "prescription"},
	{From: "diagnostic", To: "prescription"},
	{From: "prescription", To: "data_analysis"},
	{From: "prescription", To: "discharge"},
	{From: "data_analysis", To: "discharge"},
}

var legendOrder = []clinic.StepType{
	clinic.StepStart, clinic.StepAI, clinic.StepUrgent, clinic.StepConsultation, clinic.StepStandard, clinic.StepEnd,
}

var workflowPerformance = []clinic.Summary{
	{Label: "Total Patients", Value: "247"},
	{Label: "Avg Patient Journey", Value: "42 minutes"},
	{Label: "AI Interventions", Value: "156"},
	{Label: "Workflow Efficiency", Value: "94.2%"},
}

var workflowActions = []clinic.QuickAction{
	{Title: "Export Workflow Report"},
}

const workflowHint = "Click on any workflow step to view detailed metrics and information"

const (
	stepBoxHeight = 3
	tierGap       = 1
)

type WorkflowPanel struct {
	hosted
	chart *chartPane
}

func NewWorkflowPanel() *WorkflowPanel {
	p := &WorkflowPanel{}
	p.scope = "panel:workflow"
	p.chart = &chartPane{ListPane: NewListPane("steps", "Workflow", "pane:workflow:steps", 'w', 0, len(workflowSteps), nil)}
	p.chart.OnSelect(func(m *core.Model, i int) {
		m.SetStatus("Selected step: " + workflowSteps[i].Title)
	})
	p.host = NewPaneHost(
		NewStaticPane("legend", "Workflow Legend", "pane:workflow:legend", 'l', 3, renderLegend),
		p.chart,
		NewStaticPane("details", "Step Details", "pane:workflow:details", 'd', 0, p.renderDetails),
		NewStaticPane("performance", "Today's Performance", "pane:workflow:performance", 'p', len(workflowPerformance)+2, renderWorkflowPerformance),
		NewActionPane("actions", "Report", "pane:workflow:actions", 'r', 3, workflowActions),
	)
	return p
}

func (p *WorkflowPanel) ID() nav.PanelID  { return nav.Workflow }
func (p *WorkflowPanel) Title() string    { return "Smart Clinic Workflow Visualization" }
func (p *WorkflowPanel) Subtitle() string { return "Interactive flowchart showing AI-optimized patient journey" }

// SetLocalSelection selects the step with the given id. Unknown ids clear
// the selection and bring back the hint.
func (p *WorkflowPanel) SetLocalSelection(id string) {
	p.chart.Select(indexOfStep(id))
}

func (p *WorkflowPanel) SelectedStep() (clinic.WorkflowStep, bool) {
	i := p.chart.Selected()
	if i < 0 {
		return clinic.WorkflowStep{}, false
	}
	return workflowSteps[i], true
}

func (p *WorkflowPanel) Steps() []clinic.WorkflowStep {
	return slices.Clone(workflowSteps)
}

func (p *WorkflowPanel) Connections() []clinic.Connection {
	return slices.Clone(workflowConnections)
}

func (p *WorkflowPanel) Build(m *core.Model) widgets.Widget {
	side := widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("details")},
		{Widget: p.host.BuildPane("performance"), Height: len(workflowPerformance) + 2},
		{Widget: p.host.BuildPane("actions"), Height: 3},
	}}
	return widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("legend"), Height: 3},
		{Widget: widgets.HStack{
			Widgets: []widgets.Widget{p.host.BuildPane("steps"), side},
			Ratios:  []float64{0.7, 0.3},
			Gap:     1,
		}},
	}}
}

// chartPane reuses the list cursor and selection but draws the steps at
// their scaled positions instead of as rows.
type chartPane struct {
	*ListPane
}

func (c *chartPane) View(width, height int, selected, focused bool) string {
	inner := max(1, width-4)
	rows := max(1, height-2)
	canvas := renderChart(inner, rows, c.Cursor(), focused, c.Selected())
	return widgets.Pane{Title: c.Title(), Content: canvas, Selected: selected, Focused: focused}.Render(width, height)
}

// renderChart maps step positions onto a character grid. Each distinct Y
// becomes a tier of boxes; X is scaled to the available width.
func renderChart(width, height, cursor int, focused bool, selected int) string {
	tiers := stepTiers()
	boxW := min(22, max(8, width/4))
	minX, maxX := stepXRange()
	span := max(1, maxX-minX)
	canvas := strings.Repeat("\n", max(0, height-1))
	for i, step := range workflowSteps {
		x := (step.Position.X - minX) * max(0, width-boxW) / span
		y := slices.Index(tiers, step.Position.Y) * (stepBoxHeight + tierGap)
		if y+stepBoxHeight > height {
			continue
		}
		box := stepBox(step, boxW, focused && i == cursor, i == selected)
		canvas = widgets.Place(canvas, box, x, y, width, height)
	}
	used := len(tiers) * (stepBoxHeight + tierGap)
	if flow := renderFlow(width); used < height {
		lines := strings.Split(widgets.FitHeight(canvas, height), "\n")
		for i, l := range strings.Split(flow, "\n") {
			if used+i >= height {
				break
			}
			lines[used+i] = l
		}
		canvas = strings.Join(lines, "\n")
	}
	return canvas
}

func stepBox(step clinic.WorkflowStep, width int, cursor, selected bool) string {
	border := lipgloss.RoundedBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(core.CategoryColor(clinic.StepTypeCategory(step.Type))).
		Width(width - 2)
	label := fmt.Sprintf("%d %s", step.Metrics.Processed, step.Title)
	if cursor {
		label = "› " + label
	}
	label = ansi.Truncate(label, width-2, "…")
	if cursor || selected {
		label = core.Strong(label)
	}
	return style.Render(label)
}

// renderFlow lists the connections as compact arrows below the chart.
func renderFlow(width int) string {
	parts := make([]string, 0, len(workflowConnections))
	for _, c := range workflowConnections {
		parts = append(parts, c.From+" → "+c.To)
	}
	lines := widgets.Wrap(strings.Join(parts, ",  "), max(1, width))
	for i, l := range lines {
		lines[i] = core.Muted(l)
	}
	return strings.Join(lines, "\n")
}

func stepTiers() []int {
	tiers := make([]int, 0, len(workflowSteps))
	for _, s := range workflowSteps {
		if !slices.Contains(tiers, s.Position.Y) {
			tiers = append(tiers, s.Position.Y)
		}
	}
	slices.Sort(tiers)
	return tiers
}

func stepXRange() (int, int) {
	minX, maxX := workflowSteps[0].Position.X, workflowSteps[0].Position.X
	for _, s := range workflowSteps[1:] {
		minX = min(minX, s.Position.X)
		maxX = max(maxX, s.Position.X)
	}
	return minX, maxX
}

func renderLegend(width int) string {
	parts := make([]string, 0, len(legendOrder))
	for _, t := range legendOrder {
		parts = append(parts, core.CategoryStyle(clinic.StepTypeCategory(t)).Render("■ ")+clinic.StepTypeLabel(t))
	}
	return ansi.Truncate(strings.Join(parts, "   "), width, "")
}

func (p *WorkflowPanel) renderDetails(width int) string {
	step, ok := p.SelectedStep()
	if !ok {
		return strings.Join(wrapMuted(workflowHint, width), "\n")
	}
	c := clinic.StepTypeCategory(step.Type)
	lines := make([]string, 0, 12)
	for _, l := range widgets.Wrap(step.Title, max(1, width-2)) {
		lines = append(lines, core.CategoryStyle(c).Bold(true).Render("■ "+l))
	}
	lines = append(lines, wrapMuted(step.Description, width)...)
	lines = append(lines,
		"",
		labelValue(core.Muted("Patients Processed:"), core.Strong(fmt.Sprintf("%d", step.Metrics.Processed)), width),
		labelValue(core.Muted("Avg Processing Time:"), core.Strong(step.Metrics.AvgTime), width),
		labelValue(core.Muted("Efficiency Score:"), core.CategoryStyle(clinic.CategorySuccess).Render(percent(step.Metrics.Efficiency)), width),
	)
	perf := clinic.Gauge{Label: "Performance", Value: percent(step.Metrics.Efficiency), Percent: float64(step.Metrics.Efficiency)}
	lines = append(lines, gaugeLines(perf, width, clinic.CategorySuccess)...)
	if in, out := stepEdges(step.ID); len(in)+len(out) > 0 {
		if len(in) > 0 {
			lines = append(lines, core.Muted("From: ")+strings.Join(in, ", "))
		}
		if len(out) > 0 {
			lines = append(lines, core.Muted("Next: ")+strings.Join(out, ", "))
		}
	}
	return strings.Join(lines, "\n")
}

func stepEdges(id string) (in, out []string) {
	for _, c := range workflowConnections {
		if c.To == id {
			in = append(in, c.From)
		}
		if c.From == id {
			out = append(out, c.To)
		}
	}
	return in, out
}

func renderWorkflowPerformance(width int) string {
	tones := map[string]clinic.Category{
		"AI Interventions":    clinic.CategoryAccent,
		"Workflow Efficiency": clinic.CategorySuccess,
	}
	lines := make([]string, 0, len(workflowPerformance))
	for _, s := range workflowPerformance {
		value := core.Strong(s.Value)
		if c, ok := tones[s.Label]; ok {
			value = core.CategoryStyle(c).Bold(true).Render(s.Value)
		}
		lines = append(lines, labelValue(core.Muted(s.Label+":"), value, width))
	}
	return strings.Join(lines, "\n")
}

func indexOfStep(id string) int {
	return slices.IndexFunc(workflowSteps, func(s clinic.WorkflowStep) bool { return s.ID == id })
}
