package panels

import (
	"strings"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

var dashboardStats = []clinic.Stat{
	{Title: "Active Patients", Value: "247", Change: "+12%"},
	{Title: "Appointments Today", Value: "42", Change: "+8%"},
	{Title: "Avg. Wait Time", Value: "8 min", Change: "-23%"},
	{Title: "Patient Satisfaction", Value: "94%", Change: "+5%"},
}

var dashboardModules = []clinic.AIModule{
	{Name: "Patient Triage AI", Status: "active", Processed: "156 patients", Accuracy: "97.3%"},
	{Name: "Appointment Optimizer", Status: "active", Processed: "42 appointments", Accuracy: "89.1%"},
	{Name: "Prescription Validator", Status: "active", Processed: "73 prescriptions", Accuracy: "99.8%"},
	{Name: "Documentation AI", Status: "active", Processed: "28 reports", Accuracy: "94.7%"},
}

var dashboardAlerts = []clinic.Alert{
	{Type: clinic.AlertUrgent, Message: "High-risk patient flagged for immediate attention", Time: "2 minutes ago", Patient: "John D."},
	{Type: clinic.AlertWarning, Message: "Potential drug interaction detected", Time: "5 minutes ago", Patient: "Sarah M."},
	{Type: clinic.AlertInfo, Message: "Appointment rescheduled automatically", Time: "12 minutes ago", Patient: "Mike R."},
}

var dashboardGauges = []clinic.Gauge{
	{Label: "CPU Usage", Value: "23%", Percent: 23},
	{Label: "Memory Usage", Value: "67%", Percent: 67},
	{Label: "AI Model Load", Value: "45%", Percent: 45},
}

var dashboardActions = []clinic.QuickAction{
	{Title: "Refresh", Description: "Reload dashboard figures"},
}

const systemStatus = "All Systems Operational"

type DashboardPanel struct {
	hosted
}

func NewDashboardPanel() *DashboardPanel {
	p := &DashboardPanel{}
	p.scope = "panel:dashboard"
	p.host = NewPaneHost(
		NewStaticPane("modules", "AI Modules Performance", "pane:dashboard:modules", 'm', 0, renderModules),
		NewStaticPane("alerts", "Recent Alerts", "pane:dashboard:alerts", 'a', 0, renderAlerts),
		NewStaticPane("performance", "System Performance", "pane:dashboard:performance", 'p', 0, renderPerformance),
		NewActionPane("actions", "Actions", "pane:dashboard:actions", 'r', 0, dashboardActions),
	)
	return p
}

func (p *DashboardPanel) ID() nav.PanelID  { return nav.Dashboard }
func (p *DashboardPanel) Title() string    { return "Dashboard" }
func (p *DashboardPanel) Subtitle() string { return "Real-time clinic performance and AI insights" }

func (p *DashboardPanel) Build(m *core.Model) widgets.Widget {
	stats := make([]widgets.Widget, 0, len(dashboardStats))
	for _, s := range dashboardStats {
		stats = append(stats, card(s.Title, s.Value, s.Change))
	}
	middle := widgets.HStack{
		Widgets: []widgets.Widget{p.host.BuildPane("modules"), p.host.BuildPane("alerts")},
		Ratios:  []float64{0.55, 0.45},
		Gap:     1,
	}
	bottom := widgets.HStack{
		Widgets: []widgets.Widget{p.host.BuildPane("performance"), p.host.BuildPane("actions")},
		Ratios:  []float64{0.7, 0.3},
		Gap:     1,
	}
	return widgets.Column{Children: []widgets.Sized{
		{Widget: cardRow(stats...), Height: cardHeight},
		{Widget: middle},
		{Widget: bottom, Height: 2*len(dashboardGauges) + 4},
	}}
}

func renderModules(width int) string {
	lines := make([]string, 0, len(dashboardModules)*2)
	for _, mod := range dashboardModules {
		status := core.Badge(mod.Status, clinic.CategorySuccess)
		lines = append(lines,
			labelValue(core.Strong(mod.Name), status, width),
			labelValue(core.Muted(mod.Processed), "Accuracy "+core.Strong(mod.Accuracy), width),
		)
	}
	return strings.Join(lines, "\n")
}

func renderAlerts(width int) string {
	lines := make([]string, 0, len(dashboardAlerts)*3)
	for _, a := range dashboardAlerts {
		c := clinic.AlertCategory(a.Type)
		msg := widgets.Wrap(a.Message, max(1, width-2))
		lines = append(lines, core.CategoryStyle(c).Render("● ")+msg[0])
		for _, l := range msg[1:] {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "  "+core.Muted(a.Patient+" · "+a.Time))
	}
	return strings.Join(lines, "\n")
}

func renderPerformance(width int) string {
	lines := make([]string, 0, len(dashboardGauges)*2+1)
	for _, g := range dashboardGauges {
		lines = append(lines, gaugeLines(g, width, clinic.CategoryInfo)...)
	}
	lines = append(lines, core.CategoryStyle(clinic.CategorySuccess).Render("● "+systemStatus))
	return strings.Join(lines, "\n")
}
