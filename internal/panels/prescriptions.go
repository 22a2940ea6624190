package panels

import (
	"fmt"
	"strings"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

type toneStat struct {
	clinic.Stat
	Tone clinic.Category
}

var prescriptionStats = []toneStat{
	{Stat: clinic.Stat{Title: "Prescriptions Validated", Value: "247", Change: "+12% this week"}, Tone: clinic.CategorySuccess},
	{Stat: clinic.Stat{Title: "Critical Interactions", Value: "3", Change: "Requires attention"}, Tone: clinic.CategoryDanger},
	{Stat: clinic.Stat{Title: "Validation Accuracy", Value: "99.2%", Change: "Industry leading"}, Tone: clinic.CategorySuccess},
	{Stat: clinic.Stat{Title: "Avg Compliance Rate", Value: "87%", Change: "+8% improvement"}, Tone: clinic.CategorySuccess},
}

var prescriptions = []clinic.Prescription{
	{ID: 1, Patient: "Emily Johnson", Medication: "Lisinopril 10mg", Prescriber: "Dr. Smith", Status: clinic.RxValidated, RiskLevel: clinic.RiskLow, Interactions: 0, Compliance: 95, Timestamp: "10:30 AM"},
	{ID: 2, Patient: "Michael Brown", Medication: "Warfarin 5mg + Aspirin 81mg", Prescriber: "Dr. Johnson", Status: clinic.RxWarning, RiskLevel: clinic.RiskHigh, Interactions: 1, Compliance: 78, Timestamp: "11:15 AM"},
	{ID: 3, Patient: "Sarah Wilson", Medication: "Metformin 500mg", Prescriber: "Dr. Smith", Status: clinic.RxValidated, RiskLevel: clinic.RiskLow, Interactions: 0, Compliance: 92, Timestamp: "11:45 AM"},
	{ID: 4, Patient: "David Lee", Medication: "Simvastatin 40mg", Prescriber: "Dr. Chen", Status: clinic.RxFlagged, RiskLevel: clinic.RiskMedium, Interactions: 2, Compliance: 65, Timestamp: "12:20 PM"},
}

var prescriptionAlerts = []clinic.DrugAlert{
	{Type: "interaction", Message: "Drug Interaction: Warfarin + Aspirin may increase bleeding risk", Patient: "Michael Brown", Severity: "high", Recommendation: "Consider alternative anticoagulation or reduce dosage"},
	{Type: "allergy", Message: "Allergy Alert: Patient allergic to Penicillin derivatives", Patient: "David Lee", Severity: "high", Recommendation: "Switch to non-penicillin antibiotic"},
	{Type: "dosage", Message: "Dosage Warning: Exceeds recommended maximum for patient weight", Patient: "Sarah Wilson", Severity: "medium", Recommendation: "Reduce dosage to 250mg twice daily"},
}

var drugDatabase = []clinic.DrugEntry{
	{Name: "Warfarin", Interactions: 124},
	{Name: "Simvastatin", Interactions: 67},
	{Name: "Metformin", Interactions: 23},
}

var (
	overallCompliance = clinic.Gauge{Label: "Overall Compliance", Value: "87%", Percent: 87}
	complianceGroups  = []clinic.Summary{
		{Label: "Diabetes medications", Value: "92%"},
		{Label: "Hypertension drugs", Value: "89%"},
		{Label: "Antibiotics", Value: "73%"},
	}
)

type PrescriptionsPanel struct {
	hosted
	queue      *ListPane
	search     *InputPane
	drugSearch *InputPane
}

func NewPrescriptionsPanel() *PrescriptionsPanel {
	p := &PrescriptionsPanel{}
	p.scope = "panel:prescriptions"
	p.search = NewInputPane("search", "Search", "pane:prescriptions:search", 's', "Search prescriptions...", "")
	p.queue = NewListPane("queue", "Recent Prescriptions", "pane:prescriptions:queue", 'r', 0, len(prescriptions), renderPrescriptionRow)
	p.drugSearch = NewInputPane("drug-search", "Drug Search", "pane:prescriptions:drug-search", 'd', "Search drug interactions...", "")
	p.host = NewPaneHost(
		p.search,
		p.queue,
		NewStaticPane("alerts", "Critical Alerts", "pane:prescriptions:alerts", 'a', 0, renderDrugAlerts),
		p.drugSearch,
		NewStaticPane("drugs", "Drug Database", "pane:prescriptions:drugs", 'b', 2*len(drugDatabase)+2, renderDrugDatabase),
		NewStaticPane("compliance", "Compliance Insights", "pane:prescriptions:compliance", 'c', len(complianceGroups)+4, renderCompliance),
	)
	return p
}

func (p *PrescriptionsPanel) ID() nav.PanelID  { return nav.Prescriptions }
func (p *PrescriptionsPanel) Title() string    { return "Smart Prescription & Compliance Advisor" }
func (p *PrescriptionsPanel) Subtitle() string { return "AI-powered prescription validation and drug interaction monitoring" }

// SetSearchText replaces the prescription search text. It never filters the
// list.
func (p *PrescriptionsPanel) SetSearchText(text string) { p.search.SetValue(text) }
func (p *PrescriptionsPanel) SearchText() string        { return p.search.Value() }

// SetDrugSearchText replaces the drug database search text.
func (p *PrescriptionsPanel) SetDrugSearchText(text string) { p.drugSearch.SetValue(text) }
func (p *PrescriptionsPanel) DrugSearchText() string        { return p.drugSearch.Value() }

// SetLocalSelection highlights the prescription with the given id.
func (p *PrescriptionsPanel) SetLocalSelection(id int) {
	idx := -1
	for i, rx := range prescriptions {
		if rx.ID == id {
			idx = i
			break
		}
	}
	p.queue.Select(idx)
}

func (p *PrescriptionsPanel) SelectedPrescription() (clinic.Prescription, bool) {
	i := p.queue.Selected()
	if i < 0 {
		return clinic.Prescription{}, false
	}
	return prescriptions[i], true
}

func (p *PrescriptionsPanel) Prescriptions() []clinic.Prescription {
	return append([]clinic.Prescription(nil), prescriptions...)
}

func (p *PrescriptionsPanel) Build(m *core.Model) widgets.Widget {
	stats := make([]widgets.Widget, 0, len(prescriptionStats))
	for _, s := range prescriptionStats {
		stats = append(stats, noteCard(s.Title, s.Value, s.Change, s.Tone))
	}
	left := widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("search"), Height: 3},
		{Widget: p.host.BuildPane("queue")},
	}}
	right := widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("alerts")},
		{Widget: p.host.BuildPane("drug-search"), Height: 3},
		{Widget: p.host.BuildPane("drugs"), Height: 2*len(drugDatabase) + 2},
		{Widget: p.host.BuildPane("compliance"), Height: len(complianceGroups) + 4},
	}}
	return widgets.Column{Children: []widgets.Sized{
		{Widget: cardRow(stats...), Height: cardHeight},
		{Widget: widgets.HStack{Widgets: []widgets.Widget{left, right}, Ratios: []float64{0.6, 0.4}, Gap: 1}},
	}}
}

func renderPrescriptionRow(i, width int, cursor, selected bool) string {
	rx := prescriptions[i]
	marker := "  "
	if selected {
		marker = core.CategoryStyle(clinic.CategoryInfo).Render("▌ ")
	}
	if cursor {
		marker = core.CategoryStyle(clinic.CategorySuccess).Render("> ")
	}
	badges := core.Badge(strings.ToUpper(string(rx.RiskLevel)), clinic.RiskLevelCategory(rx.RiskLevel)) + " " +
		core.Badge(string(rx.Status), clinic.PrescriptionStatusCategory(rx.Status))
	interactions := clinic.CategorySuccess
	if rx.Interactions > 0 {
		interactions = clinic.CategoryDanger
	}
	inner := max(1, width-2)
	lines := []string{
		marker + labelValue(core.Strong(rx.Patient), badges, inner),
		"  " + rx.Medication,
		"  " + core.Muted("Prescriber: ") + rx.Prescriber +
			core.Muted("  Interactions: ") + core.CategoryStyle(interactions).Render(fmt.Sprintf("%d found", rx.Interactions)) +
			core.Muted("  Compliance: ") + percent(rx.Compliance),
		"  " + core.Muted(rx.Timestamp),
	}
	return strings.Join(lines, "\n")
}

func renderDrugAlerts(width int) string {
	lines := make([]string, 0, len(prescriptionAlerts)*4)
	for _, a := range prescriptionAlerts {
		c := clinic.SeverityCategory(a.Severity)
		msg := widgets.Wrap(a.Message, max(1, width-2))
		lines = append(lines, core.CategoryStyle(c).Render("▲ ")+core.Strong(msg[0]))
		for _, l := range msg[1:] {
			lines = append(lines, "  "+core.Strong(l))
		}
		lines = append(lines, "  "+core.Muted("Patient: "+a.Patient))
		for _, l := range widgets.Wrap("Recommendation: "+a.Recommendation, max(1, width-2)) {
			lines = append(lines, "  "+l)
		}
	}
	return strings.Join(lines, "\n")
}

func renderDrugDatabase(width int) string {
	lines := make([]string, 0, len(drugDatabase)*2)
	for _, d := range drugDatabase {
		lines = append(lines, core.Strong(d.Name), core.Muted(fmt.Sprintf("%d known interactions", d.Interactions)))
	}
	return strings.Join(lines, "\n")
}

func renderCompliance(width int) string {
	lines := gaugeLines(overallCompliance, width, clinic.CategorySuccess)
	for _, g := range complianceGroups {
		lines = append(lines, labelValue(core.Muted(g.Label+":"), core.Strong(g.Value), width))
	}
	return strings.Join(lines, "\n")
}
