package panels

import (
	"fmt"
	"strings"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

var healthMetrics = []clinic.HealthMetric{
	{Title: "Chronic Disease Management", Value: "89%", Trend: "+5.2%", Patients: 156, Color: "blue", Description: "Patients with improved chronic condition outcomes"},
	{Title: "Preventive Care Adherence", Value: "76%", Trend: "+12.1%", Patients: 203, Color: "green", Description: "Patients following preventive care recommendations"},
	{Title: "Risk Score Improvement", Value: "67%", Trend: "+8.7%", Patients: 134, Color: "purple", Description: "Patients with decreased health risk scores"},
	{Title: "Follow-up Completion", Value: "92%", Trend: "+3.4%", Patients: 178, Color: "orange", Description: "Patients completing recommended follow-ups"},
}

var riskPredictions = []clinic.RiskPrediction{
	{Condition: "Diabetes Complications", RiskLevel: clinic.RiskHigh, AffectedPatients: 23, Confidence: 94, Recommendation: "Immediate intervention for HbA1c monitoring"},
	{Condition: "Cardiovascular Events", RiskLevel: clinic.RiskMedium, AffectedPatients: 45, Confidence: 87, Recommendation: "Enhanced lifestyle counseling and medication review"},
	{Condition: "Medication Non-adherence", RiskLevel: clinic.RiskHigh, AffectedPatients: 18, Confidence: 91, Recommendation: "Implement medication reminder systems"},
	{Condition: "Hospital Readmission", RiskLevel: clinic.RiskMedium, AffectedPatients: 34, Confidence: 82, Recommendation: "Strengthen discharge planning and follow-up"},
}

var patientInsights = []clinic.PatientInsight{
	{Category: "At-Risk Patients", Count: 67, Change: "+12", Color: "red"},
	{Category: "Stable Conditions", Count: 189, Change: "+23", Color: "green"},
	{Category: "Needs Follow-up", Count: 42, Change: "-8", Color: "yellow"},
	{Category: "Preventive Care Due", Count: 78, Change: "+15", Color: "blue"},
}

var modelGauges = []struct {
	clinic.Gauge
	Tone clinic.Category
}{
	{Gauge: clinic.Gauge{Label: "Prediction Accuracy", Value: "94.7%", Percent: 94.7}, Tone: clinic.CategorySuccess},
	{Gauge: clinic.Gauge{Label: "Data Processing", Value: "Real-time", Percent: 100}, Tone: clinic.CategoryInfo},
	{Gauge: clinic.Gauge{Label: "Model Training", Value: "15.2K records", Percent: 85}, Tone: clinic.CategoryAccent},
}

var insightActions = []clinic.QuickAction{
	{Title: "Generate Risk Report", Description: "Create comprehensive risk analysis"},
	{Title: "Schedule Interventions", Description: "Auto-schedule high-risk patient follow-ups"},
	{Title: "Export Analytics", Description: "Download detailed insights report"},
}

const modelLastUpdated = "2 minutes ago"

const metricCardHeight = 7

type InsightsPanel struct {
	hosted
}

func NewInsightsPanel() *InsightsPanel {
	p := &InsightsPanel{}
	p.scope = "panel:insights"
	p.host = NewPaneHost(
		NewStaticPane("predictions", "AI Risk Predictions", "pane:insights:predictions", 'p', 0, renderPredictions),
		NewStaticPane("categories", "Patient Categories", "pane:insights:categories", 'c', 0, renderPatientInsights),
		NewStaticPane("model", "Model Performance", "pane:insights:model", 'm', 2*len(modelGauges)+3, renderModelPerformance),
		NewActionPane("actions", "Quick Actions", "pane:insights:actions", 'a', 2*len(insightActions)+2, insightActions),
	)
	return p
}

func (p *InsightsPanel) ID() nav.PanelID  { return nav.Insights }
func (p *InsightsPanel) Title() string    { return "Predictive Health Insights & Analytics" }
func (p *InsightsPanel) Subtitle() string { return "AI-driven patient risk analysis and personalized care recommendations" }

func (p *InsightsPanel) Build(m *core.Model) widgets.Widget {
	metrics := make([]widgets.Widget, 0, len(healthMetrics))
	for _, hm := range healthMetrics {
		metrics = append(metrics, metricCard(hm))
	}
	right := widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("categories")},
		{Widget: p.host.BuildPane("model"), Height: 2*len(modelGauges) + 3},
		{Widget: p.host.BuildPane("actions"), Height: 2*len(insightActions) + 2},
	}}
	return widgets.Column{Children: []widgets.Sized{
		{Widget: cardRow(metrics...), Height: metricCardHeight},
		{Widget: widgets.HStack{
			Widgets: []widgets.Widget{p.host.BuildPane("predictions"), right},
			Ratios:  []float64{0.6, 0.4},
			Gap:     1,
		}},
	}}
}

func metricCard(hm clinic.HealthMetric) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		inner := max(1, width-4)
		swatch := core.CategoryStyle(clinic.SwatchCategory(hm.Color)).Render("■ ")
		lines := []string{
			labelValue(swatch+core.Strong(hm.Value), core.CategoryStyle(clinic.TrendCategory(hm.Trend)).Render(hm.Trend), inner),
			core.Strong(hm.Title),
		}
		lines = append(lines, wrapMuted(hm.Description, inner)...)
		lines = lines[:min(len(lines), metricCardHeight-3)]
		lines = append(lines, core.Muted(fmt.Sprintf("%d patients", hm.Patients)))
		return widgets.Pane{Title: hm.Title, Height: metricCardHeight, Content: strings.Join(lines, "\n")}.Render(width, height)
	})
}

func renderPredictions(width int) string {
	lines := make([]string, 0, len(riskPredictions)*4)
	for _, rp := range riskPredictions {
		badges := core.Muted("Confidence ") + core.CategoryStyle(clinic.CategoryInfo).Bold(true).Render(percent(rp.Confidence)) +
			" " + core.Badge(strings.ToUpper(string(rp.RiskLevel)), clinic.RiskLevelCategory(rp.RiskLevel))
		lines = append(lines,
			labelValue(core.Strong(rp.Condition), badges, width),
			core.Muted(fmt.Sprintf("%d patients at risk", rp.AffectedPatients)),
		)
		for _, l := range widgets.Wrap("Recommendation: "+rp.Recommendation, max(1, width-2)) {
			lines = append(lines, "  "+core.CategoryStyle(clinic.CategoryInfo).Render(l))
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderPatientInsights(width int) string {
	lines := make([]string, 0, len(patientInsights)*2)
	for _, pi := range patientInsights {
		swatch := core.CategoryStyle(clinic.SwatchCategory(pi.Color)).Render("■ ")
		change := core.CategoryStyle(clinic.TrendCategory(pi.Change)).Render(pi.Change)
		lines = append(lines,
			labelValue(swatch+core.Strong(pi.Category), change, width),
			"  "+core.Muted(fmt.Sprintf("%d patients", pi.Count)),
		)
	}
	return strings.Join(lines, "\n")
}

func renderModelPerformance(width int) string {
	lines := make([]string, 0, len(modelGauges)*2+1)
	for _, g := range modelGauges {
		lines = append(lines, gaugeLines(g.Gauge, width, g.Tone)...)
	}
	lines = append(lines, labelValue(core.Muted("Last Updated"), core.CategoryStyle(clinic.CategorySuccess).Render(modelLastUpdated), width))
	return strings.Join(lines, "\n")
}
