package panels

import (
	"fmt"
	"strings"

	"github.com/jask/clinicflow/internal/clinic"
	"github.com/jask/clinicflow/internal/core"
	"github.com/jask/clinicflow/internal/nav"
	"github.com/jask/clinicflow/internal/widgets"
)

// Queue order is literal; the caption claims a risk sort the data does not
// have, and the list is never re-sorted.
var triageQueue = []clinic.TriagePatient{
	{ID: 1, Name: "Emily Johnson", Age: 34, Symptoms: "Chest pain, shortness of breath", Priority: clinic.PriorityUrgent, RiskScore: 87, EstimatedWait: "5 min",
		Vitals: clinic.Vitals{Temp: "99.2°F", BP: "140/90", HR: "102 bpm"}},
	{ID: 2, Name: "Michael Chen", Age: 28, Symptoms: "Fever, cough, fatigue", Priority: clinic.PriorityModerate, RiskScore: 54, EstimatedWait: "25 min",
		Vitals: clinic.Vitals{Temp: "101.5°F", BP: "120/80", HR: "88 bpm"}},
	{ID: 3, Name: "Sarah Williams", Age: 45, Symptoms: "Headache, nausea", Priority: clinic.PriorityLow, RiskScore: 23, EstimatedWait: "45 min",
		Vitals: clinic.Vitals{Temp: "98.6°F", BP: "118/75", HR: "72 bpm"}},
	{ID: 4, Name: "Robert Davis", Age: 67, Symptoms: "Dizziness, confusion", Priority: clinic.PriorityUrgent, RiskScore: 92, EstimatedWait: "2 min",
		Vitals: clinic.Vitals{Temp: "97.8°F", BP: "160/95", HR: "110 bpm"}},
}

var triageChat = []clinic.ChatMessage{
	{Speaker: clinic.SpeakerAI, Text: "Hello! I'm your AI Triage Assistant. Can you please describe your symptoms?"},
	{Speaker: clinic.SpeakerPatient, Text: "I've been having chest pain and feeling short of breath for the past hour."},
	{Speaker: clinic.SpeakerAI, Text: "I understand. On a scale of 1-10, how would you rate your chest pain?"},
	{Speaker: clinic.SpeakerPatient, Text: "About 7 or 8. It's pretty intense."},
	{Speaker: clinic.SpeakerAI, Text: "Thank you. Based on your symptoms, I'm flagging this as urgent. A physician will see you shortly."},
}

var triageAnalysis = []clinic.Summary{
	{Label: "Symptom Severity", Value: "High (8/10)"},
	{Label: "Urgency Level", Value: "Immediate"},
	{Label: "Confidence", Value: "97.3%"},
}

const (
	triageCaption       = "AI Sorted by Risk Score"
	triageAnalysisTitle = "High Risk Detected"
	triageAnalysisText  = "Chest pain with shortness of breath requires immediate attention. Possible cardiac event."
)

type TriagePanel struct {
	hosted
	queue *ListPane
	input *InputPane
}

func NewTriagePanel() *TriagePanel {
	p := &TriagePanel{}
	p.scope = "panel:triage"
	p.queue = NewListPane("queue", "Patient Queue", "pane:triage:queue", 'q', 0, len(triageQueue), renderTriageRow).
		WithCaption(func(width int) string { return core.CategoryStyle(clinic.CategoryAccent).Render("✦ " + triageCaption) }).
		OnSelect(func(m *core.Model, i int) {
			m.SetStatus("Selected patient: " + triageQueue[i].Name)
		})
	p.input = NewInputPane("input", "Patient Response", "pane:triage:input", 'i', "Type patient response...", "Send").
		OnSubmit(func(m *core.Model, value string) { pressAction(m, "Send") })
	p.host = NewPaneHost(
		p.queue,
		NewStaticPane("details", "Patient Details", "pane:triage:details", 'd', 0, p.renderDetails),
		NewStaticPane("chat", "AI Triage Chat", "pane:triage:chat", 'c', 0, renderChat),
		p.input,
		NewStaticPane("analysis", "AI Analysis", "pane:triage:analysis", 'a', 0, renderAnalysis),
	)
	return p
}

func (p *TriagePanel) ID() nav.PanelID  { return nav.Triage }
func (p *TriagePanel) Title() string    { return "AI-Powered Patient Triage" }
func (p *TriagePanel) Subtitle() string { return "Intelligent symptom analysis and prioritization system" }

// SetLocalSelection highlights the queue entry with the given patient id.
// Unknown ids clear the selection.
func (p *TriagePanel) SetLocalSelection(id int) {
	p.queue.Select(indexOfPatient(id))
}

// SetChatInput replaces the chat field text. The conversation is unaffected.
func (p *TriagePanel) SetChatInput(text string) {
	p.input.SetValue(text)
}

func (p *TriagePanel) ChatInput() string { return p.input.Value() }

// Queue returns the entries in display order.
func (p *TriagePanel) Queue() []clinic.TriagePatient {
	return append([]clinic.TriagePatient(nil), triageQueue...)
}

func (p *TriagePanel) Chat() []clinic.ChatMessage {
	return append([]clinic.ChatMessage(nil), triageChat...)
}

func (p *TriagePanel) SelectedPatient() (clinic.TriagePatient, bool) {
	i := p.queue.Selected()
	if i < 0 {
		return clinic.TriagePatient{}, false
	}
	return triageQueue[i], true
}

func (p *TriagePanel) Build(m *core.Model) widgets.Widget {
	left := widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("queue")},
		{Widget: p.host.BuildPane("details"), Height: 8},
	}}
	right := widgets.Column{Children: []widgets.Sized{
		{Widget: p.host.BuildPane("chat")},
		{Widget: p.host.BuildPane("input"), Height: 3},
		{Widget: p.host.BuildPane("analysis"), Height: 9},
	}}
	return widgets.HStack{Widgets: []widgets.Widget{left, right}, Ratios: []float64{0.6, 0.4}, Gap: 1}
}

func renderTriageRow(i, width int, cursor, selected bool) string {
	pt := triageQueue[i]
	marker := "  "
	if selected {
		marker = core.CategoryStyle(clinic.CategoryInfo).Render("▌ ")
	}
	if cursor {
		marker = core.CategoryStyle(clinic.CategorySuccess).Render("> ")
	}
	avatar := core.Badge(clinic.Initials(pt.Name), clinic.CategoryAccent)
	name := avatar + " " + core.Strong(pt.Name) + core.Muted(fmt.Sprintf("  Age: %d", pt.Age))
	badges := core.Badge(strings.ToUpper(string(pt.Priority)), clinic.PriorityCategory(pt.Priority)) + " " +
		core.CategoryStyle(clinic.RiskScoreCategory(pt.RiskScore)).Bold(true).Render(fmt.Sprintf("Risk: %d", pt.RiskScore))
	inner := max(1, width-2)
	lines := []string{
		marker + labelValue(name, badges, inner),
		"  " + pt.Symptoms,
		"  " + core.Muted(fmt.Sprintf("%s · %s · %s   Estimated wait: %s", pt.Vitals.Temp, pt.Vitals.HR, pt.Vitals.BP, pt.EstimatedWait)),
	}
	return strings.Join(lines, "\n")
}

func (p *TriagePanel) renderDetails(width int) string {
	pt, ok := p.SelectedPatient()
	if !ok {
		return strings.Join(wrapMuted("Select a patient in the queue to view details", width), "\n")
	}
	rows := []clinic.Summary{
		{Label: "Patient", Value: fmt.Sprintf("%s (%d)", pt.Name, pt.Age)},
		{Label: "Symptoms", Value: pt.Symptoms},
		{Label: "Priority", Value: string(pt.Priority)},
		{Label: "Risk Score", Value: fmt.Sprintf("%d", pt.RiskScore)},
		{Label: "Vitals", Value: pt.Vitals.Temp + " · " + pt.Vitals.BP + " · " + pt.Vitals.HR},
		{Label: "Estimated Wait", Value: pt.EstimatedWait},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelValue(core.Muted(r.Label+":"), r.Value, width))
	}
	return strings.Join(lines, "\n")
}

func renderChat(width int) string {
	lines := make([]string, 0, len(triageChat)*3)
	for _, msg := range triageChat {
		who, c := "AI", clinic.CategoryAccent
		if msg.Speaker == clinic.SpeakerPatient {
			who, c = "Patient", clinic.CategoryInfo
		}
		lines = append(lines, core.CategoryStyle(c).Bold(true).Render(who))
		lines = append(lines, widgets.Wrap(msg.Text, max(1, width))...)
	}
	return strings.Join(lines, "\n")
}

func renderAnalysis(width int) string {
	danger := core.CategoryStyle(clinic.CategoryDanger)
	lines := []string{danger.Bold(true).Render("▲ " + triageAnalysisTitle)}
	for _, l := range widgets.Wrap(triageAnalysisText, max(1, width)) {
		lines = append(lines, danger.Render(l))
	}
	for _, s := range triageAnalysis {
		c := clinic.CategoryDanger
		if s.Label == "Confidence" {
			c = clinic.CategorySuccess
		}
		lines = append(lines, labelValue(core.Muted(s.Label+":"), core.CategoryStyle(c).Render(s.Value), width))
	}
	return strings.Join(lines, "\n")
}

func indexOfPatient(id int) int {
	for i, pt := range triageQueue {
		if pt.ID == id {
			return i
		}
	}
	return -1
}
