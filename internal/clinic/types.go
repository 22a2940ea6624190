// Package clinic holds the display records shown by the panels and the
// mapping from their enum fields to presentation categories.
//
// Records are plain values. Panels declare their own literal slices of them
// and never modify those slices.
package clinic

import "strings"

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

type Priority string

const (
	PriorityUrgent   Priority = "urgent"
	PriorityModerate Priority = "moderate"
	PriorityLow      Priority = "low"
)

type PrescriptionStatus string

const (
	RxValidated PrescriptionStatus = "validated"
	RxWarning   PrescriptionStatus = "warning"
	RxFlagged   PrescriptionStatus = "flagged"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type StepType string

const (
	StepStart        StepType = "start"
	StepAI           StepType = "ai"
	StepUrgent       StepType = "urgent"
	StepConsultation StepType = "consultation"
	StepStandard     StepType = "standard"
	StepEnd          StepType = "end"
)

type AlertType string

const (
	AlertUrgent  AlertType = "urgent"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

type Speaker string

const (
	SpeakerAI      Speaker = "ai"
	SpeakerPatient Speaker = "patient"
)

// Stat is a headline number card.
type Stat struct {
	Title  string
	Value  string
	Change string
}

// AIModule is a status card for one of the advertised assistants.
type AIModule struct {
	Name      string
	Status    string
	Processed string
	Accuracy  string
}

// Alert is a recent-activity entry on the dashboard.
type Alert struct {
	Type    AlertType
	Message string
	Time    string
	Patient string
}

// Gauge is a labelled progress bar. Value is the caption shown next to the
// label; Percent is the bar fill.
type Gauge struct {
	Label   string
	Value   string
	Percent float64
}

// Summary is a label/value line.
type Summary struct {
	Label string
	Value string
}

// QuickAction is a display-only button.
type QuickAction struct {
	Title       string
	Description string
}

type Vitals struct {
	Temp string
	BP   string
	HR   string
}

type TriagePatient struct {
	ID            int
	Name          string
	Age           int
	Symptoms      string
	Priority      Priority
	RiskScore     int
	EstimatedWait string
	Vitals        Vitals
}

type ChatMessage struct {
	Speaker Speaker
	Text    string
}

type Appointment struct {
	ID        int
	Time      string
	Patient   string
	Type      string
	Duration  int
	Status    AppointmentStatus
	Optimized bool
}

type Optimization struct {
	Type    string
	Message string
	Impact  string
	Time    string
}

// KPI is a metric card with a change indicator.
type KPI struct {
	Label  string
	Value  string
	Change string
}

type Prescription struct {
	ID           int
	Patient      string
	Medication   string
	Prescriber   string
	Status       PrescriptionStatus
	RiskLevel    RiskLevel
	Interactions int
	Compliance   int
	Timestamp    string
}

type DrugAlert struct {
	Type           string
	Message        string
	Patient        string
	Severity       string
	Recommendation string
}

type DrugEntry struct {
	Name         string
	Interactions int
}

type HealthMetric struct {
	Title       string
	Value       string
	Trend       string
	Patients    int
	Color       string
	Description string
}

type RiskPrediction struct {
	Condition        string
	RiskLevel        RiskLevel
	AffectedPatients int
	Confidence       int
	Recommendation   string
}

type PatientInsight struct {
	Category string
	Count    int
	Change   string
	Color    string
}

type Position struct {
	X int
	Y int
}

type StepMetrics struct {
	Processed  int
	AvgTime    string
	Efficiency int
}

type WorkflowStep struct {
	ID          string
	Title       string
	Description string
	Type        StepType
	Position    Position
	Metrics     StepMetrics
}

// Connection is a directed edge between two workflow step ids.
type Connection struct {
	From string
	To   string
}

// Initials returns the first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}
