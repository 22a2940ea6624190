package clinic

import "strings"

// Category is the presentation class a value is drawn with. Panels map each
// category onto a colour; the mapping functions below never fail and fall
// back to a fixed category for values they do not know.
type Category string

const (
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
	CategoryInfo    Category = "info"
	CategoryAccent  Category = "accent"
	CategoryMuted   Category = "muted"
	CategoryNeutral Category = "neutral"
)

// Risk score bands.
const (
	RiskScoreHigh     = 80
	RiskScoreModerate = 50
)

func AppointmentStatusCategory(s AppointmentStatus) Category {
	switch s {
	case StatusConfirmed:
		return CategorySuccess
	case StatusPending:
		return CategoryWarning
	case StatusCancelled:
		return CategoryDanger
	default:
		return CategoryNeutral
	}
}

// RiskScoreCategory bands a 0-100 score. Anything below the moderate band,
// including out-of-range values, is drawn as success.
func RiskScoreCategory(score int) Category {
	switch {
	case score >= RiskScoreHigh:
		return CategoryDanger
	case score >= RiskScoreModerate:
		return CategoryWarning
	default:
		return CategorySuccess
	}
}

func PriorityCategory(p Priority) Category {
	switch p {
	case PriorityUrgent:
		return CategoryDanger
	case PriorityModerate:
		return CategoryWarning
	case PriorityLow:
		return CategorySuccess
	default:
		return CategoryNeutral
	}
}

func PrescriptionStatusCategory(s PrescriptionStatus) Category {
	switch s {
	case RxValidated:
		return CategorySuccess
	case RxWarning:
		return CategoryWarning
	case RxFlagged:
		return CategoryDanger
	default:
		return CategoryNeutral
	}
}

func RiskLevelCategory(r RiskLevel) Category {
	switch r {
	case RiskLow:
		return CategorySuccess
	case RiskMedium:
		return CategoryWarning
	case RiskHigh:
		return CategoryDanger
	default:
		return CategoryNeutral
	}
}

func StepTypeCategory(t StepType) Category {
	switch t {
	case StepStart:
		return CategorySuccess
	case StepAI:
		return CategoryAccent
	case StepUrgent:
		return CategoryDanger
	case StepConsultation:
		return CategoryInfo
	case StepStandard:
		return CategoryWarning
	case StepEnd:
		return CategoryMuted
	default:
		return CategoryNeutral
	}
}

func AlertCategory(t AlertType) Category {
	switch t {
	case AlertUrgent:
		return CategoryDanger
	case AlertWarning:
		return CategoryWarning
	default:
		return CategoryInfo
	}
}

// SeverityCategory classifies drug alert severities ("high", "medium", ...).
func SeverityCategory(severity string) Category {
	switch severity {
	case "high":
		return CategoryDanger
	case "medium":
		return CategoryWarning
	default:
		return CategoryInfo
	}
}

// TrendCategory colours a change string such as "+12%" or "-8".
func TrendCategory(change string) Category {
	if strings.HasPrefix(change, "+") {
		return CategorySuccess
	}
	return CategoryDanger
}

// SwatchCategory maps the named card colours used by the insights panel.
func SwatchCategory(color string) Category {
	switch color {
	case "blue":
		return CategoryInfo
	case "green":
		return CategorySuccess
	case "purple":
		return CategoryAccent
	case "orange", "yellow":
		return CategoryWarning
	case "red":
		return CategoryDanger
	default:
		return CategoryInfo
	}
}

// StepTypeLabel is the legend caption for a workflow step type.
func StepTypeLabel(t StepType) string {
	switch t {
	case StepStart:
		return "Start Point"
	case StepAI:
		return "AI-Powered"
	case StepUrgent:
		return "Urgent Care"
	case StepConsultation:
		return "Consultation"
	case StepStandard:
		return "Standard Care"
	case StepEnd:
		return "End Point"
	default:
		return "Step"
	}
}
