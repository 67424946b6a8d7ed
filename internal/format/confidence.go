package format

import "math"

// Severity is the badge styling bucket for a value.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// BadgeClass returns the CSS modifier class for the severity.
func (s Severity) BadgeClass() string {
	return "badge--" + string(s)
}

// Confidence labels, highest bracket first.
const (
	LabelVeryHigh = "Very High"
	LabelHigh     = "High"
	LabelModerate = "Moderate"
	LabelLow      = "Low"
	LabelVeryLow  = "Very Low"
)

// Level is the qualitative bracket for a confidence score.
type Level struct {
	Severity Severity
	Label    string
}

// ConfidenceLevel buckets a 0-100 score. Lower bounds are inclusive; anything below 60,
// including NaN, is danger/"Very Low".
func ConfidenceLevel(score float64) Level {
	switch {
	case math.IsNaN(score):
		return Level{Severity: SeverityDanger, Label: LabelVeryLow}
	case score >= 90:
		return Level{Severity: SeveritySuccess, Label: LabelVeryHigh}
	case score >= 80:
		return Level{Severity: SeveritySuccess, Label: LabelHigh}
	case score >= 70:
		return Level{Severity: SeverityWarning, Label: LabelModerate}
	case score >= 60:
		return Level{Severity: SeverityWarning, Label: LabelLow}
	default:
		return Level{Severity: SeverityDanger, Label: LabelVeryLow}
	}
}

// RecommendationBadge maps a recommendation to its badge severity; unknown values are info.
func RecommendationBadge(recommendation string) Severity {
	switch recommendation {
	case "Strong Pick":
		return SeveritySuccess
	case "Moderate Pick":
		return SeverityWarning
	case "Weak Pick":
		return SeverityDanger
	default:
		return SeverityInfo
	}
}
