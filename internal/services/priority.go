package services

import (
	"strings"
	"time"

	"cvss-scoring-service-golang/internal/cvss"
)

const day = 24 * time.Hour

// Priority is the triage level derived from a severity rating.
type Priority struct {
	Level    string        `json:"level"`
	Severity string        `json:"severity"`
	Window   time.Duration `json:"-"`
	Controls []string      `json:"controls"`
}

// DueInDays is the remediation window in whole days.
func (p Priority) DueInDays() int {
	return int(p.Window / day)
}

// DueDate is the remediation deadline for an item scored at scoredAt.
func (p Priority) DueDate(scoredAt time.Time) time.Time {
	return scoredAt.Add(p.Window)
}

// PriorityFor maps a severity label to a priority. Unknown labels get the
// fallback window.
func PriorityFor(severity string, score float64) Priority {
	label := strings.ToLower(strings.TrimSpace(severity))
	p := Priority{
		Severity: label,
		Window:   severityDuration(label),
		Controls: ControlsFor(score, label),
	}
	switch label {
	case string(cvss.SeverityCritical):
		p.Level = "P1"
	case string(cvss.SeverityHigh):
		p.Level = "P2"
	case string(cvss.SeverityMedium):
		p.Level = "P3"
	case string(cvss.SeverityLow):
		p.Level = "P4"
	case string(cvss.SeverityNone):
		p.Level = "P5"
	default:
		p.Level = "P3"
		p.Severity = "unknown"
	}
	return p
}

func severityDuration(severity string) time.Duration {
	switch severity {
	case "critical":
		return 7 * day
	case "high":
		return 14 * day
	case "medium":
		return 30 * day
	case "low":
		return 90 * day
	case "none":
		return 180 * day
	default:
		return 60 * day
	}
}
