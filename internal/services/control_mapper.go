package services

import (
	"strings"
)

// SeverityToControlMapping defines ISO controls by CVSS numeric score ranges.
var SeverityToControlMapping = []struct {
	MinScore   float64
	MaxScore   float64
	ControlIDs []string
}{
	{9.0, 10.0, []string{"A.8.24", "A.8.25"}}, // Critical
	{7.0, 8.9, []string{"A.8.24"}},            // High
	{4.0, 6.9, []string{"A.8.26"}},            // Medium
	{0.1, 3.9, []string{"A.8.7"}},             // Low
	{0.0, 0.0, []string{"A.8.9"}},             // None
}

// ControlsFor maps a score to ISO 27001:2022 controls. A negative score
// means the score is unknown and the severity label is used instead.
func ControlsFor(score float64, severityLabel string) []string {
	if score >= 0 {
		for _, m := range SeverityToControlMapping {
			if score >= m.MinScore && score <= m.MaxScore {
				return m.ControlIDs
			}
		}
	}

	switch strings.ToLower(severityLabel) {
	case "critical", "high":
		return []string{"A.8.24", "A.8.25"}
	case "medium", "moderate":
		return []string{"A.8.26"}
	case "low":
		return []string{"A.8.7"}
	default:
		return []string{"A.8.9"}
	}
}
