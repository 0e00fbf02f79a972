package cvss

import (
	"math"
	"strconv"
	"strings"
)

// Severity is the qualitative rating of a score.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type severityBucket struct {
	name        Severity
	bottom, top float64
}

// Both bounds are inclusive.
var severityBuckets = []severityBucket{
	{SeverityNone, 0, 0},
	{SeverityLow, 0.1, 3.9},
	{SeverityMedium, 4, 6.9},
	{SeverityHigh, 7, 8.9},
	{SeverityCritical, 9, 10},
}

// SeverityRating buckets a score after formatting it to one decimal place.
// Scores outside [0,10] and NaN return an empty Severity.
func SeverityRating(score float64) Severity {
	if math.IsNaN(score) || score < 0 || score > 10 {
		return ""
	}
	rounded, err := strconv.ParseFloat(formatScore(score), 64)
	if err != nil {
		return ""
	}
	for _, b := range severityBuckets {
		if rounded >= b.bottom && rounded <= b.top {
			return b.name
		}
	}
	return ""
}

// Upper returns the rating in the upper-case form used by the CVSS JSON
// schema, e.g. CRITICAL.
func (s Severity) Upper() string {
	return strings.ToUpper(string(s))
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
