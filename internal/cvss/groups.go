package cvss

// Group is one of the three score groups of a result.
type Group struct {
	Name     string   `json:"name"`
	Score    string   `json:"score"`
	Severity Severity `json:"severity"`
	// SubScores holds the intermediate values of the group keyed by name.
	// The temporal group has none.
	SubScores map[string]float64 `json:"subScores,omitempty"`
}

// Groups returns the base, temporal and environmental groups of r in that
// order.
func (r *Result) Groups() []Group {
	return []Group{
		{
			Name:     "base",
			Score:    r.BaseMetricScore,
			Severity: r.BaseSeverity,
			SubScores: map[string]float64{
				"iss":            r.BaseISS,
				"impact":         r.BaseImpact,
				"exploitability": r.BaseExploitability,
			},
		},
		{
			Name:     "temporal",
			Score:    r.TemporalMetricScore,
			Severity: r.TemporalSeverity,
		},
		{
			Name:     "environmental",
			Score:    r.EnvironmentalMetricScore,
			Severity: r.EnvironmentalSeverity,
			SubScores: map[string]float64{
				"miss":                   r.EnvironmentalMISS,
				"modifiedImpact":         r.EnvironmentalModifiedImpact,
				"modifiedExploitability": r.EnvironmentalModifiedExploitability,
			},
		},
	}
}
