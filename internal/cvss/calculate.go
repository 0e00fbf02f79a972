// Package cvss computes CVSS v3.1 Base, Temporal and Environmental scores
// from metric values or vector strings and renders them as XML or as the
// FIRST.org JSON representation.
//
// All functions are pure and safe for concurrent use.
package cvss

import (
	"math"
	"strconv"
	"strings"
)

// Result is a successful calculation. Field names follow the FIRST.org
// reference calculator so the JSON encoding can be consumed by clients of
// that calculator unchanged.
type Result struct {
	Success bool `json:"success"`

	BaseMetricScore    string   `json:"baseMetricScore"`
	BaseSeverity       Severity `json:"baseSeverity"`
	BaseISS            float64  `json:"baseISS"`
	BaseImpact         float64  `json:"baseImpact"`
	BaseExploitability float64  `json:"baseExploitability"`

	TemporalMetricScore string   `json:"temporalMetricScore"`
	TemporalSeverity    Severity `json:"temporalSeverity"`

	EnvironmentalMetricScore            string   `json:"environmentalMetricScore"`
	EnvironmentalSeverity               Severity `json:"environmentalSeverity"`
	EnvironmentalMISS                   float64  `json:"environmentalMISS"`
	EnvironmentalModifiedImpact         float64  `json:"environmentalModifiedImpact"`
	EnvironmentalModifiedExploitability float64  `json:"environmentalModifiedExploitability"`

	VectorString string `json:"vectorString"`
	// VectorValues holds the resolved code of all 22 metrics in canonical
	// order, X included.
	VectorValues []string `json:"vectorValues"`
}

// BaseScore returns the base score as a number.
func (r *Result) BaseScore() float64 { return parseScore(r.BaseMetricScore) }

// TemporalScore returns the temporal score as a number.
func (r *Result) TemporalScore() float64 { return parseScore(r.TemporalMetricScore) }

// EnvironmentalScore returns the environmental score as a number.
func (r *Result) EnvironmentalScore() float64 { return parseScore(r.EnvironmentalMetricScore) }

// Metrics returns the resolved metric set behind the result.
func (r *Result) Metrics() Metrics {
	m := make(Metrics, len(r.VectorValues))
	for i, code := range r.VectorValues {
		if i < len(metricOrder) {
			m[metricOrder[i]] = code
		}
	}
	return m
}

func parseScore(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// record is a metric set with every optional metric resolved to a code.
type record struct {
	AV, AC, PR, UI, S, C, I, A         string
	E, RL, RC                          string
	CR, IR, AR                         string
	MAV, MAC, MPR, MUI, MS, MC, MI, MA string
}

func resolve(m Metrics) record {
	opt := func(abbr string) string {
		if v := m[abbr]; v != "" {
			return v
		}
		return NotDefined
	}
	return record{
		AV: m["AV"], AC: m["AC"], PR: m["PR"], UI: m["UI"],
		S: m["S"], C: m["C"], I: m["I"], A: m["A"],
		E: opt("E"), RL: opt("RL"), RC: opt("RC"),
		CR: opt("CR"), IR: opt("IR"), AR: opt("AR"),
		MAV: opt("MAV"), MAC: opt("MAC"), MPR: opt("MPR"), MUI: opt("MUI"),
		MS: opt("MS"), MC: opt("MC"), MI: opt("MI"), MA: opt("MA"),
	}
}

func (r record) get(abbr string) string {
	switch abbr {
	case "AV":
		return r.AV
	case "AC":
		return r.AC
	case "PR":
		return r.PR
	case "UI":
		return r.UI
	case "S":
		return r.S
	case "C":
		return r.C
	case "I":
		return r.I
	case "A":
		return r.A
	case "E":
		return r.E
	case "RL":
		return r.RL
	case "RC":
		return r.RC
	case "CR":
		return r.CR
	case "IR":
		return r.IR
	case "AR":
		return r.AR
	case "MAV":
		return r.MAV
	case "MAC":
		return r.MAC
	case "MPR":
		return r.MPR
	case "MUI":
		return r.MUI
	case "MS":
		return r.MS
	case "MC":
		return r.MC
	case "MI":
		return r.MI
	case "MA":
		return r.MA
	}
	return ""
}

func (r record) values() []string {
	out := make([]string, len(metricOrder))
	for i, abbr := range metricOrder {
		out[i] = r.get(abbr)
	}
	return out
}

// modifiedScope is the scope the environmental formulas run under.
func (r record) modifiedScope() string {
	return orBase(r.MS, r.S)
}

func orBase(modified, base string) string {
	if modified != NotDefined {
		return modified
	}
	return base
}

// CalculateFromMetrics validates m and computes all three score groups.
// Validation runs in two complete sweeps, presence then domain, and every
// failing metric of the first failing sweep is reported.
func CalculateFromMetrics(m Metrics) (*Result, error) {
	if err := validate(m); err != nil {
		return nil, err
	}
	return compute(resolve(m)), nil
}

func validate(m Metrics) error {
	var missing []string
	for _, abbr := range baseMetricOrder {
		if m[abbr] == "" {
			missing = append(missing, abbr)
		}
	}
	if len(missing) > 0 {
		return newValidationError(MissingBaseMetric, missing)
	}

	r := resolve(m)
	var unknown []string
	for _, abbr := range metricOrder {
		if !metricDefs[abbr].accepts(r.get(abbr)) {
			unknown = append(unknown, abbr)
		}
	}
	if len(unknown) > 0 {
		return newValidationError(UnknownMetricValue, unknown)
	}
	return nil
}

func compute(r record) *Result {
	wAV := weightAV[r.AV]
	wAC := weightAC[r.AC]
	wPR := weightPR[r.S][r.PR]
	wUI := weightUI[r.UI]
	wS := weightS[r.S]
	wC := weightCIA[r.C]
	wI := weightCIA[r.I]
	wA := weightCIA[r.A]

	wE := weightE[r.E]
	wRL := weightRL[r.RL]
	wRC := weightRC[r.RC]
	wCR := weightCIAR[r.CR]
	wIR := weightCIAR[r.IR]
	wAR := weightCIAR[r.AR]

	mScope := r.modifiedScope()
	wMAV := weightAV[orBase(r.MAV, r.AV)]
	wMAC := weightAC[orBase(r.MAC, r.AC)]
	wMPR := weightPR[mScope][orBase(r.MPR, r.PR)]
	wMUI := weightUI[orBase(r.MUI, r.UI)]
	wMS := weightS[mScope]
	wMC := weightCIA[orBase(r.MC, r.C)]
	wMI := weightCIA[orBase(r.MI, r.I)]
	wMA := weightCIA[orBase(r.MA, r.A)]

	iss := 1 - ((1 - wC) * (1 - wI) * (1 - wA))
	var impact float64
	if r.S == "U" {
		impact = wS * iss
	} else {
		impact = wS*(iss-0.029) - 3.25*math.Pow(iss-0.02, 15)
	}
	exploitability := exploitabilityCoefficient * wAV * wAC * wPR * wUI

	var baseScore float64
	if impact > 0 {
		if r.S == "U" {
			baseScore = RoundUp1(math.Min(exploitability+impact, 10))
		} else {
			baseScore = RoundUp1(math.Min(scopeCoefficient*(exploitability+impact), 10))
		}
	}

	temporalScore := RoundUp1(baseScore * wE * wRL * wRC)

	miss := math.Min(1-((1-wMC*wCR)*(1-wMI*wIR)*(1-wMA*wAR)), 0.915)
	var modifiedImpact float64
	if mScope == "U" {
		modifiedImpact = wMS * miss
	} else {
		modifiedImpact = wMS*(miss-0.029) - 3.25*math.Pow(miss*0.9731-0.02, 13)
	}
	modifiedExploitability := exploitabilityCoefficient * wMAV * wMAC * wMPR * wMUI

	var envScore float64
	if modifiedImpact > 0 {
		if mScope == "U" {
			envScore = RoundUp1(RoundUp1(math.Min(modifiedImpact+modifiedExploitability, 10)) * wE * wRL * wRC)
		} else {
			envScore = RoundUp1(RoundUp1(math.Min(scopeCoefficient*(modifiedImpact+modifiedExploitability), 10)) * wE * wRL * wRC)
		}
	}

	return &Result{
		Success:                             true,
		BaseMetricScore:                     formatScore(baseScore),
		BaseSeverity:                        SeverityRating(baseScore),
		BaseISS:                             iss,
		BaseImpact:                          impact,
		BaseExploitability:                  exploitability,
		TemporalMetricScore:                 formatScore(temporalScore),
		TemporalSeverity:                    SeverityRating(temporalScore),
		EnvironmentalMetricScore:            formatScore(envScore),
		EnvironmentalSeverity:               SeverityRating(envScore),
		EnvironmentalMISS:                   miss,
		EnvironmentalModifiedImpact:         modifiedImpact,
		EnvironmentalModifiedExploitability: modifiedExploitability,
		VectorString:                        formatVector(r),
		VectorValues:                        r.values(),
	}
}

// formatVector serializes r with base metrics always present and optional
// metrics only when defined.
func formatVector(r record) string {
	var b strings.Builder
	b.WriteString(VersionIdentifier)
	for i, abbr := range metricOrder {
		code := r.get(abbr)
		if i >= len(baseMetricOrder) && code == NotDefined {
			continue
		}
		b.WriteString("/")
		b.WriteString(abbr)
		b.WriteString(":")
		b.WriteString(code)
	}
	return b.String()
}
