package cvss

import "strings"

const (
	VersionIdentifier = "CVSS:3.1"

	exploitabilityCoefficient = 8.22
	scopeCoefficient          = 1.08

	// NotDefined is the value code every optional metric falls back to.
	NotDefined = "X"
)

// Metrics maps a metric abbreviation (AV, AC, ..., MA) to its value code.
// Base metrics are mandatory, every other metric may be absent or empty.
type Metrics map[string]string

// metricOrder is the canonical order used for validation, error reporting
// and vector serialization.
var metricOrder = []string{
	"AV", "AC", "PR", "UI", "S", "C", "I", "A",
	"E", "RL", "RC",
	"CR", "IR", "AR",
	"MAV", "MAC", "MPR", "MUI", "MS", "MC", "MI", "MA",
}

var baseMetricOrder = metricOrder[:8]

// MetricOrder returns the 22 metric abbreviations in canonical order.
func MetricOrder() []string {
	out := make([]string, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// Weights. These tables are read-only after package initialisation.
var (
	weightAV = map[string]float64{"N": 0.85, "A": 0.62, "L": 0.55, "P": 0.2}
	weightAC = map[string]float64{"H": 0.44, "L": 0.77}
	weightPR = map[string]map[string]float64{
		"U": {"N": 0.85, "L": 0.62, "H": 0.27},
		"C": {"N": 0.85, "L": 0.68, "H": 0.5},
	}
	weightUI   = map[string]float64{"N": 0.85, "R": 0.62}
	weightS    = map[string]float64{"U": 6.42, "C": 7.52}
	weightCIA  = map[string]float64{"N": 0, "L": 0.22, "H": 0.56}
	weightE    = map[string]float64{"X": 1, "U": 0.91, "P": 0.94, "F": 0.97, "H": 1}
	weightRL   = map[string]float64{"X": 1, "O": 0.95, "T": 0.96, "W": 0.97, "U": 1}
	weightRC   = map[string]float64{"X": 1, "U": 0.92, "R": 0.96, "C": 1}
	weightCIAR = map[string]float64{"X": 1, "L": 0.5, "M": 1, "H": 1.5}
)

type metricDef struct {
	abbr string
	// legal is the table whose keys make up the semantic domain.
	legal map[string]float64
	// lexical is the alphabet the vector grammar accepts for this metric.
	// It is wider than legal for PR and MPR.
	lexical string
	// modified metrics accept X on top of the base metric's domain.
	modified bool
	// longNames maps a value code to its FIRST.org long form.
	longNames map[string]string
}

var (
	namesAV   = map[string]string{"N": "NETWORK", "A": "ADJACENT_NETWORK", "L": "LOCAL", "P": "PHYSICAL", "X": "NOT_DEFINED"}
	namesAC   = map[string]string{"H": "HIGH", "L": "LOW", "X": "NOT_DEFINED"}
	namesPR   = map[string]string{"N": "NONE", "L": "LOW", "H": "HIGH", "X": "NOT_DEFINED"}
	namesUI   = map[string]string{"N": "NONE", "R": "REQUIRED", "X": "NOT_DEFINED"}
	namesS    = map[string]string{"U": "UNCHANGED", "C": "CHANGED", "X": "NOT_DEFINED"}
	namesCIA  = map[string]string{"N": "NONE", "L": "LOW", "H": "HIGH", "X": "NOT_DEFINED"}
	namesE    = map[string]string{"X": "NOT_DEFINED", "U": "UNPROVEN", "P": "PROOF_OF_CONCEPT", "F": "FUNCTIONAL", "H": "HIGH"}
	namesRL   = map[string]string{"X": "NOT_DEFINED", "O": "OFFICIAL_FIX", "T": "TEMPORARY_FIX", "W": "WORKAROUND", "U": "UNAVAILABLE"}
	namesRC   = map[string]string{"X": "NOT_DEFINED", "U": "UNKNOWN", "R": "REASONABLE", "C": "CONFIRMED"}
	namesCIAR = map[string]string{"X": "NOT_DEFINED", "L": "LOW", "M": "MEDIUM", "H": "HIGH"}
)

var metricDefs = map[string]metricDef{
	"AV": {abbr: "AV", legal: weightAV, lexical: "NALP", longNames: namesAV},
	"AC": {abbr: "AC", legal: weightAC, lexical: "LH", longNames: namesAC},
	"PR": {abbr: "PR", legal: weightPR["U"], lexical: "UNLH", longNames: namesPR},
	"UI": {abbr: "UI", legal: weightUI, lexical: "NR", longNames: namesUI},
	"S":  {abbr: "S", legal: weightS, lexical: "UC", longNames: namesS},
	"C":  {abbr: "C", legal: weightCIA, lexical: "NLH", longNames: namesCIA},
	"I":  {abbr: "I", legal: weightCIA, lexical: "NLH", longNames: namesCIA},
	"A":  {abbr: "A", legal: weightCIA, lexical: "NLH", longNames: namesCIA},

	"E":  {abbr: "E", legal: weightE, lexical: "XUPFH", longNames: namesE},
	"RL": {abbr: "RL", legal: weightRL, lexical: "XOTWU", longNames: namesRL},
	"RC": {abbr: "RC", legal: weightRC, lexical: "XURC", longNames: namesRC},

	"CR": {abbr: "CR", legal: weightCIAR, lexical: "XLMH", longNames: namesCIAR},
	"IR": {abbr: "IR", legal: weightCIAR, lexical: "XLMH", longNames: namesCIAR},
	"AR": {abbr: "AR", legal: weightCIAR, lexical: "XLMH", longNames: namesCIAR},

	"MAV": {abbr: "MAV", legal: weightAV, lexical: "XNALP", modified: true, longNames: namesAV},
	"MAC": {abbr: "MAC", legal: weightAC, lexical: "XLH", modified: true, longNames: namesAC},
	"MPR": {abbr: "MPR", legal: weightPR["U"], lexical: "XUNLH", modified: true, longNames: namesPR},
	"MUI": {abbr: "MUI", legal: weightUI, lexical: "XNR", modified: true, longNames: namesUI},
	"MS":  {abbr: "MS", legal: weightS, lexical: "XUC", modified: true, longNames: namesS},
	"MC":  {abbr: "MC", legal: weightCIA, lexical: "XNLH", modified: true, longNames: namesCIA},
	"MI":  {abbr: "MI", legal: weightCIA, lexical: "XNLH", modified: true, longNames: namesCIA},
	"MA":  {abbr: "MA", legal: weightCIA, lexical: "XNLH", modified: true, longNames: namesCIA},
}

func (d metricDef) accepts(code string) bool {
	if d.modified && code == NotDefined {
		return true
	}
	_, ok := d.legal[code]
	return ok
}

// IsMetric reports whether abbr is one of the 22 recognised abbreviations.
func IsMetric(abbr string) bool {
	_, ok := metricDefs[abbr]
	return ok
}

// LongName returns the FIRST.org long form of a value code, e.g. AV:N is
// NETWORK. Unknown pairs yield an empty string.
func LongName(abbr, code string) string {
	def, ok := metricDefs[strings.ToUpper(abbr)]
	if !ok {
		return ""
	}
	return def.longNames[code]
}
