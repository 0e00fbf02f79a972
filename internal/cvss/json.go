package cvss

// JSONDocument is the FIRST.org CVSS v3.1 JSON schema representation of a
// result. Optional metrics that are not defined are omitted.
type JSONDocument struct {
	Version      string `json:"version"`
	VectorString string `json:"vectorString"`

	AttackVector          string  `json:"attackVector"`
	AttackComplexity      string  `json:"attackComplexity"`
	PrivilegesRequired    string  `json:"privilegesRequired"`
	UserInteraction       string  `json:"userInteraction"`
	Scope                 string  `json:"scope"`
	ConfidentialityImpact string  `json:"confidentialityImpact"`
	IntegrityImpact       string  `json:"integrityImpact"`
	AvailabilityImpact    string  `json:"availabilityImpact"`
	BaseScore             float64 `json:"baseScore"`
	BaseSeverity          string  `json:"baseSeverity"`

	ExploitCodeMaturity string  `json:"exploitCodeMaturity,omitempty"`
	RemediationLevel    string  `json:"remediationLevel,omitempty"`
	ReportConfidence    string  `json:"reportConfidence,omitempty"`
	TemporalScore       float64 `json:"temporalScore"`
	TemporalSeverity    string  `json:"temporalSeverity"`

	ConfidentialityRequirement    string  `json:"confidentialityRequirement,omitempty"`
	IntegrityRequirement          string  `json:"integrityRequirement,omitempty"`
	AvailabilityRequirement       string  `json:"availabilityRequirement,omitempty"`
	ModifiedAttackVector          string  `json:"modifiedAttackVector,omitempty"`
	ModifiedAttackComplexity      string  `json:"modifiedAttackComplexity,omitempty"`
	ModifiedPrivilegesRequired    string  `json:"modifiedPrivilegesRequired,omitempty"`
	ModifiedUserInteraction       string  `json:"modifiedUserInteraction,omitempty"`
	ModifiedScope                 string  `json:"modifiedScope,omitempty"`
	ModifiedConfidentialityImpact string  `json:"modifiedConfidentialityImpact,omitempty"`
	ModifiedIntegrityImpact       string  `json:"modifiedIntegrityImpact,omitempty"`
	ModifiedAvailabilityImpact    string  `json:"modifiedAvailabilityImpact,omitempty"`
	EnvironmentalScore            float64 `json:"environmentalScore"`
	EnvironmentalSeverity         string  `json:"environmentalSeverity"`
}

// JSON converts r into the CVSS JSON 3.1 document.
func (r *Result) JSON() JSONDocument {
	m := r.Metrics()
	name := func(abbr string) string {
		return LongName(abbr, m[abbr])
	}
	optional := func(abbr string) string {
		if code := m[abbr]; code == "" || code == NotDefined {
			return ""
		}
		return name(abbr)
	}

	return JSONDocument{
		Version:      "3.1",
		VectorString: r.VectorString,

		AttackVector:          name("AV"),
		AttackComplexity:      name("AC"),
		PrivilegesRequired:    name("PR"),
		UserInteraction:       name("UI"),
		Scope:                 name("S"),
		ConfidentialityImpact: name("C"),
		IntegrityImpact:       name("I"),
		AvailabilityImpact:    name("A"),
		BaseScore:             r.BaseScore(),
		BaseSeverity:          r.BaseSeverity.Upper(),

		ExploitCodeMaturity: optional("E"),
		RemediationLevel:    optional("RL"),
		ReportConfidence:    optional("RC"),
		TemporalScore:       r.TemporalScore(),
		TemporalSeverity:    r.TemporalSeverity.Upper(),

		ConfidentialityRequirement:    optional("CR"),
		IntegrityRequirement:          optional("IR"),
		AvailabilityRequirement:       optional("AR"),
		ModifiedAttackVector:          optional("MAV"),
		ModifiedAttackComplexity:      optional("MAC"),
		ModifiedPrivilegesRequired:    optional("MPR"),
		ModifiedUserInteraction:       optional("MUI"),
		ModifiedScope:                 optional("MS"),
		ModifiedConfidentialityImpact: optional("MC"),
		ModifiedIntegrityImpact:       optional("MI"),
		ModifiedAvailabilityImpact:    optional("MA"),
		EnvironmentalScore:            r.EnvironmentalScore(),
		EnvironmentalSeverity:         r.EnvironmentalSeverity.Upper(),
	}
}
