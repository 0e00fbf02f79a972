package cvss

import (
	"regexp"
	"strings"
)

var vectorStringRegex = buildVectorRegex()

// buildVectorRegex compiles the vector grammar: the version prefix followed
// by one or more slash separated ABBR:VALUE tokens. Only the alphabet of each
// metric is checked here, duplicates and semantics are checked later.
func buildVectorRegex() *regexp.Regexp {
	tokens := make([]string, 0, len(metricOrder))
	for _, abbr := range metricOrder {
		tokens = append(tokens, abbr+":["+metricDefs[abbr].lexical+"]")
	}
	token := "(?:" + strings.Join(tokens, "|") + ")"
	return regexp.MustCompile("^" + regexp.QuoteMeta(VersionIdentifier) + "/(?:" + token + "/)*" + token + "$")
}

// ValidVectorString reports whether s matches the CVSS v3.1 vector grammar.
func ValidVectorString(s string) bool {
	return vectorStringRegex.MatchString(s)
}

// ParseVector splits a vector string into a metric set. It fails with
// MalformedVectorString or MultipleDefinitionsOfMetric; the returned set has
// not been checked for missing base metrics or illegal values.
func ParseVector(vector string) (Metrics, error) {
	if !vectorStringRegex.MatchString(vector) {
		return nil, newValidationError(MalformedVectorString, nil)
	}

	body := strings.TrimPrefix(vector, VersionIdentifier+"/")
	m := make(Metrics)
	var duplicated []string
	reported := make(map[string]bool)
	for _, token := range strings.Split(body, "/") {
		abbr, value, _ := strings.Cut(token, ":")
		if _, seen := m[abbr]; !seen {
			m[abbr] = value
			continue
		}
		if !reported[abbr] {
			reported[abbr] = true
			duplicated = append(duplicated, abbr)
		}
	}
	if len(duplicated) > 0 {
		return nil, newValidationError(MultipleDefinitionsOfMetric, duplicated)
	}
	return m, nil
}

// CalculateFromVector parses vector and delegates to CalculateFromMetrics.
func CalculateFromVector(vector string) (*Result, error) {
	m, err := ParseVector(vector)
	if err != nil {
		return nil, err
	}
	return CalculateFromMetrics(m)
}

// Normalize returns the canonical form of a valid vector string: base
// metrics first, optional metrics in canonical order, X values dropped.
func Normalize(vector string) (string, error) {
	res, err := CalculateFromVector(vector)
	if err != nil {
		return "", err
	}
	return res.VectorString, nil
}
