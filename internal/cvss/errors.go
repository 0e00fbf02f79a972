package cvss

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a metric set or vector string was rejected.
type ErrorKind string

const (
	MissingBaseMetric           ErrorKind = "MissingBaseMetric"
	UnknownMetricValue          ErrorKind = "UnknownMetricValue"
	MalformedVectorString       ErrorKind = "MalformedVectorString"
	MultipleDefinitionsOfMetric ErrorKind = "MultipleDefinitionsOfMetric"
)

// ValidationError is returned for every rejected input. Metrics lists the
// offending abbreviations in canonical order; it is empty for
// MalformedVectorString.
type ValidationError struct {
	Kind    ErrorKind
	Metrics []string
}

func (e *ValidationError) Error() string {
	if len(e.Metrics) == 0 {
		return fmt.Sprintf("cvss: %s", e.Kind)
	}
	return fmt.Sprintf("cvss: %s: %s", e.Kind, strings.Join(e.Metrics, ", "))
}

func newValidationError(kind ErrorKind, metrics []string) *ValidationError {
	return &ValidationError{Kind: kind, Metrics: metrics}
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	return verr.Kind == kind
}
