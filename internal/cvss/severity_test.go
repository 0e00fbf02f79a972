package cvss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRating(t *testing.T) {
	tests := []struct {
		score float64
		want  Severity
	}{
		{0, SeverityNone},
		{0.1, SeverityLow},
		{3.9, SeverityLow},
		{4.0, SeverityMedium},
		{6.9, SeverityMedium},
		{7.0, SeverityHigh},
		{8.9, SeverityHigh},
		{9.0, SeverityCritical},
		{10.0, SeverityCritical},
		{10.1, ""},
		{-0.1, ""},
		{-0.04, ""},
		{10.04, ""},
		{0.04, SeverityNone},
		{3.95, SeverityMedium},
		{math.NaN(), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityRating(tt.score), "SeverityRating(%v)", tt.score)
	}
}

func TestSeverity_Upper(t *testing.T) {
	assert.Equal(t, "CRITICAL", SeverityCritical.Upper())
	assert.Equal(t, "NONE", SeverityNone.Upper())
}
