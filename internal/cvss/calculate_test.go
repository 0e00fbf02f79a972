package cvss

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subScoreDelta = 1e-12

func baseMetrics() Metrics {
	return Metrics{"AV": "N", "AC": "L", "PR": "N", "UI": "N", "S": "U", "C": "H", "I": "H", "A": "H"}
}

func TestCalculateFromMetrics_CriticalWorkedExample(t *testing.T) {
	res, err := CalculateFromMetrics(baseMetrics())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "9.8", res.BaseMetricScore)
	assert.Equal(t, SeverityCritical, res.BaseSeverity)
	assert.Equal(t, "9.8", res.TemporalMetricScore)
	assert.Equal(t, "9.8", res.EnvironmentalMetricScore)
	assert.InDelta(t, 0.9148160000000001, res.BaseISS, subScoreDelta)
	assert.InDelta(t, 5.873118720000001, res.BaseImpact, subScoreDelta)
	assert.InDelta(t, 3.8870427750000003, res.BaseExploitability, subScoreDelta)
	assert.Equal(t, "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", res.VectorString)
}

func TestCalculateFromMetrics_ScopeChanged(t *testing.T) {
	m := baseMetrics()
	m["S"] = "C"
	res, err := CalculateFromMetrics(m)
	require.NoError(t, err)

	assert.Equal(t, "10.0", res.BaseMetricScore)
	assert.Equal(t, SeverityCritical, res.BaseSeverity)
	assert.Equal(t, "10.0", res.TemporalMetricScore)
	assert.Equal(t, "10.0", res.EnvironmentalMetricScore)
	assert.InDelta(t, 6.0477304915445185, res.BaseImpact, 1e-9)
	assert.InDelta(t, 6.1280263288099786, res.EnvironmentalModifiedImpact, 1e-9)
}

func TestCalculateFromMetrics_MissingBaseMetric(t *testing.T) {
	m := baseMetrics()
	delete(m, "AV")
	m["A"] = ""

	res, err := CalculateFromMetrics(m)
	require.Error(t, err)
	assert.Nil(t, res)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MissingBaseMetric, verr.Kind)
	assert.Equal(t, []string{"AV", "A"}, verr.Metrics)
}

func TestCalculateFromMetrics_UnknownMetricValue(t *testing.T) {
	m := baseMetrics()
	m["AV"] = "Q"
	m["PR"] = "U"
	m["E"] = "Z"
	m["MS"] = "N"

	_, err := CalculateFromMetrics(m)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, UnknownMetricValue, verr.Kind)
	assert.Equal(t, []string{"AV", "PR", "E", "MS"}, verr.Metrics)
}

func TestCalculateFromMetrics_PresenceSweepRunsFirst(t *testing.T) {
	m := baseMetrics()
	delete(m, "C")
	m["AV"] = "Q"

	_, err := CalculateFromMetrics(m)
	assert.True(t, IsKind(err, MissingBaseMetric))
	assert.False(t, IsKind(err, UnknownMetricValue))
}

func TestCalculateFromMetrics_ModifiedMetricsAcceptX(t *testing.T) {
	m := baseMetrics()
	for _, abbr := range []string{"E", "RL", "RC", "CR", "IR", "AR", "MAV", "MAC", "MPR", "MUI", "MS", "MC", "MI", "MA"} {
		m[abbr] = NotDefined
	}
	res, err := CalculateFromMetrics(m)
	require.NoError(t, err)
	assert.Equal(t, "9.8", res.BaseMetricScore)
	assert.Equal(t, "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", res.VectorString)
}

func TestCalculateFromMetrics_BaseMetricRejectsX(t *testing.T) {
	m := baseMetrics()
	m["AC"] = NotDefined
	_, err := CalculateFromMetrics(m)
	assert.True(t, IsKind(err, UnknownMetricValue))
}

func TestCalculateFromMetrics_IgnoresUnknownKeys(t *testing.T) {
	m := baseMetrics()
	m["ZZ"] = "whatever"
	res, err := CalculateFromMetrics(m)
	require.NoError(t, err)
	assert.Equal(t, "9.8", res.BaseMetricScore)
}

func TestCalculateFromMetrics_VectorValues(t *testing.T) {
	m := baseMetrics()
	m["E"] = "P"
	m["MAV"] = "L"
	res, err := CalculateFromMetrics(m)
	require.NoError(t, err)

	require.Len(t, res.VectorValues, 22)
	assert.Equal(t, []string{
		"N", "L", "N", "N", "U", "H", "H", "H",
		"P", "X", "X",
		"X", "X", "X",
		"L", "X", "X", "X", "X", "X", "X", "X",
	}, res.VectorValues)

	back := res.Metrics()
	assert.Equal(t, "P", back["E"])
	assert.Equal(t, "X", back["RL"])
	assert.Equal(t, "L", back["MAV"])
}

func TestCalculateFromMetrics_Examples(t *testing.T) {
	tests := []struct {
		name          string
		vector        string
		base          string
		baseSeverity  Severity
		temporal      string
		environmental string
		envSeverity   Severity
	}{
		{
			name:          "integrity only, high complexity",
			vector:        "CVSS:3.1/AV:N/AC:H/PR:N/UI:N/S:U/C:N/I:H/A:N",
			base:          "5.9",
			baseSeverity:  SeverityMedium,
			temporal:      "5.9",
			environmental: "5.9",
			envSeverity:   SeverityMedium,
		},
		{
			name:          "no impact",
			vector:        "CVSS:3.1/AV:L/AC:L/PR:L/UI:N/S:U/C:N/I:N/A:N",
			base:          "0.0",
			baseSeverity:  SeverityNone,
			temporal:      "0.0",
			environmental: "0.0",
			envSeverity:   SeverityNone,
		},
		{
			name:          "physical low",
			vector:        "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:L/I:N/A:N",
			base:          "1.6",
			baseSeverity:  SeverityLow,
			temporal:      "1.6",
			environmental: "1.6",
			envSeverity:   SeverityLow,
		},
		{
			name:          "temporal metrics",
			vector:        "CVSS:3.1/AV:N/AC:L/PR:L/UI:R/S:C/C:L/I:L/A:N/E:P/RL:O/RC:C",
			base:          "5.4",
			baseSeverity:  SeverityMedium,
			temporal:      "4.9",
			environmental: "4.9",
			envSeverity:   SeverityMedium,
		},
		{
			name:          "every metric defined",
			vector:        "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/E:U/RL:O/RC:U/CR:H/IR:L/AR:M/MAV:A/MAC:H/MPR:L/MUI:R/MS:C/MC:L/MI:H/MA:N",
			base:          "9.8",
			baseSeverity:  SeverityCritical,
			temporal:      "7.8",
			environmental: "4.0",
			envSeverity:   SeverityMedium,
		},
		{
			name:          "modified scope unchanged",
			vector:        "CVSS:3.1/AV:A/AC:L/PR:H/UI:N/S:C/C:H/I:L/A:L/MPR:N/MS:U",
			base:          "7.5",
			baseSeverity:  SeverityHigh,
			temporal:      "7.5",
			environmental: "7.6",
			envSeverity:   SeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CalculateFromVector(tt.vector)
			require.NoError(t, err)
			assert.Equal(t, tt.base, res.BaseMetricScore)
			assert.Equal(t, tt.baseSeverity, res.BaseSeverity)
			assert.Equal(t, tt.temporal, res.TemporalMetricScore)
			assert.Equal(t, tt.environmental, res.EnvironmentalMetricScore)
			assert.Equal(t, tt.envSeverity, res.EnvironmentalSeverity)
			assert.Equal(t, tt.vector, res.VectorString)
		})
	}
}

func TestCalculateFromMetrics_EnvironmentalSubScores(t *testing.T) {
	res, err := CalculateFromVector("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/E:U/RL:O/RC:U/CR:H/IR:L/AR:M/MAV:A/MAC:H/MPR:L/MUI:R/MS:C/MC:L/MI:H/MA:N")
	require.NoError(t, err)
	assert.InDelta(t, 0.5176000000000001, res.EnvironmentalMISS, subScoreDelta)
	assert.InDelta(t, 3.674014309211288, res.EnvironmentalModifiedImpact, 1e-9)
	assert.InDelta(t, 0.9454025856, res.EnvironmentalModifiedExploitability, subScoreDelta)
}

func TestCalculateFromMetrics_RoundTrip(t *testing.T) {
	m := baseMetrics()
	m["S"] = "C"
	m["RL"] = "W"
	m["CR"] = "L"
	m["MUI"] = "R"

	first, err := CalculateFromMetrics(m)
	require.NoError(t, err)
	second, err := CalculateFromVector(first.VectorString)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateFromMetrics_Deterministic(t *testing.T) {
	want, err := CalculateFromMetrics(baseMetrics())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = CalculateFromMetrics(baseMetrics())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestResult_Groups(t *testing.T) {
	res, err := CalculateFromMetrics(baseMetrics())
	require.NoError(t, err)

	groups := res.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "base", groups[0].Name)
	assert.Equal(t, "9.8", groups[0].Score)
	assert.InDelta(t, res.BaseImpact, groups[0].SubScores["impact"], 0)
	assert.Equal(t, "temporal", groups[1].Name)
	assert.Empty(t, groups[1].SubScores)
	assert.Equal(t, "environmental", groups[2].Name)
	assert.Equal(t, SeverityCritical, groups[2].Severity)
	assert.Contains(t, groups[2].SubScores, "miss")
}

func TestResult_NumericScores(t *testing.T) {
	res, err := CalculateFromVector("CVSS:3.1/AV:N/AC:L/PR:L/UI:R/S:C/C:L/I:L/A:N/E:P/RL:O/RC:C")
	require.NoError(t, err)
	assert.InDelta(t, 5.4, res.BaseScore(), 1e-9)
	assert.InDelta(t, 4.9, res.TemporalScore(), 1e-9)
	assert.InDelta(t, 4.9, res.EnvironmentalScore(), 1e-9)
}
