package cvss

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_JSON(t *testing.T) {
	res, err := CalculateFromVector("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/E:U/MAV:A")
	require.NoError(t, err)

	doc := res.JSON()
	assert.Equal(t, "3.1", doc.Version)
	assert.Equal(t, res.VectorString, doc.VectorString)
	assert.Equal(t, "NETWORK", doc.AttackVector)
	assert.Equal(t, "UNCHANGED", doc.Scope)
	assert.InDelta(t, 9.8, doc.BaseScore, 1e-9)
	assert.Equal(t, "CRITICAL", doc.BaseSeverity)
	assert.Equal(t, "UNPROVEN", doc.ExploitCodeMaturity)
	assert.Empty(t, doc.RemediationLevel)
	assert.Equal(t, "ADJACENT_NETWORK", doc.ModifiedAttackVector)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "exploitCodeMaturity")
	assert.NotContains(t, fields, "remediationLevel")
	assert.NotContains(t, fields, "modifiedScope")
	assert.Contains(t, fields, "environmentalScore")
}

func TestLongName(t *testing.T) {
	assert.Equal(t, "NETWORK", LongName("AV", "N"))
	assert.Equal(t, "ADJACENT_NETWORK", LongName("mav", "A"))
	assert.Equal(t, "NOT_DEFINED", LongName("CR", "X"))
	assert.Equal(t, "", LongName("AV", "Q"))
	assert.Equal(t, "", LongName("ZZ", "N"))
}

func TestMetricOrder(t *testing.T) {
	order := MetricOrder()
	require.Len(t, order, 22)
	assert.Equal(t, "AV", order[0])
	assert.Equal(t, "MA", order[21])

	order[0] = "changed"
	assert.Equal(t, "AV", MetricOrder()[0])
	assert.True(t, IsMetric("MPR"))
	assert.False(t, IsMetric("mpr"))
}
