package cvss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("vector", func(t *testing.T) {
		ev, err := Evaluate("  CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H ")
		require.NoError(t, err)
		require.NotNil(t, ev.Result)
		assert.InDelta(t, 9.8, ev.Score, 1e-9)
		assert.Equal(t, SeverityCritical, ev.Severity)
		assert.Equal(t, "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", ev.Vector)
		assert.False(t, ev.Empty)
	})

	t.Run("bare score", func(t *testing.T) {
		ev, err := Evaluate("7.5")
		require.NoError(t, err)
		assert.Nil(t, ev.Result)
		assert.Equal(t, 7.5, ev.Score)
		assert.Equal(t, SeverityHigh, ev.Severity)
		assert.Empty(t, ev.Vector)
	})

	t.Run("zero", func(t *testing.T) {
		ev, err := Evaluate("0")
		require.NoError(t, err)
		assert.Equal(t, SeverityNone, ev.Severity)
	})

	t.Run("empty", func(t *testing.T) {
		ev, err := Evaluate("   ")
		require.NoError(t, err)
		assert.True(t, ev.Empty)
		assert.Empty(t, ev.Severity)
	})

	t.Run("invalid vector keeps its kind", func(t *testing.T) {
		_, err := Evaluate("CVSS:3.1/AV:N/AV:L/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		assert.True(t, IsKind(err, MultipleDefinitionsOfMetric))

		_, err = Evaluate("CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		assert.True(t, IsKind(err, MalformedVectorString))
	})

	t.Run("garbage", func(t *testing.T) {
		for _, in := range []string{"high", "11", "-1", "NaN"} {
			_, err := Evaluate(in)
			assert.True(t, IsKind(err, MalformedVectorString), in)
		}
	})
}
