package commands

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"

	"cvss-scoring-service-golang/internal/cvss"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const criticalVector = "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"

// execute runs rootCmd with fresh flag and viper state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestScoreText(t *testing.T) {
	out, err := execute(t, "score", "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H")
	require.NoError(t, err)
	require.Contains(t, out, "Vector:        CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H")
	require.Contains(t, out, "base:          10.0 (critical)")
	require.Contains(t, out, "environmental: 10.0 (critical)")
}

func TestScoreJSON(t *testing.T) {
	out, err := execute(t, "score", "--output", "json", criticalVector+"/E:U")
	require.NoError(t, err)

	var res cvss.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "9.8", res.BaseMetricScore)
	require.Equal(t, "9.0", res.TemporalMetricScore)
	require.Equal(t, criticalVector+"/E:U", res.VectorString)
}

func TestOutputFromEnvironment(t *testing.T) {
	t.Setenv("CVSSCALC_OUTPUT", "json")

	out, err := execute(t, "score", criticalVector)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)), out)

	// an explicit flag wins over the environment
	out, err = execute(t, "score", "-o", "text", criticalVector)
	require.NoError(t, err)
	require.Contains(t, out, "base:          9.8 (critical)")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "score", "-o", "yaml", criticalVector)
	require.ErrorContains(t, err, "unknown output format")
}

func TestScoreValidationError(t *testing.T) {
	_, err := execute(t, "score", "CVSS:3.1/AV:N/AV:L/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
	require.True(t, cvss.IsKind(err, cvss.MultipleDefinitionsOfMetric), "got %v", err)
}

func TestMetrics(t *testing.T) {
	out, err := execute(t, "metrics", "-o", "json",
		"--av", "n", "--ac", "L", "--pr", "N", "--ui", "N", "--s", "U", "--c", "H", "--i", "H", "--a", "H",
		"--cr", "H", "--mav", "L")
	require.NoError(t, err)

	var res cvss.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "9.8", res.BaseMetricScore)
	require.Equal(t, criticalVector+"/CR:H/MAV:L", res.VectorString)

	_, err = execute(t, "metrics", "--av", "N")
	var verr *cvss.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, cvss.MissingBaseMetric, verr.Kind)
	require.Equal(t, []string{"AC", "PR", "UI", "S", "C", "I", "A"}, verr.Metrics)
}

func TestXML(t *testing.T) {
	out, err := execute(t, "xml", criticalVector)
	require.NoError(t, err)

	var doc struct {
		XMLName xml.Name `xml:"cvssv3.1"`
		Base    struct {
			AttackVector string `xml:"attack-vector"`
			Score        string `xml:"base-score"`
		} `xml:"base_metrics"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &doc))
	require.Equal(t, "NETWORK", doc.Base.AttackVector)
	require.Equal(t, "9.8", doc.Base.Score)
}

func TestJSONDocument(t *testing.T) {
	out, err := execute(t, "json", criticalVector)
	require.NoError(t, err)

	var doc cvss.JSONDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "3.1", doc.Version)
	require.Equal(t, "CRITICAL", doc.BaseSeverity)
	require.Equal(t, 9.8, doc.BaseScore)
}

func TestNormalize(t *testing.T) {
	out, err := execute(t, "normalize", "CVSS:3.1/A:H/I:H/C:H/S:U/UI:N/PR:N/AC:L/AV:N/E:X/RC:R")
	require.NoError(t, err)
	require.Equal(t, criticalVector+"/RC:R\n", out)

	_, err = execute(t, "normalize", "CVSS:3.0/AV:N")
	require.True(t, cvss.IsKind(err, cvss.MalformedVectorString))
}

func TestEvaluate(t *testing.T) {
	out, err := execute(t, "evaluate", "6.5")
	require.NoError(t, err)
	require.Equal(t, "6.5 (medium)\n", out)

	out, err = execute(t, "evaluate", criticalVector)
	require.NoError(t, err)
	require.Contains(t, out, "base:          9.8 (critical)")

	_, err = execute(t, "evaluate", "eleven")
	require.True(t, cvss.IsKind(err, cvss.MalformedVectorString))
}
