package commands

import (
	"strings"

	"cvss-scoring-service-golang/internal/cvss"

	"github.com/spf13/cobra"
)

// metricFlags holds one flag per metric, keyed by abbreviation.
var metricFlags = make(map[string]*string)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Score individual metric values",
	Long: `Score a metric set given as one flag per metric. The eight base metrics are required,
all other metrics default to X (not defined).`,
	Example: `  cvsscalc metrics --av N --ac L --pr N --ui N --s U --c H --i H --a H
  cvsscalc metrics --av N --ac L --pr N --ui N --s U --c H --i H --a H --cr H --mav L`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

func init() {
	for _, abbr := range cvss.MetricOrder() {
		v := new(string)
		metricFlags[abbr] = v
		metricsCmd.Flags().StringVar(v, strings.ToLower(abbr), "", abbr+" value code")
	}
	rootCmd.AddCommand(metricsCmd)
}

func collectMetrics() cvss.Metrics {
	m := make(cvss.Metrics)
	for abbr, v := range metricFlags {
		if code := strings.ToUpper(strings.TrimSpace(*v)); code != "" {
			m[abbr] = code
		}
	}
	return m
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	res, err := cvss.CalculateFromMetrics(collectMetrics())
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}
