package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var flagOutput string

var rootCmd = &cobra.Command{
	Use:   "cvsscalc",
	Short: "CVSS v3.1 calculator",
	Long: `cvsscalc computes CVSS v3.1 base, temporal and environmental scores from a vector string or from individual metric values, and renders them as text, JSON, FIRST.org XML or CVSS JSON 3.1.

Every flag can also be set through the environment, e.g. CVSSCALC_OUTPUT=json.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", outputText, "Output format (text, json)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix("CVSSCALC")
	// --modified-scope style names map to CVSSCALC_MODIFIED_SCOPE
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)

	switch strings.ToLower(flagOutput) {
	case outputText, outputJSON:
		flagOutput = strings.ToLower(flagOutput)
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text or json)", flagOutput)
}

// bindFlags lets viper fill every flag the user did not set.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))) // nolint: errcheck
		}
		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
