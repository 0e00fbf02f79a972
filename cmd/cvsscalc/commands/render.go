package commands

import (
	"fmt"

	"cvss-scoring-service-golang/internal/cvss"

	"github.com/spf13/cobra"
)

var xmlCmd = &cobra.Command{
	Use:   "xml <VECTOR>",
	Short: "Render a vector as a FIRST.org CVSS v3.1 XML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := cvss.GenerateXMLFromVector(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	},
}

var jsonCmd = &cobra.Command{
	Use:   "json <VECTOR>",
	Short: "Render a vector as a CVSS JSON 3.1 document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := cvss.CalculateFromVector(args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res.JSON())
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <VECTOR>",
	Short: "Print the canonical form of a vector",
	Long:  "Reorders metrics and drops not-defined ones, yielding the form used as the score cache key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vector, err := cvss.Normalize(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), vector)
		return err
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <VECTOR|SCORE>",
	Short: "Score a vector or rate a bare numeric score",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(xmlCmd, jsonCmd, normalizeCmd, evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ev, err := cvss.Evaluate(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagOutput == outputJSON {
		return writeJSON(w, ev)
	}
	if ev.Empty {
		fmt.Fprintln(w, "empty input")
		return nil
	}
	if ev.Result != nil {
		return writeResult(w, ev.Result)
	}
	fmt.Fprintf(w, "%.1f (%s)\n", ev.Score, ev.Severity)
	return nil
}
