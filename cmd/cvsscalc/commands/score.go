package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"cvss-scoring-service-golang/internal/cvss"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <VECTOR>",
	Short: "Score a CVSS v3.1 vector string",
	Example: `  cvsscalc score CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H
  cvsscalc score -o json CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H/E:P`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	res, err := cvss.CalculateFromVector(args[0])
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}

func writeResult(w io.Writer, res *cvss.Result) error {
	if flagOutput == outputJSON {
		return writeJSON(w, res)
	}

	fmt.Fprintf(w, "Vector:        %s\n", res.VectorString)
	for _, g := range res.Groups() {
		fmt.Fprintf(w, "%-14s %s (%s)\n", g.Name+":", g.Score, g.Severity)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
