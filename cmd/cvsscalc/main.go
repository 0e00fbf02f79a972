package main

import (
	"os"

	"cvss-scoring-service-golang/cmd/cvsscalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
