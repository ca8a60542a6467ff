// Package main provides the NumQuest console game CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/numquest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
