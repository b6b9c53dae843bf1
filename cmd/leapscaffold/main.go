// Package main provides the CLI for the leapscaffold project generator.
package main

import (
	"os"

	"github.com/leapstack-labs/leapscaffold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
