// Package main provides the CLI for the slownie Polish number-to-words converter.
package main

import (
	"os"

	"github.com/leapstack-labs/slownie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
