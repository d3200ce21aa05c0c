// Package main provides the strata CLI.
package main

import (
	"os"

	"github.com/strata-ir/strata/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
