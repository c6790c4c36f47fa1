package main

import (
	"os"

	"countryexplorer/internal/cli"
)

// Set by the linker at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}
