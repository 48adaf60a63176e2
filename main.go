package main

import (
	"os"

	"github.com/lakshaymaurya-felt/aimole/cmd"
)

// Populated by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
