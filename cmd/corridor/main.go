// Command corridor is the CLI entry point for the routing engine: a
// cobra root command with "run" (execute a batch of queries against a
// graph) and "validate" (check a config file and its referenced graph
// files without running any search) subcommands.
package main

import (
	"fmt"
	"os"
)

// Build-time variables injected via -ldflags "-X main.version=... ".
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func init() {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "corridor: %v\n", err)
		os.Exit(1)
	}
}
