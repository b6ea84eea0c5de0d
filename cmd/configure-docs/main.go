// Package main is the entry point for the configure-docs CLI.
//
// This binary renders documentation templates (issue and pull request
// templates, contributing guide, code of conduct) into a project directory.
// It delegates all functionality to the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/midwire/configure-docs/internal/cli"
)

// version, commit, and date are set at build time via ldflags
// (-X main.version=...). They back the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Execute handles error formatting and exit codes.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
