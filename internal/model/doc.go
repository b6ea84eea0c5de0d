// Package model defines the domain types and value objects for the
// configure-docs CLI.
//
// This package contains pure data structures with no I/O. The run is
// driven by two values: Options (what the user asked for) and Tags (the
// substitution context handed to every template). Both are built once per
// run and never mutated afterwards.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
