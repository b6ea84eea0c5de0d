package model

import (
	"fmt"
	"strings"
)

// Default values for the fields of Options that are not taken from
// required command-line flags.
const (
	// DefaultHost is the code host used to derive project URLs.
	DefaultHost = "github.com"

	// DefaultOrg is the account (user or organization) that owns the project
	// on the code host.
	DefaultOrg = "midwire"

	// DefaultLintConfig is the auxiliary file copied verbatim next to the
	// rendered templates when CopyLintConfig is enabled.
	DefaultLintConfig = ".rubocop.yml"

	// ReservedTemplate is the template-directory file that documents the
	// templates themselves. It is never rendered or copied.
	ReservedTemplate = "README.md"
)

// Options holds everything the user asked for on a single run.
// It is populated by the cli package from flags, environment and the
// config file, and is treated as immutable afterwards.
type Options struct {
	// ProjectName is the GitHub project name (e.g. "foo-bar"). Required.
	ProjectName string `json:"projectName"`

	// ProjectPath is the destination directory. Required, and must already exist.
	ProjectPath string `json:"projectPath"`

	// Verbose enables [verbose] trace lines on stderr.
	Verbose bool `json:"verbose"`

	// Color enables ANSI highlighting of the summary line.
	Color bool `json:"color"`

	// CopyLintConfig controls whether LintConfig is copied into ProjectPath.
	CopyLintConfig bool `json:"copyLintConfig"`

	// LintConfig is the file name of the auxiliary config file.
	LintConfig string `json:"lintConfig"`

	// TemplatesDir optionally overrides where templates are read from.
	// Empty means "next to the executable, else the built-in set".
	TemplatesDir string `json:"templatesDir,omitempty"`

	// Host and Org feed the derived project URLs.
	Host string `json:"host"`
	Org  string `json:"org"`
}

// NewOptions returns Options with every optional field at its default.
func NewOptions(projectName, projectPath string) Options {
	return Options{
		ProjectName:    projectName,
		ProjectPath:    projectPath,
		Color:          true,
		CopyLintConfig: true,
		LintConfig:     DefaultLintConfig,
		Host:           DefaultHost,
		Org:            DefaultOrg,
	}
}

// Validate reports the first missing required option.
// It performs no filesystem access.
func (o Options) Validate() error {
	var missing []string
	if strings.TrimSpace(o.ProjectName) == "" {
		missing = append(missing, "--project-name")
	}
	if strings.TrimSpace(o.ProjectPath) == "" {
		missing = append(missing, "--project-path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required option(s) %s not set", strings.Join(missing, ", "))
	}
	if o.CopyLintConfig && o.LintConfig == "" {
		return fmt.Errorf("lint config file name must not be empty when copying is enabled")
	}
	return nil
}

// Tags builds the substitution context for these options.
func (o Options) Tags() Tags {
	return NewTagsFor(o.ProjectName, o.Host, o.Org)
}

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the run completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates a missing or invalid command-line argument.
	// No file I/O has happened when this code is returned.
	ExitUsage ExitCode = 2

	// ExitTemplateError indicates a template failed to parse or execute.
	ExitTemplateError ExitCode = 3

	// ExitFilesystemError indicates a template could not be read, an output
	// could not be written, or the lint config source was missing.
	ExitFilesystemError ExitCode = 4

	// ExitConfigError indicates the config file could not be read or is invalid.
	ExitConfigError ExitCode = 5

	// ExitGitError indicates the git remote lookup failed.
	ExitGitError ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
