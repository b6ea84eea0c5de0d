// Package cli implements the cobra-based CLI commands for configure-docs.
//
// The root command performs the documentation run itself; the templates
// and context subcommands are read-only helpers defined in their own files.
// This file defines the root command, the global flags and error handling.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midwire/configure-docs/internal/config"
	"github.com/midwire/configure-docs/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// color and noColor together decide whether the summary is highlighted.
	// --no-color wins over --color.
	color   bool
	noColor bool

	// configPath is an explicit JSONC config file.
	configPath string

	// templatesDir overrides the template source. It is also bound into
	// viper so CONFIGURE_DOCS_TEMPLATES_DIR and the config file can set it.
	templatesDir string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// Each call builds an independent command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := config.New()
	flags := &configureFlags{}

	rootCmd := &cobra.Command{
		Use:   "configure-docs",
		Short: "Scaffold repository documentation from markdown templates",
		Long: `configure-docs copies a set of markdown templates (issue and pull request
templates, contributing guide, code of conduct) into a project directory,
substituting the project name, its titleized form and the project URLs.

Every *.md template except README.md is rendered. The lint config file
(.rubocop.yml by default) is copied verbatim unless --rubocop=false is given.

Examples:
  configure-docs -n foo-bar -p ~/src/foo-bar
  configure-docs -n foo-bar -p ~/src/foo-bar --no-rubocop --no-color
  configure-docs -n foo-bar -p ~/src/foo-bar --templates-dir ./templates
  configure-docs -n foo-bar -p ~/src/foo-bar --from-git`,

		Args: usageArgs(cobra.NoArgs),

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors lets Execute format errors (text or JSON).
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd.Context(), cmd, v, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Be verbose with the output")
	pf.BoolVarP(&color, "color", "c", true, "Use colored output")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&configPath, "config", "", "Config file (default: <user config dir>/configure-docs/config.jsonc)")
	pf.StringVarP(&templatesDir, "templates-dir", "t", "", "Directory holding the templates (default: next to the executable, else built-in)")
	_ = v.BindPFlag(config.KeyTemplatesDir, pf.Lookup("templates-dir"))

	addConfigureFlags(rootCmd, flags)

	// Flag parse failures (unknown flag, bad bool) are usage errors.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
	})

	rootCmd.AddCommand(NewTemplatesCommand(v))
	rootCmd.AddCommand(NewContextCommand(v))

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1. An interrupt cancels the run between files.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}

	printError(err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// usageArgs wraps a cobra positional-argument validator so that its errors
// carry the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
		}
		return nil
	}
}

// loadConfig merges the config file into v.
func loadConfig(v *viper.Viper) error {
	path, err := config.Load(v, configPath)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load config", err)
	}
	if path != "" {
		VerboseLog("Config file: %s", path)
	}
	return nil
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// stdout is reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

// colorEnabled resolves --color and --no-color. JSON output is never colored.
func colorEnabled() bool {
	return color && !noColor && !jsonOutput
}
