// Package cli: configure.go implements the documentation run performed by
// the root command.
//
// Orchestration steps:
//  1. Merge flags, environment and config file into model.Options
//  2. Reject missing required options before touching the filesystem
//  3. Check that the project directory exists
//  4. Optionally derive host and org from the project's Git remote
//  5. Resolve the template source
//  6. Render templates and copy the lint config (scaffold.Run)
//  7. Print the summary (text or JSON)
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midwire/configure-docs/internal/config"
	"github.com/midwire/configure-docs/internal/console"
	"github.com/midwire/configure-docs/internal/gitremote"
	"github.com/midwire/configure-docs/internal/model"
	"github.com/midwire/configure-docs/internal/scaffold"
	"github.com/midwire/configure-docs/internal/templates"
)

// configureFlags holds the flag values local to the root command.
type configureFlags struct {
	projectName string // --project-name: GitHub project name
	projectPath string // --project-path: destination directory
	rubocop     bool   // --rubocop: copy the lint config
	noRubocop   bool   // --no-rubocop: shorthand for --rubocop=false
	fromGit     bool   // --from-git: derive host/org from a Git remote
	remote      string // --remote: remote consulted by --from-git
}

// addConfigureFlags registers the run flags on the root command. They are
// local flags, so the subcommands do not inherit them.
func addConfigureFlags(cmd *cobra.Command, flags *configureFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.projectName, "project-name", "n", "", "GitHub project name (required)")
	f.StringVarP(&flags.projectPath, "project-path", "p", "", "Path to the project directory (required)")
	f.BoolVarP(&flags.rubocop, "rubocop", "r", true, "Copy the lint config file into the project")
	f.BoolVar(&flags.noRubocop, "no-rubocop", false, "Do not copy the lint config file")
	f.BoolVar(&flags.fromGit, "from-git", false, "Derive host and org from the project's Git remote")
	f.StringVar(&flags.remote, "remote", gitremote.DefaultRemote, "Remote consulted by --from-git")
}

// buildOptions layers the configuration sources into a single Options
// value. Flags win over the environment, which wins over the config file.
func buildOptions(v *viper.Viper, flags *configureFlags) model.Options {
	opts := model.NewOptions(flags.projectName, flags.projectPath)
	opts.Verbose = verbose
	opts.Color = colorEnabled()
	opts.CopyLintConfig = flags.rubocop && !flags.noRubocop
	config.FromViper(v).Apply(&opts)
	return opts
}

// runConfigure is the main orchestration function for the root command.
func runConfigure(ctx context.Context, cmd *cobra.Command, v *viper.Viper, flags *configureFlags) error {
	start := time.Now()

	opts := buildOptions(v, flags)
	if err := opts.Validate(); err != nil {
		return model.WrapCLIError(model.ExitUsage, "missing required options", err)
	}
	VerboseLog("Project: %s -> %s", opts.ProjectName, opts.ProjectPath)

	// A missing destination is a filesystem error even with --from-git,
	// where git would otherwise report it first.
	if err := scaffold.CheckProjectDir(opts.ProjectPath); err != nil {
		return model.WrapCLIError(model.ExitFilesystemError, "invalid project path", err)
	}

	if flags.fromGit {
		if err := applyGitRemote(&opts, flags.remote); err != nil {
			return err
		}
	}

	source, err := templates.Resolve(opts.TemplatesDir)
	if err != nil {
		return model.WrapCLIError(model.ExitFilesystemError, "failed to resolve templates", err)
	}
	VerboseLog("Templates: %s", source.Origin())

	out := cmd.OutOrStdout()

	// Progress lines would corrupt a JSON document on stdout.
	progressOut := out
	if IsJSONOutput() {
		progressOut = io.Discard
	}
	printer := console.New(progressOut, opts.Color)

	result, err := scaffold.New(opts, source, printer, scaffold.WithVerboseLog(VerboseLog)).Run(ctx)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	if IsJSONOutput() {
		return printConfigureResultJSON(out, result, elapsed)
	}
	printer.Summary(result.FileCount(), elapsed)
	return nil
}

// applyGitRemote overrides host and org with values parsed from the named
// remote of the repository containing the project directory.
func applyGitRemote(opts *model.Options, remote string) error {
	gm := gitremote.NewManager()

	repoRoot, err := gm.GetRepoRoot(opts.ProjectPath)
	if err != nil {
		return model.WrapCLIError(model.ExitGitError, "project path is not inside a Git repository", err)
	}

	r, err := gm.Detect(repoRoot, remote)
	if err != nil {
		return err
	}
	VerboseLog("Remote %s: host=%s org=%s repo=%s", remote, r.Host, r.Org, r.Repo)

	opts.Host = r.Host
	opts.Org = r.Org
	return nil
}

// printConfigureResultJSON writes the run summary as a JSON document.
func printConfigureResultJSON(w io.Writer, result *scaffold.Result, elapsed time.Duration) error {
	summary := console.SummaryJSON{
		Files:          result.FileCount(),
		ElapsedSeconds: elapsed.Seconds(),
		Source:         result.Source,
		// Empty slices instead of nil so the JSON shows [].
		Rendered: append(make([]string, 0, len(result.Rendered)), result.Rendered...),
		Copied:   append(make([]string, 0, len(result.Copied)), result.Copied...),
	}
	return console.New(w, false).JSON(summary)
}
