// Package scaffold runs a single configure-docs pass: render every template
// from a source into the project directory, then optionally copy the lint
// config file verbatim.
//
// The run is linear and stops at the first error. Files written before the
// failure are left in place; there is no rollback and no retry.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/midwire/configure-docs/internal/console"
	"github.com/midwire/configure-docs/internal/model"
	"github.com/midwire/configure-docs/internal/templates"
)

// Result describes a completed run.
type Result struct {
	// Source is the Origin of the template source that was used.
	Source string

	// Rendered lists the output path of every rendered template, in order.
	Rendered []string

	// Copied lists the output paths of verbatim copies (the lint config).
	Copied []string

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// FileCount is the number of rendered templates.
func (r *Result) FileCount() int {
	return len(r.Rendered)
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithVerboseLog routes trace lines to logf.
func WithVerboseLog(logf func(format string, args ...any)) Option {
	return func(s *Scaffolder) {
		s.logf = logf
	}
}

// Scaffolder renders one template source into one project directory.
type Scaffolder struct {
	opts    model.Options
	source  templates.Source
	printer *console.Printer
	logf    func(format string, args ...any)
}

// New returns a Scaffolder. Progress lines are written through printer.
func New(opts model.Options, source templates.Source, printer *console.Printer, options ...Option) *Scaffolder {
	s := &Scaffolder{
		opts:    opts,
		source:  source,
		printer: printer,
		logf:    func(string, ...any) {},
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Run performs the pass. Errors are *model.CLIError values carrying the
// exit code for their category (usage, template, filesystem).
//
// Steps:
//  1. Validate the options; nothing has been read or written on failure
//  2. Check that the project directory exists (it is never created)
//  3. List the templates and build the substitution context once
//  4. Render and write each template in name order
//  5. Copy the lint config verbatim, unless disabled
//
// The context is checked before every file, so cancellation never leaves a
// half-written output behind.
func (s *Scaffolder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	// Step 1: required options. The cli layer validates too, but a
	// Scaffolder built directly must not touch the filesystem either.
	if err := s.opts.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitUsage, "invalid options", err)
	}

	// Step 2: the destination must already be a directory.
	if err := CheckProjectDir(s.opts.ProjectPath); err != nil {
		return nil, model.WrapCLIError(model.ExitFilesystemError, "invalid project path", err)
	}

	// Step 3: enumerate templates. Tags depend only on the options, so they
	// are derived once for the whole run.
	names, err := s.source.List()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitFilesystemError, "failed to list templates", err)
	}
	s.logf("Template source: %s (%d templates)", s.source.Origin(), len(names))

	tags := s.opts.Tags()
	s.logf("Project home URL: %s", tags.ProjectHomeURL)

	result := &Result{Source: s.source.Origin()}

	// Step 4: render each template. The first failure aborts the run and
	// files written so far stay in place.
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "run cancelled", err)
		}

		outputPath := filepath.Join(s.opts.ProjectPath, name)
		s.printer.Processing(outputPath)

		text, err := s.source.Read(name)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitFilesystemError, "failed to read template", err)
		}

		rendered, err := templates.Render(name, text, tags)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitTemplateError, "failed to render template", err)
		}

		if err := templates.WriteFile(outputPath, rendered); err != nil {
			return nil, model.WrapCLIError(model.ExitFilesystemError, "failed to write output", err)
		}
		s.logf("Wrote %s (%s)", outputPath, humanize.Bytes(uint64(len(rendered))))

		result.Rendered = append(result.Rendered, outputPath)
	}

	// Step 5: the lint config is copied byte for byte, never rendered.
	if s.opts.CopyLintConfig {
		if err := ctx.Err(); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "run cancelled", err)
		}

		s.printer.Copying(filepath.Join(s.opts.ProjectPath, filepath.Base(s.opts.LintConfig)))
		dst, n, err := templates.CopyFile(s.source, s.opts.LintConfig, s.opts.ProjectPath)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitFilesystemError, "failed to copy lint config", err)
		}
		s.logf("Copied %s (%s)", dst, humanize.Bytes(uint64(n)))
		result.Copied = append(result.Copied, dst)
	} else {
		s.logf("Skipping %s (lint config copy disabled)", s.opts.LintConfig)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// CheckProjectDir verifies that path names an existing directory.
// The destination is never created.
func CheckProjectDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
