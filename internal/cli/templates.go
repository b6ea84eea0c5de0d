// Package cli: templates.go implements the "configure-docs templates"
// command, which shows what a run would render without writing anything.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/midwire/configure-docs/internal/config"
	"github.com/midwire/configure-docs/internal/console"
	"github.com/midwire/configure-docs/internal/model"
	"github.com/midwire/configure-docs/internal/templates"
)

// templatesResultJSON is the JSON output structure for the templates command.
type templatesResultJSON struct {
	Source     string         `json:"source"`
	Templates  []string       `json:"templates"`
	LintConfig lintConfigJSON `json:"lintConfig"`
}

type lintConfigJSON struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// NewTemplatesCommand creates the "templates" cobra command.
func NewTemplatesCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the templates a run would render",
		Long: `List the markdown templates that would be rendered, the directory (or
built-in set) they are read from, and whether the lint config file is present.

Examples:
  configure-docs templates
  configure-docs templates --templates-dir ./templates --json`,

		Args: usageArgs(cobra.NoArgs),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd.OutOrStdout(), v)
		},
	}
}

func runTemplates(w io.Writer, v *viper.Viper) error {
	settings := config.FromViper(v)

	source, err := templates.Resolve(settings.TemplatesDir)
	if err != nil {
		return model.WrapCLIError(model.ExitFilesystemError, "failed to resolve templates", err)
	}

	names, err := source.List()
	if err != nil {
		return model.WrapCLIError(model.ExitFilesystemError, "failed to list templates", err)
	}

	present, err := hasFile(source, settings.LintConfig)
	if err != nil {
		return model.WrapCLIError(model.ExitFilesystemError, "failed to inspect lint config", err)
	}

	result := templatesResultJSON{
		Source:     source.Origin(),
		Templates:  append(make([]string, 0, len(names)), names...),
		LintConfig: lintConfigJSON{Name: settings.LintConfig, Present: present},
	}

	if IsJSONOutput() {
		return console.New(w, false).JSON(result)
	}
	printTemplatesResultText(console.New(w, colorEnabled()), w, result)
	return nil
}

// printTemplatesResultText prints:
//
//	Source: (built-in)
//	Templates:
//	  CODE_OF_CONDUCT.md
//	  CONTRIBUTING.md
//	Lint config: .rubocop.yml (present)
//
// The present/missing marker is green or gray when color is enabled.
func printTemplatesResultText(p *console.Printer, w io.Writer, result templatesResultJSON) {
	fmt.Fprintf(w, "Source: %s\n", result.Source)
	if len(result.Templates) == 0 {
		fmt.Fprintln(w, "No templates found.")
	} else {
		fmt.Fprintln(w, "Templates:")
		for _, name := range result.Templates {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}

	state := p.Gray("missing")
	if result.LintConfig.Present {
		state = p.Green("present")
	}
	fmt.Fprintf(w, "Lint config: %s (%s)\n", result.LintConfig.Name, state)
}

// hasFile reports whether name is a regular file in the source.
func hasFile(source templates.Source, name string) (bool, error) {
	info, err := fs.Stat(source.FS(), name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
