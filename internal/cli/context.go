// Package cli: context.go implements the "configure-docs context" command,
// which prints the values substituted into templates for a project name.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/midwire/configure-docs/internal/config"
	"github.com/midwire/configure-docs/internal/console"
	"github.com/midwire/configure-docs/internal/model"
)

// NewContextCommand creates the "context" cobra command.
func NewContextCommand(v *viper.Viper) *cobra.Command {
	var projectName string

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the substitution context for a project name",
		Long: `Print the values available to templates for the given project name:
the name itself, its titleized form and the derived project URLs.

Output is YAML, or JSON with --json. Host and org come from the config file
or the CONFIGURE_DOCS_HOST and CONFIGURE_DOCS_ORG environment variables.

Examples:
  configure-docs context -n foo-bar
  configure-docs context -n foo-bar --json`,

		Args: usageArgs(cobra.NoArgs),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runContext(cmd.OutOrStdout(), v, projectName)
		},
	}

	cmd.Flags().StringVarP(&projectName, "project-name", "n", "", "GitHub project name (required)")

	return cmd
}

func runContext(w io.Writer, v *viper.Viper, projectName string) error {
	opts := model.NewOptions(projectName, "")
	config.FromViper(v).Apply(&opts)

	if opts.ProjectName == "" {
		return model.NewCLIError(model.ExitUsage, "required option --project-name not set")
	}

	tags := opts.Tags()
	if IsJSONOutput() {
		return console.New(w, false).JSON(tags)
	}

	data, err := yaml.Marshal(tags)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode context", err)
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}
