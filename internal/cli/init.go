package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statekit/storegen/internal/config"
)

const configScaffold = `# storegen configuration.
# Command-line flags override the values here.

# Path to the OpenAPI document (YAML or JSON).
spec: ./openapi.yaml

# Directory the generated modules are written to.
output: ./src/api

# Target library: react-query, swr, zustand or redux.
# The generate subcommand takes precedence over this value.
library: react-query

# Output language: typescript or javascript.
language: typescript

# Restrict generation to these tags. Empty means every tag.
# tags:
#   - Users
#   - Orders

# Fail on validation findings instead of reporting warnings.
strict: false

# Override built-in templates with .tmpl files from this directory.
# templates:
#   dir: ./templates
`

func InitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.DefaultConfigFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(config.DefaultConfigFile); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", config.DefaultConfigFile)
			}

			if err := os.WriteFile(config.DefaultConfigFile, []byte(configScaffold), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", config.DefaultConfigFile, err)
			}

			cmd.PrintErrf("Written: %s\n", config.DefaultConfigFile)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}
