package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssvar.yaml config file",
	Long:  `Create a .cssvar.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssvar configuration
# Docs: https://github.com/yacobolo/cssvar

verbose: false

# Rule options: a property name, a /regex/, a list of both,
# or an object with props and functionNames
rule:
  props:
    - color
    - background-color
    - "/^border(-.*)?-color$/"
    - "/^(margin|padding)(-.*)?$/"
  functionNames: []        # e.g. [theme, spacing]

# Linting settings
lint:
  paths:
    - "**/*.{css,scss,less}"
  severity: error          # error | warning
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
  concurrency: 0           # 0 = number of CPUs
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
