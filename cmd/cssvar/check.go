package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssvar/internal/cssvar"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint one document read from stdin",
	Long: `Read a single CSS, SCSS or LESS document from stdin and lint it.
Useful for editor integrations and pre-commit hooks.

  cat button.scss | cssvar check --stdin-filename button.scss --props color`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	addRuleFlags(f)
	addOutputFlags(f)
	f.String("stdin-filename", "<stdin>", "File name used in reported positions")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	settings, err := buildRuleSettings()
	if err != nil {
		return err
	}
	if settings.disabled {
		return nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	config := buildLintConfig(nil, settings)
	config.Logger = commandLogger(cmd)

	filename := getStringWithFallback("stdin-filename", "stdin-filename", "<stdin>")
	result, err := cssvar.LintSource(string(data), filename, config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return report(cmd, result, config)
}
