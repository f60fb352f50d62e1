package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssvar/internal/cssvar"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint style sheets for hardcoded values",
	Long: `Check that the selected properties in CSS, SCSS and LESS files take their
value from a variable, a custom property or an approved function.

Paths may be files, directories or glob patterns (default: **/*.{css,scss,less}).`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLint,
}

func init() {
	f := lintCmd.Flags()
	addRuleFlags(f)
	addOutputFlags(f)
	f.Bool("watch", false, "Re-lint when style sheets change")
}

// addRuleFlags registers the flags that select and configure the rule
func addRuleFlags(f *pflag.FlagSet) {
	// StringArray: values are never split on commas
	f.StringArray("props", nil, "Properties to police (literal or /regex/, repeatable)")
	f.StringArray("function-names", nil, "Function names accepted as values (prefix match, repeatable)")
	f.String("stylelint-config", "", "Read rule options from a stylelint config file")
	f.String("severity", "", "Issue severity: error|warning (default error)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Int("concurrency", 0, "Files linted in parallel (0=number of CPUs)")
}

// addOutputFlags registers the report flags
func addOutputFlags(f *pflag.FlagSet) {
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// runLint is shared between `cssvar lint` and the bare `cssvar` command.
func runLint(cmd *cobra.Command, args []string) error {
	settings, err := buildRuleSettings()
	if err != nil {
		return err
	}

	logger := commandLogger(cmd)
	if settings.disabled {
		logger.Debug("rule disabled in stylelint config, nothing to lint")
		return nil
	}

	config := buildLintConfig(args, settings)
	config.Logger = logger

	if k.Bool("watch") {
		return watchLint(cmd, config)
	}

	result, err := cssvar.Lint(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	return report(cmd, result, config)
}

// report prints the result and applies the exit code policy ("soft gate"):
// errors fail the run, --strict fails on any issue.
func report(cmd *cobra.Command, result *cssvar.LintResult, config cssvar.LintConfig) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssvar.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := cssvar.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	if cssvar.ShouldFail(result, config.Strict) {
		return errIssuesFound
	}
	return nil
}

// watchLint lints once, then again after every batch of changes until
// the command context is cancelled
func watchLint(cmd *cobra.Command, config cssvar.LintConfig) error {
	ctx := cmd.Context()
	logger := config.Logger

	lintOnce := func(ctx context.Context) {
		result, err := cssvar.Lint(ctx, config)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("lint failed", "error", err)
			}
			return
		}
		if err := report(cmd, result, config); err != nil && !errors.Is(err, errIssuesFound) {
			logger.Error("writing report", "error", err)
		}
	}

	lintOnce(ctx)

	watcher, err := cssvar.NewWatcher(cssvar.WatchConfig{
		ScanPaths: config.ScanPaths,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes (Ctrl+C to stop)...")
	}

	return watcher.Run(ctx, func(ctx context.Context, changed []string) {
		logger.Info("re-linting", "changed", len(changed))
		lintOnce(ctx)
	})
}

// commandLogger builds the logger from the global flags
func commandLogger(cmd *cobra.Command) *slog.Logger {
	return newLogger(cmd.ErrOrStderr(),
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false))
}
