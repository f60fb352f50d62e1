package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssvar/internal/cssvar"
)

const defaultConfigPath = ".cssvar.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set,
	// so flag defaults never shadow config file keys)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		if f.Value.Type() == "stringArray" {
			vals, _ := flags.GetStringArray(f.Name)
			return f.Name, vals
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSVAR_* prefix)
	if err := k.Load(env.Provider("CSSVAR_", ".", func(s string) string {
		// CSSVAR_LINT_STRICT -> lint.strict
		// CSSVAR_RULE -> rule
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSVAR_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// ruleSettings is the resolved rule configuration
type ruleSettings struct {
	options  cssvar.Options
	severity string // from a stylelint config, "" if unset
	disabled bool
}

// buildRuleSettings resolves the rule options. Sources, first match wins:
// --props, a stylelint config, the "rule" key of .cssvar.yaml (or CSSVAR_RULE).
// --function-names is added to whichever source supplied the props.
func buildRuleSettings() (ruleSettings, error) {
	var settings ruleSettings
	stylelintPath := getStringWithFallback("stylelint-config", "lint.stylelint-config", "")

	switch {
	case len(k.Strings("props")) > 0:
		opts, err := cssvar.ParseOptions(k.Strings("props"))
		if err != nil {
			return settings, err
		}
		settings.options = opts

	case stylelintPath != "":
		rule, err := cssvar.LoadStylelintConfig(stylelintPath)
		if err != nil {
			return settings, err
		}
		if rule.Disabled {
			return ruleSettings{disabled: true}, nil
		}
		settings.options = rule.Options
		settings.severity = rule.Severity

	case k.Exists("rule"):
		opts, err := cssvar.ParseOptions(k.Get("rule"))
		if err != nil {
			return settings, fmt.Errorf("rule: %w", err)
		}
		settings.options = opts

	default:
		return settings, fmt.Errorf("%w: no rule configured (set \"rule\" in %s, --props or --stylelint-config)",
			cssvar.ErrInvalidOptions, defaultConfigPath)
	}

	if names := k.Strings("function-names"); len(names) > 0 {
		opts, err := cssvar.ParseOptions(cssvar.Options{
			Props:         settings.options.Props,
			FunctionNames: slices.Concat(settings.options.FunctionNames, names),
		})
		if err != nil {
			return settings, err
		}
		settings.options = opts
	}

	return settings, nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig(args []string, settings ruleSettings) cssvar.LintConfig {
	// Handle paths: positional args first, then config key
	var scanPaths []string
	if len(args) > 0 {
		scanPaths = args
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = cssvar.DefaultScanPaths
	}

	severity := getStringWithFallback("severity", "lint.severity", settings.severity)
	if severity == "" {
		severity = cssvar.SeverityError
	}

	return cssvar.LintConfig{
		ScanPaths:          scanPaths,
		Options:            settings.options,
		Severity:           severity,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Concurrency:        getIntWithFallback("concurrency", "lint.concurrency", 0),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
