package cssvar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ErrRuleNotConfigured is returned when a stylelint config has no entry for the rule
var ErrRuleNotConfigured = errors.New("rule not configured")

// stylelintRuleKeys are the names the rule is registered under, plugin name first
var stylelintRuleKeys = []string{
	"chrismendis/" + RuleName,
	RuleName,
}

// StylelintRule is the rule entry read from a stylelint configuration
type StylelintRule struct {
	Options  Options
	Severity string // "" when the config does not set one
	Disabled bool   // rule set to null
}

// LoadStylelintConfig reads the rule entry from a .stylelintrc(.json) file.
// Comments and trailing commas are allowed.
func LoadStylelintConfig(path string) (*StylelintRule, error) {
	// #nosec G304 - path comes from a CLI flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylelint config: %w", err)
	}

	rule, err := ParseStylelintConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rule, nil
}

// ParseStylelintConfig extracts the rule entry from stylelint JSON.
// Accepted entry forms:
//
//	"color"
//	["color", "background"]
//	{"props": "color", "functionNames": ["theme"]}
//	[["color", "background"], {"severity": "warning"}]
//	["color", {"severity": "warning"}]
//	null
func ParseStylelintConfig(data []byte) (*StylelintRule, error) {
	var config struct {
		Rules map[string]any `json:"rules"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("parse stylelint config: %w", err)
	}

	var (
		entry any
		found bool
	)
	for _, key := range stylelintRuleKeys {
		if entry, found = config.Rules[key]; found {
			break
		}
	}
	if !found {
		return nil, ErrRuleNotConfigured
	}
	if entry == nil {
		return &StylelintRule{Disabled: true}, nil
	}

	primary, secondary := splitRuleSettings(entry)

	opts, err := ParseOptions(primary)
	if err != nil {
		return nil, err
	}

	rule := &StylelintRule{Options: opts}
	if sev, ok := secondary["severity"].(string); ok {
		if !validSeverity(sev) {
			return nil, fmt.Errorf("%w: severity %q", ErrInvalidOptions, sev)
		}
		rule.Severity = sev
	}
	return rule, nil
}

// splitRuleSettings separates stylelint's [primary, secondary] tuple
func splitRuleSettings(entry any) (any, map[string]any) {
	list, ok := entry.([]any)
	if !ok || len(list) == 0 {
		return entry, nil
	}

	// [["a", "b"], {...}] or [["a", "b"]]
	if _, nested := list[0].([]any); nested {
		var secondary map[string]any
		if len(list) > 1 {
			secondary, _ = list[1].(map[string]any)
		}
		return list[0], secondary
	}

	// ["a", {...}] or [{props...}, {...}]
	if len(list) == 2 {
		if secondary, ok := list[1].(map[string]any); ok {
			return list[0], secondary
		}
	}

	return entry, nil
}
