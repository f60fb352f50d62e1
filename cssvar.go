// Package cssvar reports style-sheet declarations that use a hardcoded
// value where a design token is expected.
//
// A token is a preprocessor variable ($brand, @brand), a custom property
// (--brand, var(--brand)), an SCSS map-get lookup, a color() function or
// one of the configured function names.
//
// # Checking a document
//
//	opts, err := cssvar.ParseOptions(map[string]any{
//		"props":         []any{"color", "/^border/"},
//		"functionNames": []any{"theme"},
//	})
//	diags, err := cssvar.Check(source, "button.scss", opts)
//
// Each diagnostic carries the message and, when a variable was declared
// earlier in the same document with the same value, the variable name:
//
//	Expected a variable (maybe $brand) or function for "color".
//
// # Linting a project
//
//	result, err := cssvar.Lint(ctx, cssvar.LintConfig{
//		ScanPaths: []string{"web/styles/**/*.scss"},
//		Options:   opts,
//	})
//
// # CLI Tool
//
// cssvar also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssvar/cmd/cssvar@latest
package cssvar

import (
	"context"

	core "github.com/yacobolo/cssvar/internal/cssvar"
)

// Re-exported types
type (
	Options     = core.Options
	Comparison  = core.Comparison
	Literal     = core.Literal
	Pattern     = core.Pattern
	List        = core.List
	Declaration = core.Declaration
	Position    = core.Position
	Diagnostic  = core.Diagnostic
	LintConfig  = core.LintConfig
	LintResult  = core.LintResult
	Issue       = core.Issue
)

// RuleName identifies the rule in reports and stylelint configuration
const RuleName = core.RuleName

// ErrInvalidOptions is returned when rule options have an unrecognized shape
var ErrInvalidOptions = core.ErrInvalidOptions

// ParseOptions normalizes a selector string, a list of selectors or a
// {props, functionNames} object into Options
func ParseOptions(raw any) (Options, error) {
	return core.ParseOptions(raw)
}

// Evaluate runs the rule over one document's declarations, in order
func Evaluate(decls []Declaration, opts Options) []Diagnostic {
	return core.NewRule(opts).Evaluate(decls)
}

// Check parses CSS, SCSS or LESS source and evaluates it
func Check(source, filename string, opts Options) ([]Diagnostic, error) {
	decls, err := core.ParseDeclarations(source, filename)
	if err != nil {
		return nil, err
	}
	return Evaluate(decls, opts), nil
}

// Lint discovers and lints every style sheet matched by config.ScanPaths
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	return core.Lint(ctx, config)
}
