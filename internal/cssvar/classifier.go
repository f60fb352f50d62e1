package cssvar

import "strings"

// indirectionCheck reports whether a text matches one recognized marker
type indirectionCheck func(text string) bool

// hasPrefix returns a check anchored at the start of the text.
// The prefix is compared as literal text, never as pattern syntax.
func hasPrefix(prefix string) indirectionCheck {
	return func(text string) bool {
		return strings.HasPrefix(text, prefix)
	}
}

// containsText returns an unanchored check
func containsText(sub string) indirectionCheck {
	return func(text string) bool {
		return strings.Contains(text, sub)
	}
}

// builtinChecks are the markers every classifier recognizes.
// The color( carve-out is first and may appear anywhere in the value.
var builtinChecks = []indirectionCheck{
	containsText("color("), // color functions: color(var(--x) a(50%))
	hasPrefix("$"),         // SCSS variable
	hasPrefix("@"),         // LESS variable
	containsText("map-get"),
	hasPrefix("--"),   // custom property
	hasPrefix("var("), // custom property accessor
}

// Classifier decides whether a text is indirection (variable, custom
// property, approved function call) or a plain literal.
type Classifier struct {
	checks        []indirectionCheck
	functionNames []string
}

// NewClassifier builds a classifier that also accepts the given function
// names as prefixes. Duplicate and empty names are dropped, order is kept.
func NewClassifier(functionNames []string) *Classifier {
	names := dedupeNames(functionNames)

	checks := make([]indirectionCheck, 0, len(builtinChecks)+len(names))
	checks = append(checks, builtinChecks...)
	for _, name := range names {
		checks = append(checks, hasPrefix(name))
	}

	return &Classifier{
		checks:        checks,
		functionNames: names,
	}
}

// IsIndirection reports whether text begins with a recognized marker
// (or contains color( / map-get anywhere).
func (c *Classifier) IsIndirection(text string) bool {
	for _, check := range c.checks {
		if check(text) {
			return true
		}
	}
	return false
}

// FunctionNames returns the configured function names in order
func (c *Classifier) FunctionNames() []string {
	out := make([]string, len(c.functionNames))
	copy(out, c.functionNames)
	return out
}

// IsIndirection classifies text with a one-off classifier
func IsIndirection(text string, functionNames []string) bool {
	return NewClassifier(functionNames).IsIndirection(text)
}

// dedupeNames removes empty and repeated names, keeping first occurrence order
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
