package cssvar

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// patternMatchTimeout bounds a single property test against a user pattern
const patternMatchTimeout = 100 * time.Millisecond

// Comparison selects the properties a rule polices.
// It is one of Literal, Pattern or List.
type Comparison interface {
	// Matches reports whether property is selected
	Matches(property string) bool
	// String renders the comparison the way it is written in configuration
	String() string
}

// Literal matches a property by exact equality
type Literal string

// Matches implements Comparison
func (l Literal) Matches(property string) bool {
	return property == string(l)
}

func (l Literal) String() string {
	return string(l)
}

// Pattern matches a property against a regular expression with
// ECMAScript semantics (lookarounds, backreferences).
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// CompilePattern compiles the body of a /.../ selector
func CompilePattern(body string) (*Pattern, error) {
	re, err := regexp2.Compile(body, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("compile pattern /%s/: %w", body, err)
	}
	re.MatchTimeout = patternMatchTimeout
	return &Pattern{source: body, re: re}, nil
}

// Matches implements Comparison. An engine error (timeout) is no match.
func (p *Pattern) Matches(property string) bool {
	ok, err := p.re.MatchString(property)
	if err != nil {
		return false
	}
	return ok
}

func (p *Pattern) String() string {
	return "/" + p.source + "/"
}

// List matches if any element matches
type List []Comparison

// Matches implements Comparison
func (l List) Matches(property string) bool {
	for _, c := range l {
		if c.Matches(property) {
			return true
		}
	}
	return false
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// isPatternSelector reports whether a selector string is written as /regex/
func isPatternSelector(s string) bool {
	return len(s) >= 2 && s[0] == '/' && s[len(s)-1] == '/'
}

// ParseComparison turns one selector string into a Literal or a Pattern
func ParseComparison(selector string) (Comparison, error) {
	if isPatternSelector(selector) {
		return CompilePattern(selector[1 : len(selector)-1])
	}
	return Literal(selector), nil
}
