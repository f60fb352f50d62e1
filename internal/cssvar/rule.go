package cssvar

import "fmt"

// RuleName identifies this rule in issues and in stylelint configuration
const RuleName = "declaration-use-variable-or-custom-fn"

// Messages produced by the rule
const (
	MessageExpected        = `Expected a variable or function for "%s".`
	MessageExpectedPresent = `Expected a variable (maybe %s) or function for "%s".`
)

// ExpectedMessage is the generic violation message
func ExpectedMessage(property string) string {
	return fmt.Sprintf(MessageExpected, property)
}

// ExpectedPresentMessage names a variable declared earlier with the same value
func ExpectedPresentMessage(property, variable string) string {
	return fmt.Sprintf(MessageExpectedPresent, variable, property)
}

// Rule checks that policed properties use a variable or an approved function.
// A Rule is immutable; Evaluate may be called concurrently.
type Rule struct {
	opts       Options
	classifier *Classifier
}

// NewRule builds a rule from normalized options
func NewRule(opts Options) *Rule {
	return &Rule{
		opts:       opts,
		classifier: NewClassifier(opts.FunctionNames),
	}
}

// Options returns the rule's configuration
func (r *Rule) Options() Options {
	return r.opts
}

// Classifier returns the value classifier used by the rule
func (r *Rule) Classifier() *Classifier {
	return r.classifier
}

// Evaluate walks one document's declarations in order and returns the
// violations. Variable declarations are only visible to declarations that
// come after them.
func (r *Rule) Evaluate(decls []Declaration) []Diagnostic {
	diags, _ := r.evaluate(decls)
	return diags
}

// evaluate also returns the ledger so callers can report on declared variables
func (r *Rule) evaluate(decls []Declaration) ([]Diagnostic, *Ledger) {
	ledger := NewLedger()
	var diags []Diagnostic

	for _, d := range decls {
		relevant := r.opts.Props.Matches(d.Property)

		// $brand: blue; parses with the variable in the property slot
		if r.classifier.IsIndirection(d.Property) {
			ledger.Record(d.Value, d.Property)
			continue
		}

		if !relevant || r.classifier.IsIndirection(d.Value) {
			continue
		}

		if variable, ok := ledger.Lookup(d.Value); ok {
			diags = append(diags, Diagnostic{
				Declaration: d,
				Message:     ExpectedPresentMessage(d.Property, variable),
				Suggestion:  variable,
			})
			continue
		}

		diags = append(diags, Diagnostic{
			Declaration: d,
			Message:     ExpectedMessage(d.Property),
		})
	}

	return diags, ledger
}
