package cssvar

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "declaration-use-variable-or-custom-fn"
	Text        string   `json:"Text"`        // "Expected a variable or function for \"color\"."
	Severity    string   `json:"Severity"`    // "error", "warning"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location

	// Declaration details for structured output
	Property   string `json:"Property"`
	Value      string `json:"Value"`
	Suggestion string `json:"Suggestion,omitempty"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/button.scss"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 3 (1-based, start of the property)
}

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// validSeverity reports whether s is a severity the linter emits
func validSeverity(s string) bool {
	return s == SeverityError || s == SeverityWarning
}

// newIssue converts a rule diagnostic into a reportable issue
func newIssue(d Diagnostic, severity string) Issue {
	decl := d.Declaration
	var lines []string
	if decl.Pos.Text != "" {
		lines = []string{decl.Pos.Text}
	}

	return Issue{
		FromLinter:  RuleName,
		Text:        d.Message,
		Severity:    severity,
		SourceLines: lines,
		Pos: IssuePos{
			Filename: decl.Pos.File,
			Line:     decl.Pos.Line,
			Column:   decl.Pos.Column,
		},
		Property:   decl.Property,
		Value:      decl.Value,
		Suggestion: d.Suggestion,
	}
}
