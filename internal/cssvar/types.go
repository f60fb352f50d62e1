package cssvar

// Position locates a declaration in its source document
type Position struct {
	File   string // "web/styles/button.scss"
	Line   int    // 1-based
	Column int    // 1-based byte column of the property's first character
	Text   string // Full source line for display
}

// Declaration is a single property/value pair in document order.
// For preprocessor variable statements ($brand: blue;) the variable name
// sits in Property and the assigned value in Value.
type Declaration struct {
	Property  string // "color", "$brand", "--space-sm", "@accent"
	Value     string // "red", "$brand" (trimmed, comments and !important removed)
	Important bool   // true if the declaration ended with !important
	Pos       Position
}

// Diagnostic is one rule violation found while evaluating a document
type Diagnostic struct {
	Declaration Declaration
	Message     string
	Suggestion  string // Variable that was declared with the same value, if any
}

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories used to break down violations
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryInternal   PropertyCategory = "Internal"
	CategoryOther      PropertyCategory = "Other"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Quick Wins only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + Quick Wins (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
