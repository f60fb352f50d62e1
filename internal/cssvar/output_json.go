package cssvar

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string         `json:"version"`
	Timestamp  string         `json:"timestamp"`
	Rule       string         `json:"rule"`
	Summary    JSONSummary    `json:"summary"`
	Stats      JSONStats      `json:"stats"`
	Issues     []JSONIssue    `json:"issues"`
	Categories []JSONCategory `json:"categories"`
	QuickWins  []JSONQuickWin `json:"quick_wins"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains declaration statistics
type JSONStats struct {
	FilesSkipped        int `json:"files_skipped"`
	DeclarationsChecked int `json:"declarations_checked"`
	VariablesDeclared   int `json:"variables_declared"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Property   string `json:"property"`
	Value      string `json:"value"`
	Suggestion string `json:"suggestion,omitempty"`
	Source     string `json:"source,omitempty"`
}

// JSONCategory is the issue count of one property category
type JSONCategory struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// JSONQuickWin represents a repeated hardcoded value
type JSONQuickWin struct {
	Value       string   `json:"value"`
	Occurrences int      `json:"occurrences"`
	Properties  []string `json:"properties"`
	Suggestion  string   `json:"suggestion,omitempty"`
	IsColor     bool     `json:"is_color"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Property:   issue.Property,
			Value:      issue.Value,
			Suggestion: issue.Suggestion,
			Source:     source,
		}
	}

	categories := make([]JSONCategory, len(result.Categories))
	for i, c := range result.Categories {
		categories[i] = JSONCategory{Category: string(c.Category), Count: c.Count}
	}

	wins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		wins[i] = JSONQuickWin{
			Value:       win.Value,
			Occurrences: win.Occurrences,
			Properties:  win.Properties,
			Suggestion:  win.Suggestion,
			IsColor:     win.IsColor,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Rule:      RuleName,
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       len(result.IssuesByCategory[SeverityError]),
			Warnings:     len(result.IssuesByCategory[SeverityWarning]),
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			FilesSkipped:        result.FilesSkipped,
			DeclarationsChecked: result.DeclarationsChecked,
			VariablesDeclared:   result.VariablesDeclared,
		},
		Issues:     jsonIssues,
		Categories: categories,
		QuickWins:  wins,
		Warnings:   result.Warnings,
	}
}
