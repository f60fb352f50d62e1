package cssvar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes a shareable Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	bw := bufio.NewWriter(w)

	errors := len(result.IssuesByCategory[SeverityError])
	warnings := len(result.IssuesByCategory[SeverityWarning])

	fmt.Fprintln(bw, "# Design Token Lint Report")
	fmt.Fprintln(bw, "")
	fmt.Fprintf(bw, "Rule: `%s`\n", RuleName)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "## Executive Summary")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|--------|-------|")
	fmt.Fprintf(bw, "| **Status** | %s |\n", markdownStatus(result))
	fmt.Fprintf(bw, "| **Total Issues** | %d (%d errors, %d warnings) |\n", len(result.Issues), errors, warnings)
	fmt.Fprintf(bw, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(bw, "| **Declarations Checked** | %d |\n", result.DeclarationsChecked)
	fmt.Fprintf(bw, "| **Variables Declared** | %d |\n", result.VariablesDeclared)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(bw, "| **Truncated** | %d |\n", result.TruncatedCount)
	}
	fmt.Fprintln(bw, "")

	if len(result.QuickWins) > 0 {
		fmt.Fprintln(bw, "## Quick Wins")
		fmt.Fprintln(bw, "")
		fmt.Fprintln(bw, "| Value | Occurrences | Properties | Suggestion |")
		fmt.Fprintln(bw, "|-------|-------------|------------|------------|")
		for _, win := range result.QuickWins {
			suggestion := "extract a variable"
			if win.Suggestion != "" {
				suggestion = "`" + escapeMarkdown(win.Suggestion) + "`"
			}
			fmt.Fprintf(bw, "| `%s` | %d | %s | %s |\n",
				escapeMarkdown(win.Value),
				win.Occurrences,
				escapeMarkdown(strings.Join(win.Properties, ", ")),
				suggestion)
		}
		fmt.Fprintln(bw, "")
	}

	if len(result.Categories) > 0 {
		fmt.Fprintln(bw, "## By Property Category")
		fmt.Fprintln(bw, "")
		fmt.Fprintln(bw, "| Category | Issues |")
		fmt.Fprintln(bw, "|----------|--------|")
		for _, c := range result.Categories {
			fmt.Fprintf(bw, "| %s | %d |\n", c.Category, c.Count)
		}
		fmt.Fprintln(bw, "")
	}

	if len(result.Issues) > 0 {
		fmt.Fprintln(bw, "## Issues")
		fmt.Fprintln(bw, "")
		fmt.Fprintln(bw, "| Location | Severity | Message |")
		fmt.Fprintln(bw, "|----------|----------|---------|")
		for _, issue := range result.Issues {
			fmt.Fprintf(bw, "| `%s:%d:%d` | %s | %s |\n",
				escapeMarkdown(issue.Pos.Filename), issue.Pos.Line, issue.Pos.Column,
				issue.Severity,
				escapeMarkdown(issue.Text))
		}
		fmt.Fprintln(bw, "")
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(bw, "## Warnings")
		fmt.Fprintln(bw, "")
		for _, warning := range result.Warnings {
			fmt.Fprintf(bw, "- %s\n", escapeMarkdown(warning))
		}
		fmt.Fprintln(bw, "")
	}

	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw, "*Generated by cssvar linter v1.0*")

	return bw.Flush()
}

// markdownStatus summarizes the run as a status badge
func markdownStatus(result *LintResult) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Needs Attention"
	case len(result.Issues) > 0:
		return "🟡 Warnings Only"
	default:
		return "🟢 Clean"
	}
}

// escapeMarkdown escapes characters that break Markdown tables
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
