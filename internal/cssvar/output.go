package cssvar

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet wins: the caller suppresses output and only the exit code matters
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	// Following golangci-lint's UX: issues only by default
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputSummary:
		useColors := shouldUseColors(config)
		writeVerbose(NewVerboseReporter(w, useColors), result)
		return nil

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		writeVerbose(NewVerboseReporter(w, reporter.UseColors()), result)
		return nil

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		return nil

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("writing Markdown: %w", err)
		}
		return nil

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		return nil
	}
}

func writeVerbose(r *VerboseReporter, result *LintResult) {
	r.PrintStatistics(*result)
	r.PrintCategories(*result)
	r.PrintQuickWins(*result)
	r.PrintWarnings(*result)
}
