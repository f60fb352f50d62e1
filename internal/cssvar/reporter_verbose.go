package cssvar

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Design Token Lint Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------------")

	fmt.Fprintf(r.w, "Files Scanned:          %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:          %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Declarations Checked:   %d\n", result.DeclarationsChecked)
	fmt.Fprintf(r.w, "Variables Declared:     %d\n", result.VariablesDeclared)
	fmt.Fprintf(r.w, "Hardcoded Values:       %d\n", len(result.Issues)+result.TruncatedCount)
}

// PrintCategories shows which property families carry the violations
func (r *VerboseReporter) PrintCategories(result LintResult) {
	if len(result.Categories) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "By Property Category", r.useColors))
	fmt.Fprintln(r.w, "--------------------")

	total := 0
	for _, c := range result.Categories {
		total += c.Count
	}
	for _, c := range result.Categories {
		fmt.Fprintf(r.w, "%-12s %4d  ", c.Category, c.Count)
		printProgressBar(r.w, float64(c.Count)/float64(total)*100)
	}
}

// PrintQuickWins shows values worth turning into a single variable
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "----------")

	for i, win := range result.QuickWins {
		kind := ""
		if win.IsColor {
			kind = " [color]"
		}

		advice := "extract a variable"
		if win.Suggestion != "" {
			advice = "use " + win.Suggestion
		}

		fmt.Fprintf(r.w, "%d. %q%s - %d occurrences in %s → %s\n",
			i+1, win.Value, kind, win.Occurrences, strings.Join(win.Properties, ", "), advice)
	}
}

// PrintWarnings shows files that could not be linted
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	fmt.Fprintf(w, "[%s] %.1f%%\n", bar.String(), percentage)
}
