// Package cssvar checks that style-sheet declarations use design tokens.
//
// Properties selected by the rule options must take their value from a
// preprocessor variable ($brand, @brand), a custom property (--brand,
// var(--brand)), an SCSS map-get lookup, a color() function, or one of the
// configured function names. Anything else is reported:
//
//	$brand: #1a73e8;
//	.btn { background: #1a73e8; }
//	// Expected a variable (maybe $brand) or function for "background".
//
// Variables are tracked per document in a single forward pass, so a
// variable only becomes a suggestion for declarations below it.
package cssvar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths   []string // Patterns to scan (e.g., "web/styles/**/*.scss")
	Options     Options  // Normalized rule options
	Severity    string   // "error" (default) or "warning"
	Strict      bool     // Exit with code 1 on any issue
	Concurrency int      // Files evaluated in parallel (0 = NumCPU)

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (linter) suffix (default: true)
	UseColors          bool // Force color output (default: auto-detect)

	Logger *slog.Logger // nil = discard
}

// LintResult contains linting analysis results
type LintResult struct {
	Issues           []Issue            // All issues found, in file order
	IssuesByCategory map[string][]Issue // Grouped by severity for stats
	Categories       []CategoryCount    // Issues per property category
	QuickWins        []QuickWin         // Most repeated hardcoded values

	FilesScanned        int // Files walked
	FilesSkipped        int // Files filtered out during discovery
	DeclarationsChecked int // Declarations seen across all files
	VariablesDeclared   int // Distinct values recorded as variable declarations
	ErrorCount          int // Issues with error severity
	TruncatedCount      int // Issues removed due to limits

	Warnings []string // Files that could not be read or parsed
}

// fileResult is the outcome of evaluating one document
type fileResult struct {
	path         string
	diagnostics  []Diagnostic
	declarations int
	variables    int
	err          error
}

// Lint discovers style sheets, evaluates each with its own variable
// ledger, and collects the issues in file order.
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	severity, err := resolveSeverity(config.Severity)
	if err != nil {
		return nil, err
	}
	if config.Options.Props == nil {
		return nil, fmt.Errorf("%w: props is required", ErrInvalidOptions)
	}
	rule := NewRule(config.Options)

	// Step 1: Discover files
	patterns := config.ScanPaths
	if len(patterns) == 0 {
		patterns = DefaultScanPaths
	}
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to expand scan paths: %w", err)
	}
	logger.Debug("discovered style sheets",
		"patterns", patterns,
		"scanned", stats.FilesScanned,
		"skipped", stats.FilesSkipped)

	// Step 2: Evaluate files concurrently, one ledger per file
	results, err := evaluateFiles(ctx, rule, files, config.Concurrency)
	if err != nil {
		return nil, err
	}

	// Step 3: Collect issues in file order
	result := &LintResult{
		FilesScanned: len(files),
		FilesSkipped: stats.FilesSkipped,
	}
	for _, fr := range results {
		if fr.err != nil {
			logger.Warn("skipping file", "file", fr.path, "error", fr.err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", fr.path, fr.err))
			continue
		}
		logger.Debug("evaluated file",
			"file", fr.path,
			"declarations", fr.declarations,
			"issues", len(fr.diagnostics))

		result.DeclarationsChecked += fr.declarations
		result.VariablesDeclared += fr.variables
		for _, d := range fr.diagnostics {
			result.Issues = append(result.Issues, newIssue(d, severity))
		}
	}

	finalizeResult(result, config)
	return result, nil
}

// LintSource evaluates a single in-memory document (stdin, editor buffers)
func LintSource(content, filename string, config LintConfig) (*LintResult, error) {
	severity, err := resolveSeverity(config.Severity)
	if err != nil {
		return nil, err
	}
	if config.Options.Props == nil {
		return nil, fmt.Errorf("%w: props is required", ErrInvalidOptions)
	}

	decls, err := ParseDeclarations(content, filename)
	if err != nil {
		return nil, err
	}
	diags, ledger := NewRule(config.Options).evaluate(decls)

	result := &LintResult{
		FilesScanned:        1,
		DeclarationsChecked: len(decls),
		VariablesDeclared:   ledger.Len(),
	}
	for _, d := range diags {
		result.Issues = append(result.Issues, newIssue(d, severity))
	}

	finalizeResult(result, config)
	return result, nil
}

// evaluateFiles runs the rule over every file. Per-file failures are
// returned in the fileResult; only cancellation aborts the run.
func evaluateFiles(ctx context.Context, rule *Rule, files []string, concurrency int) ([]fileResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range files {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluateFile(rule, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lint cancelled: %w", err)
	}
	return results, nil
}

func evaluateFile(rule *Rule, path string) fileResult {
	decls, err := parseFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	diags, ledger := rule.evaluate(decls)
	return fileResult{
		path:         path,
		diagnostics:  diags,
		declarations: len(decls),
		variables:    ledger.Len(),
	}
}

// finalizeResult computes statistics and applies issue limits
func finalizeResult(result *LintResult, config LintConfig) {
	result.Categories = countByCategory(result.Issues)
	result.QuickWins = generateQuickWins(result.Issues)

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	result.IssuesByCategory = make(map[string][]Issue)
	result.ErrorCount = 0
	for _, issue := range result.Issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}
}

func resolveSeverity(s string) (string, error) {
	if s == "" {
		return SeverityError, nil
	}
	if !validSeverity(s) {
		return "", fmt.Errorf("invalid severity %q (want %q or %q)", s, SeverityError, SeverityWarning)
	}
	return s, nil
}

// ShouldFail applies the exit-code policy: errors always fail, strict
// mode fails on any issue.
func ShouldFail(result *LintResult, strict bool) bool {
	if strict {
		return len(result.Issues) > 0 || result.TruncatedCount > 0
	}
	return result.ErrorCount > 0
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
