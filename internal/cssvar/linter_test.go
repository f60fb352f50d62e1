package cssvar

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.scss": `$brand: #1a73e8;
.btn {
  color: #1a73e8;
  background: $brand;
}
`,
		// The ledger is per file: $brand from a.scss is not visible here
		"b.scss": `.link {
  color: #1a73e8;
  margin: 4px;
}
`,
		"c.css": `.ok { color: var(--text); }`,
	})

	result, err := Lint(context.Background(), LintConfig{
		ScanPaths:   []string{filepath.Join(root, "*.{css,scss}")},
		Options:     mustOptions(t, []any{"color", "background"}),
		Concurrency: 2,
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 2)

	first := result.Issues[0]
	assert.Equal(t, filepath.Join(root, "a.scss"), first.Pos.Filename)
	assert.Equal(t, 3, first.Pos.Line)
	assert.Equal(t, 3, first.Pos.Column)
	assert.Equal(t, `Expected a variable (maybe $brand) or function for "color".`, first.Text)
	assert.Equal(t, "$brand", first.Suggestion)
	assert.Equal(t, SeverityError, first.Severity)
	assert.Equal(t, RuleName, first.FromLinter)
	assert.Equal(t, []string{"  color: #1a73e8;"}, first.SourceLines)

	second := result.Issues[1]
	assert.Equal(t, filepath.Join(root, "b.scss"), second.Pos.Filename)
	assert.Equal(t, `Expected a variable or function for "color".`, second.Text)
	assert.Empty(t, second.Suggestion)

	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 6, result.DeclarationsChecked)
	assert.Equal(t, 1, result.VariablesDeclared)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Len(t, result.IssuesByCategory[SeverityError], 2)

	require.Len(t, result.QuickWins, 1)
	assert.Equal(t, "#1a73e8", result.QuickWins[0].Value)
	assert.Equal(t, 2, result.QuickWins[0].Occurrences)
	assert.Equal(t, "$brand", result.QuickWins[0].Suggestion)
	assert.True(t, result.QuickWins[0].IsColor)

	assert.Equal(t, []CategoryCount{{Category: CategoryVisual, Count: 2}}, result.Categories)
}

func TestLintWarningSeverity(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.css": `.a { color: red; }`})

	result, err := Lint(context.Background(), LintConfig{
		ScanPaths: []string{root},
		Options:   mustOptions(t, "color"),
		Severity:  SeverityWarning,
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Equal(t, 0, result.ErrorCount)
	assert.False(t, ShouldFail(result, false))
	assert.True(t, ShouldFail(result, true))
}

func TestLintConfigErrors(t *testing.T) {
	_, err := Lint(context.Background(), LintConfig{Options: mustOptions(t, "color"), Severity: "fatal"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid severity "fatal"`)

	_, err = Lint(context.Background(), LintConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestLintCancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.css": `.a { color: red; }`})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Lint(ctx, LintConfig{
		ScanPaths: []string{root},
		Options:   mustOptions(t, "color"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLintSource(t *testing.T) {
	content := `@accent: red;
.a { color: red; background: @accent; }
`
	result, err := LintSource(content, "<stdin>", LintConfig{Options: mustOptions(t, "/^(color|background)$/")})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, `Expected a variable (maybe @accent) or function for "color".`, result.Issues[0].Text)
	assert.Equal(t, "<stdin>", result.Issues[0].Pos.Filename)
	assert.Equal(t, 2, result.Issues[0].Pos.Line)
	assert.Equal(t, 6, result.Issues[0].Pos.Column)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 3, result.DeclarationsChecked)
	assert.Equal(t, 1, result.VariablesDeclared)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "A"}, {Text: "A"}, {Text: "A"},
		{Text: "B"}, {Text: "B"},
		{Text: "C"},
	}

	tests := []struct {
		name          string
		config        LintConfig
		wantTexts     []string
		wantTruncated int
	}{
		{
			name:          "max issues per linter",
			config:        LintConfig{MaxIssuesPerLinter: 4},
			wantTexts:     []string{"A", "A", "A", "B"},
			wantTruncated: 2,
		},
		{
			name:          "max same issues",
			config:        LintConfig{MaxSameIssues: 1},
			wantTexts:     []string{"A", "B", "C"},
			wantTruncated: 3,
		},
		{
			name:          "both limits",
			config:        LintConfig{MaxIssuesPerLinter: 4, MaxSameIssues: 2},
			wantTexts:     []string{"A", "A", "B"},
			wantTruncated: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			texts := make([]string, len(got))
			for i, issue := range got {
				texts[i] = issue.Text
			}
			assert.Equal(t, tt.wantTexts, texts)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestShouldFail(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		strict bool
		want   bool
	}{
		{name: "clean", result: LintResult{}, want: false},
		{name: "clean strict", result: LintResult{}, strict: true, want: false},
		{name: "errors", result: LintResult{Issues: []Issue{{}}, ErrorCount: 1}, want: true},
		{name: "warnings only", result: LintResult{Issues: []Issue{{}}}, want: false},
		{name: "warnings strict", result: LintResult{Issues: []Issue{{}}}, strict: true, want: true},
		{name: "only truncated strict", result: LintResult{TruncatedCount: 3}, strict: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldFail(&tt.result, tt.strict))
		})
	}
}

func TestCategorizeProperty(t *testing.T) {
	tests := []struct {
		property string
		want     PropertyCategory
	}{
		{"color", CategoryVisual},
		{"background-color", CategoryVisual},
		{"border-top-width", CategoryVisual},
		{"margin-left", CategoryLayout},
		{"min-width", CategoryLayout},
		{"z-index", CategoryLayout},
		{"font-size", CategoryTypography},
		{"text-decoration", CategoryTypography},
		{"transition", CategoryEffects},
		{"-webkit-box-shadow", CategoryInternal},
		{"cursor", CategoryOther},
		{"colors", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, categorizeProperty(tt.property))
		})
	}
}

func TestGenerateQuickWins(t *testing.T) {
	var issues []Issue
	for i := 0; i < 3; i++ {
		issues = append(issues, Issue{Property: "padding", Value: "4px"})
	}
	issues = append(issues,
		Issue{Property: "color", Value: "red"},
		Issue{Property: "border-color", Value: "red", Suggestion: "$danger"},
		Issue{Property: "margin", Value: "8px"},
	)

	wins := generateQuickWins(issues)
	require.Len(t, wins, 2)

	assert.Equal(t, QuickWin{Value: "4px", Occurrences: 3, Properties: []string{"padding"}}, wins[0])
	assert.Equal(t, QuickWin{
		Value:       "red",
		Occurrences: 2,
		Properties:  []string{"border-color", "color"},
		Suggestion:  "$danger",
		IsColor:     true,
	}, wins[1])
}

func TestGenerateQuickWinsLimit(t *testing.T) {
	var issues []Issue
	for i := 0; i < maxQuickWins+5; i++ {
		value := fmt.Sprintf("%dpx", i)
		issues = append(issues,
			Issue{Property: "margin", Value: value},
			Issue{Property: "margin", Value: value})
	}

	assert.Len(t, generateQuickWins(issues), maxQuickWins)
}
