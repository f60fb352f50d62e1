package cssvar_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssvar"
)

func TestCheck(t *testing.T) {
	opts, err := cssvar.ParseOptions(map[string]any{
		"props":         []any{"color", "/^border/"},
		"functionNames": []any{"theme"},
	})
	require.NoError(t, err)

	source := `$brand: #1a73e8;
.btn {
  color: #1a73e8;
  border-color: theme(line);
  border-width: 1px;
}
`
	diags, err := cssvar.Check(source, "button.scss", opts)
	require.NoError(t, err)
	require.Len(t, diags, 2)

	assert.Equal(t, `Expected a variable (maybe $brand) or function for "color".`, diags[0].Message)
	assert.Equal(t, "$brand", diags[0].Suggestion)
	assert.Equal(t, 3, diags[0].Declaration.Pos.Line)

	assert.Equal(t, `Expected a variable or function for "border-width".`, diags[1].Message)
}

func TestEvaluateOrderSensitivity(t *testing.T) {
	opts, err := cssvar.ParseOptions("color")
	require.NoError(t, err)

	declaredFirst := []cssvar.Declaration{
		{Property: "$c", Value: "red"},
		{Property: "color", Value: "$c"},
	}
	assert.Empty(t, cssvar.Evaluate(declaredFirst, opts))

	usedFirst := []cssvar.Declaration{
		{Property: "color", Value: "$c"},
		{Property: "$c", Value: "red"},
	}
	assert.Empty(t, cssvar.Evaluate(usedFirst, opts))
}

func TestParseOptionsInvalid(t *testing.T) {
	_, err := cssvar.ParseOptions(3.14)
	assert.ErrorIs(t, err, cssvar.ErrInvalidOptions)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte(`.a { color: red; }`), 0o644))

	opts, err := cssvar.ParseOptions("color")
	require.NoError(t, err)

	result, err := cssvar.Lint(context.Background(), cssvar.LintConfig{
		ScanPaths: []string{dir},
		Options:   opts,
	})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, cssvar.RuleName, result.Issues[0].FromLinter)
}
