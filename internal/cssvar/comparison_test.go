package cssvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComparison(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		matches  []string
		misses   []string
		str      string
	}{
		{
			name:     "literal",
			selector: "color",
			matches:  []string{"color"},
			misses:   []string{"background-color", "Color", "colors"},
			str:      "color",
		},
		{
			name:     "anchored pattern",
			selector: "/^border/",
			matches:  []string{"border", "border-color", "border-top-width"},
			misses:   []string{"outline", "x-border"},
			str:      "/^border/",
		},
		{
			name:     "unanchored pattern",
			selector: "/color/",
			matches:  []string{"color", "background-color", "border-color"},
			misses:   []string{"background"},
			str:      "/color/",
		},
		{
			name:     "lookahead",
			selector: "/^margin(?!-left)/",
			matches:  []string{"margin", "margin-top"},
			misses:   []string{"margin-left"},
			str:      "/^margin(?!-left)/",
		},
		{
			name:     "empty pattern matches everything",
			selector: "//",
			matches:  []string{"color", ""},
			str:      "//",
		},
		{
			name:     "single slash is literal",
			selector: "/",
			matches:  []string{"/"},
			misses:   []string{"color"},
			str:      "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseComparison(tt.selector)
			require.NoError(t, err)

			for _, p := range tt.matches {
				assert.True(t, c.Matches(p), "expected %q to match %q", tt.selector, p)
			}
			for _, p := range tt.misses {
				assert.False(t, c.Matches(p), "expected %q not to match %q", tt.selector, p)
			}
			assert.Equal(t, tt.str, c.String())
		})
	}
}

func TestParseComparisonInvalidPattern(t *testing.T) {
	_, err := ParseComparison("/([a-z/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile pattern")
}

func TestListMatchesAny(t *testing.T) {
	pattern, err := CompilePattern("^padding")
	require.NoError(t, err)

	list := List{Literal("color"), pattern}

	assert.True(t, list.Matches("color"))
	assert.True(t, list.Matches("padding-top"))
	assert.False(t, list.Matches("margin"))
	assert.Equal(t, "[color, /^padding/]", list.String())

	assert.False(t, List{}.Matches("color"), "empty list matches nothing")
}
