package cssvar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// propValue is the comparable part of a declaration
type propValue struct {
	Property string
	Value    string
}

func propValues(decls []Declaration) []propValue {
	out := make([]propValue, len(decls))
	for i, d := range decls {
		out[i] = propValue{d.Property, d.Value}
	}
	return out
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []propValue
	}{
		{
			name:    "plain css",
			content: `.btn { color: red; background: #fff; }`,
			want: []propValue{
				{"color", "red"},
				{"background", "#fff"},
			},
		},
		{
			name: "scss variables",
			content: `$brand: #1a73e8;
.btn {
  color: $brand;
}`,
			want: []propValue{
				{"$brand", "#1a73e8"},
				{"color", "$brand"},
			},
		},
		{
			name: "less variables",
			content: `@accent: red;
.btn { color: @accent; }`,
			want: []propValue{
				{"@accent", "red"},
				{"color", "@accent"},
			},
		},
		{
			name: "custom properties",
			content: `:root {
  --space-sm: 4px;
}
.card { padding: var(--space-sm); }`,
			want: []propValue{
				{"--space-sm", "4px"},
				{"padding", "var(--space-sm)"},
			},
		},
		{
			name: "nested rules",
			content: `.card {
  padding: 8px;
  &:hover {
    color: red;
  }
  .title { font-size: 12px }
}`,
			want: []propValue{
				{"padding", "8px"},
				{"color", "red"},
				{"font-size", "12px"},
			},
		},
		{
			name: "at-rules are skipped",
			content: `@import "base";
@use "sass:map";
@include button($size: 4px);
@media (min-width: 10px) {
  a { color: blue; }
}`,
			want: []propValue{
				{"color", "blue"},
			},
		},
		{
			name: "line and block comments",
			content: `// color: red;
.a {
  /* margin: 0; */
  color: blue; // trailing note
  padding: 4px /* inline */;
}`,
			want: []propValue{
				{"color", "blue"},
				{"padding", "4px"},
			},
		},
		{
			name: "apostrophes in line comments",
			content: `$brand: blue; // brand's color
.a {
  // it's a comment
  color: red;
  // don't touch
  background: blue;
}`,
			want: []propValue{
				{"$brand", "blue"},
				{"color", "red"},
				{"background", "blue"},
			},
		},
		{
			name: "block comment opener inside line comment",
			content: `// see /* legacy
.a { color: red; }
.b { color: blue; }`,
			want: []propValue{
				{"color", "red"},
				{"color", "blue"},
			},
		},
		{
			name:    "double slash inside strings and urls",
			content: `.a { background: url(//cdn.example.com/a.png); content: "a // b"; font-family: 'x//y'; background-image: url("http://x/y.png"); }`,
			want: []propValue{
				{"background", "url(//cdn.example.com/a.png)"},
				{"content", `"a // b"`},
				{"font-family", "'x//y'"},
				{"background-image", `url("http://x/y.png")`},
			},
		},
		{
			name:    "block comments inside values",
			content: `.a { border: 1px /* width */ solid/**/red; margin: 0 /* a */ /* b */ auto; }`,
			want: []propValue{
				{"border", "1px solid red"},
				{"margin", "0 auto"},
			},
		},
		{
			name:    "last declaration without semicolon",
			content: `.a { color: red }`,
			want: []propValue{
				{"color", "red"},
			},
		},
		{
			name:    "function values keep their text",
			content: `.a { background-color: map-get($colors, primary); box-shadow: 0 1px 2px rgba(0, 0, 0, 0.2); }`,
			want: []propValue{
				{"background-color", "map-get($colors, primary)"},
				{"box-shadow", "0 1px 2px rgba(0, 0, 0, 0.2)"},
			},
		},
		{
			name:    "semicolon inside parentheses",
			content: `.a { background: url(data:image/png;base64,AAAA); color: red; }`,
			want: []propValue{
				{"background", "url(data:image/png;base64,AAAA)"},
				{"color", "red"},
			},
		},
		{
			name:    "interpolation in property",
			content: `.a { margin-#{$side}: 4px; }`,
			want: []propValue{
				{"margin-#{$side}", "4px"},
			},
		},
		{
			name:    "empty document",
			content: "",
			want:    []propValue{},
		},
		{
			name:    "unterminated declaration at end of document",
			content: `$brand: blue`,
			want: []propValue{
				{"$brand", "blue"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, err := ParseDeclarations(tt.content, "test.scss")
			require.NoError(t, err)
			assert.Equal(t, tt.want, propValues(decls))
		})
	}
}

func TestParseDeclarationsImportant(t *testing.T) {
	decls, err := ParseDeclarations(`.a { color: red !important; margin: 0 ! important; padding: 1px; }`, "a.css")
	require.NoError(t, err)
	require.Len(t, decls, 3)

	assert.Equal(t, "red", decls[0].Value)
	assert.True(t, decls[0].Important)
	assert.Equal(t, "0", decls[1].Value)
	assert.True(t, decls[1].Important)
	assert.Equal(t, "1px", decls[2].Value)
	assert.False(t, decls[2].Important)
}

func TestParseDeclarationsPositions(t *testing.T) {
	content := "$brand: #1a73e8;\n.btn {\n  color: #1a73e8;\n\tmargin: 4px;\n}\n"

	decls, err := ParseDeclarations(content, "web/button.scss")
	require.NoError(t, err)
	require.Len(t, decls, 3)

	assert.Equal(t, Position{File: "web/button.scss", Line: 1, Column: 1, Text: "$brand: #1a73e8;"}, decls[0].Pos)
	assert.Equal(t, Position{File: "web/button.scss", Line: 3, Column: 3, Text: "  color: #1a73e8;"}, decls[1].Pos)
	assert.Equal(t, Position{File: "web/button.scss", Line: 4, Column: 2, Text: "\tmargin: 4px;"}, decls[2].Pos)
}

func TestParseDeclarationsLineCommentKeepsPositions(t *testing.T) {
	content := "// it's the palette\n$brand: blue; // brand's color\n.a { background: blue; }\n"

	decls, err := ParseDeclarations(content, "a.scss")
	require.NoError(t, err)
	require.Len(t, decls, 2)

	assert.Equal(t, Position{File: "a.scss", Line: 2, Column: 1, Text: "$brand: blue; // brand's color"}, decls[0].Pos)
	assert.Equal(t, Position{File: "a.scss", Line: 3, Column: 6, Text: ".a { background: blue; }"}, decls[1].Pos)

	diags := NewRule(mustOptions(t, "background")).Evaluate(decls)
	require.Len(t, diags, 1)
	assert.Equal(t, `Expected a variable (maybe $brand) or function for "background".`, diags[0].Message)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.less")
	require.NoError(t, os.WriteFile(path, []byte("@c: red;\n.a { color: @c; }\n"), 0o644))

	decls, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []propValue{{"@c", "red"}, {"color", "@c"}}, propValues(decls))
	assert.Equal(t, path, decls[0].Pos.File)

	_, err = parseFile(filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
}
