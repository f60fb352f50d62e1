package cssvar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/abs/styles/button.scss", false},
		{"/abs/styles/button.css", false},
		{"/abs/styles/theme.LESS", false},
		{"/abs/styles/app.min.css", true},
		{"/abs/node_modules/pkg/index.css", true},
		{"/abs/vendor/lib.scss", true},
		{"/abs/styles/readme.md", true},
		{"/abs/styles/button.sass", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSkipFile(filepath.FromSlash(tt.path)))
		})
	}
}

func TestExpandGlobPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"styles/b.scss":              "",
		"styles/a.css":               "",
		"styles/nested/c.less":       "",
		"styles/app.min.css":         "",
		"styles/notes.txt":           "",
		"node_modules/pkg/index.css": "",
	})

	files, stats, err := expandGlobPatterns([]string{
		filepath.Join(root, "**", "*.{css,scss,less}"),
		filepath.Join(root, "styles", "*.scss"), // overlaps the first pattern
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "styles", "a.css"),
		filepath.Join(root, "styles", "b.scss"),
		filepath.Join(root, "styles", "nested", "c.less"),
	}, files)
	assert.Equal(t, 5, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 2, stats.FilesSkipped)
}

func TestExpandGlobPatternsDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.scss":     "",
		"sub/b.less": "",
		"sub/c.txt":  "",
	})

	files, _, err := expandGlobPatterns([]string{root})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.scss"),
		filepath.Join(root, "sub", "b.less"),
	}, files)
}

func TestExpandGlobPatternsNoMatches(t *testing.T) {
	files, stats, err := expandGlobPatterns([]string{filepath.Join(t.TempDir(), "*.css")})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 0, stats.FilesDiscovered)
}

func TestExpandGlobPatternsBadPattern(t *testing.T) {
	_, _, err := expandGlobPatterns([]string{"styles/["})
	require.Error(t, err)
}
