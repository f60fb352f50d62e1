package cssvar

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultScanPaths are used when no patterns are configured
var DefaultScanPaths = []string{"**/*.{css,scss,less}"}

// styleExtensions are the file types the walker understands
var styleExtensions = map[string]bool{
	".css":  true,
	".scss": true,
	".less": true,
}

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped (minified, vendored, gitignored)
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isMinified checks for build output that is not worth linting
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.css")
}

// isVendored checks for dependency directories
func isVendored(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" || part == "vendor" {
			return true
		}
	}
	return false
}

// isStyleSheet checks the extension of a candidate file
func isStyleSheet(path string) bool {
	return styleExtensions[strings.ToLower(filepath.Ext(path))]
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from linting
//
// Filtering layers:
// 1. Type check: only .css, .scss and .less
// 2. Pattern check: *.min.css, node_modules/, vendor/
// 3. Gitignore check (relative paths only)
func shouldSkipFile(path string) bool {
	if !isStyleSheet(path) {
		return true
	}

	if isMinified(path) || isVendored(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are not governed by the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// directoryPattern turns a plain directory argument into a recursive glob
func directoryPattern(pattern string) string {
	info, err := os.Stat(pattern)
	if err != nil || !info.IsDir() {
		return pattern
	}
	return filepath.Join(pattern, "**", "*.{css,scss,less}")
}

// expandGlobPatterns expands globs to the sorted list of files to lint
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(directoryPattern(pattern))
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}

			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(allFiles)
	return allFiles, stats, nil
}
