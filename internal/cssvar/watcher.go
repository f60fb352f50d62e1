package cssvar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long the watcher waits for more changes
const defaultDebounce = 150 * time.Millisecond

// WatchConfig configures watch mode
type WatchConfig struct {
	// ScanPaths are the lint patterns; their static prefixes are watched
	ScanPaths []string

	// DebounceDelay collapses bursts of saves into one run (0 = 150ms)
	DebounceDelay time.Duration

	// Logger for logging events (nil = discard)
	Logger *slog.Logger
}

// ChangeFunc is called with the style sheets changed since the last run
type ChangeFunc func(ctx context.Context, changed []string)

// Watcher re-runs a callback when style sheets under the scan roots change
type Watcher struct {
	config  WatchConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation
}

// NewWatcher creates a watcher for the roots of the scan patterns
func NewWatcher(config WatchConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = defaultDebounce
	}
	if len(config.ScanPaths) == 0 {
		config.ScanPaths = DefaultScanPaths
	}

	w := &Watcher{
		config:  config,
		watcher: fsw,
		logger:  config.Logger,
		pending: make(map[string]fsnotify.Op),
	}

	for _, root := range watchRoots(config.ScanPaths) {
		if err := w.addWatchesRecursive(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Run delivers debounced changes to onChange until ctx is cancelled
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.config.DebounceDelay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.handleFSEvent(event) {
				timer.Reset(w.config.DebounceDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-timer.C:
			if changed := w.drainPending(); len(changed) > 0 {
				w.logger.Debug("style sheets changed", "files", changed)
				onChange(ctx, changed)
			}
		}
	}
}

// handleFSEvent records a style sheet change; it reports whether the
// debounce timer should restart
func (w *Watcher) handleFSEvent(event fsnotify.Event) bool {
	// New directories need their own watch
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addWatchesRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return false
		}
	}

	if !isStyleSheet(event.Name) || isMinified(event.Name) || isVendored(event.Name) {
		return false
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = event.Op
	w.pendingMu.Unlock()
	return true
}

// drainPending returns and clears the changed paths, sorted
func (w *Watcher) drainPending() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	clear(w.pending)

	sort.Strings(changed)
	return changed
}

// addWatchesRecursive watches every directory below root
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		base := d.Name()
		if path != root && (base == "node_modules" || base == "vendor" || strings.HasPrefix(base, ".")) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("watching directory", "path", path)
		}
		return nil
	})
}

// watchRoots returns the existing static directories of the patterns,
// without duplicates or roots nested in another root
func watchRoots(patterns []string) []string {
	var roots []string
	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(directoryPattern(pattern)))
		base = filepath.Clean(filepath.FromSlash(base))

		info, err := os.Stat(base)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			base = filepath.Dir(base)
		}
		roots = append(roots, base)
	}

	sort.Strings(roots)
	var out []string
	for _, root := range roots {
		if len(out) > 0 && isWithin(out[len(out)-1], root) {
			continue
		}
		out = append(out, root)
	}
	return out
}

// isWithin reports whether path equals parent or sits below it
func isWithin(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
