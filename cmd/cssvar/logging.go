package main

import (
	"io"
	"log/slog"
)

// newLogger builds the CLI logger: debug with --verbose, warnings otherwise,
// nothing with --quiet. Logs go to stderr so report output stays parseable.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	if quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
