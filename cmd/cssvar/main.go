// Package main provides the cssvar CLI, a linter that reports style-sheet
// declarations using hardcoded values where a design token is expected.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes
const (
	exitOK          = 0
	exitIssuesFound = 1
	exitUsage       = 2
)

// errIssuesFound signals a failed lint run whose report was already printed
var errIssuesFound = errors.New("lint issues found")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errIssuesFound):
		return exitIssuesFound
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
}
