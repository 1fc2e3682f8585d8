// Package controller provides output adapters for displaying lint results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "denolint.dev/pkg/denolint/internal/model"
)

// RuleInfo describes one catalog entry for display.
type RuleInfo struct {
	Code        string
	Description string
	Recommended bool
}

// UI defines the operator-facing output of the lint workflow.
// Implementations can write to a cobra command or plain streams.
type UI interface {
	// DisplayIssues writes formatted diagnostics for one file.
	DisplayIssues(ctx context.Context, path m.Path, issues []string)
	DisplayFileError(ctx context.Context, path m.Path, err error)
	DisplaySummary(ctx context.Context, result m.RunResult)
	// DisplayLines writes single-buffer results to standard output.
	DisplayLines(ctx context.Context, lines []string)
	DisplayRules(ctx context.Context, rules []RuleInfo)
}

// NewUI picks the UI for cmd. Colors are only used on a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
