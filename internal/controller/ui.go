// Package controller renders rewrite progress and results for the CLI.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

// UI defines how the rewrite pass reports what it does.
// Implementations can use different output methods (plain text, styled text).
type UI interface {
	DisplayRoot(ctx context.Context, root m.Path)
	DisplayRewrite(ctx context.Context, path m.Path, line int, before, after string)
	DisplayMalformed(ctx context.Context, path m.Path, line int, text string, err error)
	DisplaySummary(ctx context.Context, report m.RunReport)
}

// NewUI picks the styled UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
