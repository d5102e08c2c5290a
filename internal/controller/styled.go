package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

var (
	faintStyle  = lipgloss.NewStyle().Faint(true)
	beforeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	afterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	arrowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// StyledUI implements UI with colored output for interactive terminals.
type StyledUI struct {
	cmd *cobra.Command
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

// DisplayRoot prints the resolved root path.
func (s *StyledUI) DisplayRoot(ctx context.Context, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.println(faintStyle.Render(formatRoot(root)))
}

// DisplayRewrite prints the before and after text of a rewritten import.
func (s *StyledUI) DisplayRewrite(ctx context.Context, _ m.Path, _ int, before, after string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.println(beforeStyle.Render(before) + arrowStyle.Render(" --> ") + afterStyle.Render(after))
}

// DisplayMalformed prints a warning for an import that could not be rewritten.
func (s *StyledUI) DisplayMalformed(ctx context.Context, path m.Path, line int, text string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.println(warnStyle.Render("warning:") + " " + fmt.Sprintf("%s:%d: %v: %s", path, line, err, text))
}

// DisplaySummary prints totals for the run.
func (s *StyledUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), "\n%s", renderSummaryTable(report))
}

func (s *StyledUI) println(line string) {
	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), line)
}
