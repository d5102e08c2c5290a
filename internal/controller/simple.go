package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

// SimpleUI implements UI using plain text on the cobra command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRoot prints the resolved root path.
func (s *SimpleUI) DisplayRoot(ctx context.Context, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", formatRoot(root))
}

// DisplayRewrite prints the before and after text of a rewritten import.
func (s *SimpleUI) DisplayRewrite(ctx context.Context, _ m.Path, _ int, before, after string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", formatRewrite(before, after))
}

// DisplayMalformed prints a warning for an import that could not be rewritten.
func (s *SimpleUI) DisplayMalformed(ctx context.Context, path m.Path, line int, text string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("%s\n", formatMalformed(path, line, text, err))
}

// DisplaySummary prints totals for the run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatRoot(root m.Path) string {
	return fmt.Sprintf("root = %q", root)
}

func formatRewrite(before, after string) string {
	return before + " --> " + after
}

func formatMalformed(path m.Path, line int, text string, err error) string {
	return fmt.Sprintf("warning: %s:%d: %v: %s", path, line, err, text)
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scanned", "Rewritten Files", "Rewritten Imports", "Warnings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	table.Append([]string{
		fmt.Sprintf("%d", report.FilesScanned),
		fmt.Sprintf("%d", report.FilesChanged),
		fmt.Sprintf("%d", report.ImportsRewritten),
		fmt.Sprintf("%d", report.MalformedLines),
	})

	table.Render()

	return tableBuffer.String()
}
