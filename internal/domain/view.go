package domain

import (
	"context"
	"errors"
	"fmt"

	m "srcalias.dev/pkg/srcalias/internal/model"
)

// View loads a saved run report and replays it through the UI.
func (w *workflow) View(ctx context.Context, args ViewArgs) (m.RunReport, error) {
	if args.Report == "" {
		return m.RunReport{}, ErrNoReport
	}

	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("%s: %w", args.Report, err)
	}

	w.ui.DisplayRoot(ctx, report.Root)

	for _, file := range report.Files {
		for _, change := range file.Rewrites {
			w.ui.DisplayRewrite(ctx, file.Path, change.Line, change.Before, change.After)
		}

		for _, change := range file.Warnings {
			w.ui.DisplayMalformed(ctx, file.Path, change.Line, change.Before, errors.New(change.Error))
		}
	}

	w.ui.DisplaySummary(ctx, report)

	return report, nil
}
