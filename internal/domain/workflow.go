// Package domain contains the import rewrite workflow and its rules.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"srcalias.dev/pkg/srcalias/internal/adapter"
	"srcalias.dev/pkg/srcalias/internal/controller"
	m "srcalias.dev/pkg/srcalias/internal/model"
)

var (
	// ErrRootNotFound is returned when the path to rewrite does not exist.
	ErrRootNotFound = errors.New("root path not found")
	// ErrNotText is returned for eligible files that are not valid UTF-8.
	ErrNotText = errors.New("file is not valid UTF-8 text")
	// ErrNoReport is returned by View when no report path is configured.
	ErrNoReport = errors.New("no report path given")
)

// RewriteArgs configures a rewrite pass. Zero values fall back to defaults.
type RewriteArgs struct {
	Root       m.Path
	Alias      string
	SourceRoot string
	Extensions []string
	Prune      []string
	Exclude    []string
	Report     m.Path
}

// ViewArgs selects a previously saved run report.
type ViewArgs struct {
	Report m.Path
}

// Workflow runs the rewrite over a project tree and replays saved reports.
type Workflow interface {
	Rewrite(ctx context.Context, args RewriteArgs) (m.RunReport, error)
	View(ctx context.Context, args ViewArgs) (m.RunReport, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	ui controller.UI
}

// NewWorkflow constructs a Workflow backed by the given adapters and UI.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, reportStore adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		ui:              ui,
	}
}

func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) (m.RunReport, error) {
	args = withDefaults(args)

	classifier, err := NewClassifier(args.Extensions, args.Prune, args.Exclude)
	if err != nil {
		return m.RunReport{}, err
	}

	root, err := w.resolveRoot(ctx, args.Root)
	if err != nil {
		return m.RunReport{}, err
	}

	slog.Debug("resolved root", "root", root, "alias", args.Alias, "sourceRoot", args.SourceRoot)
	w.ui.DisplayRoot(ctx, root)

	report := m.RunReport{Root: root, StartedAt: time.Now()}
	rewriter := NewRewriter(args.Alias)

	err = w.Walk(ctx, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			slog.Debug("skipping unreadable entry", "path", path, "error", walkErr)
			return nil
		}

		rel, relErr := w.RelPath(ctx, root, m.Path(path))
		if relErr != nil {
			rel = ""
		}

		if classifier.Prune(path, string(rel), d.IsDir()) {
			slog.Debug("pruned", "path", path)

			if d.IsDir() {
				return fs.SkipDir
			}

			return nil
		}

		if !classifier.Eligible(path, d) {
			return nil
		}

		result, err := w.processFile(ctx, rewriter, m.Path(path), args.SourceRoot)
		if err != nil {
			return err
		}

		report.Add(result)

		return nil
	})

	report.FinishedAt = time.Now()

	if err != nil {
		slog.Error("rewrite aborted", "root", root, "error", err)
		return report, err
	}

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			return report, fmt.Errorf("%s: %w", args.Report, err)
		}
	}

	w.ui.DisplaySummary(ctx, report)

	return report, nil
}

func (w *workflow) resolveRoot(ctx context.Context, root m.Path) (m.Path, error) {
	abs, err := w.AbsPath(ctx, root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
	}

	if _, err := w.FileInfo(ctx, abs); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRootNotFound, abs, err)
	}

	return abs, nil
}

// processFile reads path, rewrites its lines and writes it back if anything changed.
func (w *workflow) processFile(ctx context.Context, rewriter *Rewriter, path m.Path, sourceRoot string) (m.FileResult, error) {
	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("%s: failed to read file: %w", path, err)
	}

	if !utf8.Valid(content) {
		return m.FileResult{}, fmt.Errorf("%s: %w", path, ErrNotText)
	}

	depth := FileDepth(path, sourceRoot)
	result := processLines(rewriter, m.NewFileEntry(path), splitLines(string(content)), depth)

	for _, line := range result.Lines {
		switch line.Outcome {
		case m.LineRewritten:
			w.ui.DisplayRewrite(ctx, path, line.Number, line.Original, line.Text)
		case m.LineMalformed:
			slog.Warn("import left unchanged", "path", path, "line", line.Number, "error", line.Err)
			w.ui.DisplayMalformed(ctx, path, line.Number, line.Original, line.Err)
		case m.LineUnchanged:
		}
	}

	if !result.Changed {
		return result, nil
	}

	if err := w.WriteFile(ctx, path, []byte(result.Content())); err != nil {
		return result, fmt.Errorf("%s: failed to write file: %w", path, err)
	}

	slog.Info("rewrote file", "path", path, "depth", depth, "imports", len(result.Rewrites()))

	return result, nil
}

// processLines folds every line through the rewriter.
func processLines(rewriter *Rewriter, entry m.FileEntry, lines []string, depth int) m.FileResult {
	result := m.FileResult{
		Entry: entry,
		Depth: depth,
		Lines: make([]m.LineResult, 0, len(lines)),
	}

	for i, line := range lines {
		lineResult := rewriter.RewriteLine(line, i+1, depth)
		if lineResult.Outcome == m.LineRewritten {
			result.Changed = true
		}

		result.Lines = append(result.Lines, lineResult)
	}

	return result
}

// splitLines splits content on "\n", strips a trailing "\r" from each line and
// drops the empty segment after a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func withDefaults(args RewriteArgs) RewriteArgs {
	if args.Root == "" {
		args.Root = "."
	}

	if args.Alias == "" {
		args.Alias = DefaultAlias
	}

	if args.SourceRoot == "" {
		args.SourceRoot = DefaultSourceRoot
	}

	if len(args.Extensions) == 0 {
		args.Extensions = DefaultExtensions
	}

	if len(args.Prune) == 0 {
		args.Prune = DefaultPruneNames
	}

	return args
}
