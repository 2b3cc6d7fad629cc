package domain

import (
	"context"
	"fmt"
	"log/slog"

	"codemod.dev/pkg/codemod/internal/adapter"
	"codemod.dev/pkg/codemod/internal/controller"
	m "codemod.dev/pkg/codemod/internal/model"
)

// StripArgs contains the arguments for the integrations strip.
type StripArgs struct {
	File   m.Path
	DryRun bool
}

// FixMocksArgs contains the arguments for the bulk mock rewrite.
type FixMocksArgs struct {
	Root         m.Path
	Pattern      string
	DefaultOrgID string
	ReplaceAll   bool
	DryRun       bool
}

// Workflow runs the rewrites against files on disk.
type Workflow interface {
	Strip(ctx context.Context, args StripArgs) error
	FixMocks(ctx context.Context, args FixMocksArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
	}
}

// Strip removes the API key and webhook code from a single route file. Any
// I/O failure aborts the run.
func (w *workflow) Strip(ctx context.Context, args StripArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := args.File
	if file == "" {
		file = DefaultStripFile
	}

	source, err := w.ReadSource(file)
	if err != nil {
		slog.Error("Failed to read route file", "path", file, "error", err)
		return fmt.Errorf("read %s: %w", file, err)
	}

	change := m.Change{Path: file, Before: source.Content, After: StripIntegrations(source.Content)}

	changed, err := w.commit(ctx, source, change, args.DryRun)
	if err != nil {
		slog.Error("Failed to write route file", "path", file, "error", err)
		return fmt.Errorf("write %s: %w", file, err)
	}

	slog.Info("Strip finished", "path", file, "changed", changed, "dryRun", args.DryRun)
	w.DisplayStripResult(ctx, changed, args.DryRun)

	return nil
}

// FixMocks rewrites the legacy requireOrgContext mocks of every file matching
// the pattern. A failing file is reported and skipped; only an invalid
// pattern or a cancelled context stops the run.
func (w *workflow) FixMocks(ctx context.Context, args FixMocksArgs) error {
	root := args.Root
	if root == "" {
		root = "."
	}

	pattern := args.Pattern
	if pattern == "" {
		pattern = DefaultMockPattern
	}

	files, err := w.Glob(root, pattern)
	if err != nil {
		slog.Error("Failed to discover files", "root", root, "pattern", pattern, "error", err)
		return fmt.Errorf("glob %s: %w", pattern, err)
	}

	slog.Debug("Discovered files", "root", root, "pattern", pattern, "count", len(files))

	rewriter := NewMockRewriter(WithDefaultOrgID(args.DefaultOrgID), WithReplaceAll(args.ReplaceAll))
	summary := m.RunSummary{DryRun: args.DryRun}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			slog.Debug("Mock rewrite cancelled", "scanned", summary.Scanned)
			return err
		}

		summary.Scanned++

		candidate, changed, err := w.fixMockFile(ctx, rewriter, path, args.DryRun)
		if candidate {
			summary.Candidates++
		}

		if err != nil {
			slog.Error("Failed to process file", "path", path, "error", err)
			summary.Failed = append(summary.Failed, m.FileError{Path: path, Err: err})
			w.DisplayFileError(ctx, path, err)

			continue
		}

		if changed {
			summary.Fixed = append(summary.Fixed, path)
			w.DisplayFileFixed(ctx, path, args.DryRun)
		}
	}

	slog.Info("Mock rewrite finished",
		"scanned", summary.Scanned,
		"candidates", summary.Candidates,
		"fixed", summary.FixedCount(),
		"failed", len(summary.Failed),
		"dryRun", args.DryRun,
	)
	w.DisplayFixSummary(ctx, summary)

	return nil
}

func (w *workflow) fixMockFile(ctx context.Context, rewriter *MockRewriter, path m.Path, dryRun bool) (bool, bool, error) {
	source, err := w.ReadSource(path)
	if err != nil {
		return false, false, err
	}

	if !rewriter.HasMarker(source.Content) {
		slog.Debug("Skipping file without marker", "path", path)
		return false, false, nil
	}

	change := m.Change{Path: path, Before: source.Content, After: rewriter.Rewrite(source.Content)}

	changed, err := w.commit(ctx, source, change, dryRun)

	return true, changed, err
}

// commit writes change.After back to source when the content changed. In dry
// run mode the diff is displayed instead.
func (w *workflow) commit(ctx context.Context, source m.SourceFile, change m.Change, dryRun bool) (bool, error) {
	if !change.Changed() {
		return false, nil
	}

	if dryRun {
		diff, err := adapter.UnifiedDiff(change)
		if err != nil {
			return true, fmt.Errorf("diff: %w", err)
		}

		w.DisplayDiff(ctx, change.Path, diff)

		return true, nil
	}

	source.Content = change.After
	if err := w.WriteSource(source); err != nil {
		return true, err
	}

	slog.Debug("Wrote file", "path", change.Path, "before", len(change.Before), "after", len(change.After))

	return true, nil
}
