// Package controller provides console output for the codemod commands.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "codemod.dev/pkg/codemod/internal/model"
)

// RulesFormat selects how rule sets are printed.
type RulesFormat string

// Available RulesFormat values.
const (
	RulesFormatTable RulesFormat = "table"
	RulesFormatYAML  RulesFormat = "yaml"
)

// UI reports the progress and outcome of the rewrites.
// Implementations can use different output methods (plain text, styled text).
type UI interface {
	DisplayStripResult(ctx context.Context, changed bool, dryRun bool)
	DisplayFileFixed(ctx context.Context, path m.Path, dryRun bool)
	DisplayFileError(ctx context.Context, path m.Path, err error)
	DisplayFixSummary(ctx context.Context, summary m.RunSummary)
	DisplayDiff(ctx context.Context, path m.Path, diff string)
	DisplayRules(ctx context.Context, sets []m.RuleSet, format RulesFormat) error
}

// NewUI returns a StyledUI for terminals and a SimpleUI otherwise.
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

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
