package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "codemod.dev/pkg/codemod/internal/model"
)

const (
	// StripChangedMessage is printed when the route file was rewritten.
	StripChangedMessage = "Successfully removed API keys and webhooks code from integrations.tsx"
	// StripUnchangedMessage is printed when no rule matched.
	StripUnchangedMessage = "No changes made - patterns may have already been removed"
	// StripDryRunMessage is printed instead of StripChangedMessage when nothing is written.
	StripDryRunMessage = "Dry run: would remove API keys and webhooks code from integrations.tsx"

	yamlIndent          = 2
	maxReplacementWidth = 60
)

// renderFunc has the shape of lipgloss.Style.Render.
type renderFunc func(strs ...string) string

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

type palette struct {
	success renderFunc
	failure renderFunc
	muted   renderFunc
	added   renderFunc
	removed renderFunc
	hunk    renderFunc
}

func plainPalette() palette {
	return palette{
		success: plain,
		failure: plain,
		muted:   plain,
		added:   plain,
		removed: plain,
		hunk:    plain,
	}
}

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd     *cobra.Command
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, palette: plainPalette()}
}

// DisplayStripResult prints whether the route file changed.
func (s *SimpleUI) DisplayStripResult(ctx context.Context, changed bool, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch {
	case !changed:
		s.printf("%s\n", s.palette.muted(StripUnchangedMessage))
	case dryRun:
		s.printf("%s\n", s.palette.success(StripDryRunMessage))
	default:
		s.printf("%s\n", s.palette.success(StripChangedMessage))
	}
}

// DisplayFileFixed prints a rewritten file.
func (s *SimpleUI) DisplayFileFixed(ctx context.Context, path m.Path, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if dryRun {
		s.printf("%s %s\n", s.palette.success("Would fix"), path)
		return
	}

	s.printf("%s %s\n", s.palette.success("Fixed"), path)
}

// DisplayFileError prints a failure isolated to one file.
func (s *SimpleUI) DisplayFileError(ctx context.Context, path m.Path, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("%s\n", s.palette.failure(fmt.Sprintf("Error processing %s: %v", path, err)))
}

// DisplayFixSummary prints the number of rewritten files.
func (s *SimpleUI) DisplayFixSummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	verb := "Fixed"
	if summary.DryRun {
		verb = "Would fix"
	}

	s.printf("\n%s %d files\n", verb, summary.FixedCount())
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, path m.Path, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		return
	}

	s.printf("%s\n", s.palette.muted("--- diff "+string(path)))

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		s.printf("%s", s.colorDiffLine(line))
	}
}

func (s *SimpleUI) colorDiffLine(line string) string {
	body := strings.TrimSuffix(line, "\n")
	suffix := line[len(body):]

	switch {
	case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
		return s.palette.muted(body) + suffix
	case strings.HasPrefix(body, "@@"):
		return s.palette.hunk(body) + suffix
	case strings.HasPrefix(body, "+"):
		return s.palette.added(body) + suffix
	case strings.HasPrefix(body, "-"):
		return s.palette.removed(body) + suffix
	}

	return line
}

// DisplayRules prints the rule sets as a table or as YAML.
func (s *SimpleUI) DisplayRules(ctx context.Context, sets []m.RuleSet, format RulesFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case RulesFormatYAML:
		out, err := renderRulesYAML(sets)
		if err != nil {
			return err
		}

		s.printf("%s", out)
	case RulesFormatTable, "":
		s.printf("%s", renderRulesTable(sets))
	default:
		return fmt.Errorf("unknown rules format %q", format)
	}

	return nil
}

func renderRulesYAML(sets []m.RuleSet) (string, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(sets); err != nil {
		return "", fmt.Errorf("encode rules: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("encode rules: %w", err)
	}

	return buf.String(), nil
}

func renderRulesTable(sets []m.RuleSet) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Set", "#", "Rule", "Replacement"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, set := range sets {
		for i, rule := range set.Rules {
			table.Append([]string{set.Name, fmt.Sprintf("%d", i+1), rule.Name, summarizeReplacement(rule.Replacement)})

			total++
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Sets %d", len(sets)), "", fmt.Sprintf("Rules %d", total), ""})
	table.Render()

	return tableBuffer.String()
}

// summarizeReplacement keeps table rows on one line.
func summarizeReplacement(replacement string) string {
	if replacement == "" {
		return "(delete)"
	}

	first, _, multiline := strings.Cut(replacement, "\n")
	if multiline {
		first += " ..."
	}

	if len(first) > maxReplacementWidth {
		first = first[:maxReplacementWidth] + " ..."
	}

	return first
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
