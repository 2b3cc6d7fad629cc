package adapter

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "codemod.dev/pkg/codemod/internal/model"
)

const diffContextLines = 3

// UnifiedDiff renders change as a unified diff with git style a/ and b/
// file headers. An unchanged file yields an empty string.
func UnifiedDiff(change m.Change) (string, error) {
	if !change.Changed() {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        splitLines(change.Before),
		B:        splitLines(change.After),
		FromFile: "a/" + string(change.Path),
		ToFile:   "b/" + string(change.Path),
		Context:  diffContextLines,
	}

	return difflib.GetUnifiedDiffString(diff)
}

// splitLines splits s after every newline. Unlike difflib.SplitLines it does
// not add an empty last line when s ends with a newline; a final line
// without one gets it appended so every line renders on its own row.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")

	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}

	lines[last] += "\n"

	return lines
}
