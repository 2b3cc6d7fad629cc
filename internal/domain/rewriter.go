// Package domain implements the source rewrites performed by codemod.
package domain

import (
	"fmt"
	"log/slog"
	"regexp"

	m "codemod.dev/pkg/codemod/internal/model"
)

// spaceChars is the Unicode whitespace set plus the ASCII separators
// \x1c-\x1f. RE2's \s alone covers [\t\n\f\r ].
const spaceChars = `\s\v\p{Zs}\x{1c}-\x{1f}\x{85}\x{2028}\x{2029}`

const (
	// space matches one whitespace character.
	space = `[` + spaceChars + `]`
	// nonSpaceOrComma matches one character that is neither whitespace nor a comma.
	nonSpaceOrComma = `[^,` + spaceChars + `]`
)

// Rewriter applies an ordered rule set to file content.
type Rewriter struct {
	name  string
	rules []compiledRule
}

type compiledRule struct {
	rule m.Rule
	re   *regexp.Regexp
}

// NewRewriter compiles every rule of the set. Compilation stops at the first
// invalid pattern.
func NewRewriter(set m.RuleSet) (*Rewriter, error) {
	rules := make([]compiledRule, 0, len(set.Rules))

	for _, rule := range set.Rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile rule %q of %q: %w", rule.Name, set.Name, err)
		}

		rules = append(rules, compiledRule{rule: rule, re: re})
	}

	return &Rewriter{name: set.Name, rules: rules}, nil
}

// MustRewriter is like NewRewriter but panics if a pattern does not compile.
// It is meant for the built-in rule sets.
func MustRewriter(set m.RuleSet) *Rewriter {
	r, err := NewRewriter(set)
	if err != nil {
		panic(err)
	}

	return r
}

// Name returns the name of the underlying rule set.
func (r *Rewriter) Name() string {
	return r.name
}

// Apply runs every rule over content in order. Each rule replaces all
// non-overlapping matches; replacements are inserted literally.
func (r *Rewriter) Apply(content string) string {
	for _, cr := range r.rules {
		hits := len(cr.re.FindAllStringIndex(content, -1))
		if hits == 0 {
			slog.Debug("rule did not match", "ruleset", r.name, "rule", cr.rule.Name)
			continue
		}

		content = cr.re.ReplaceAllLiteralString(content, cr.rule.Replacement)
		slog.Debug("rule applied", "ruleset", r.name, "rule", cr.rule.Name, "matches", hits)
	}

	return content
}
