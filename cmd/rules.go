package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"codemod.dev/pkg/codemod/internal/controller"
	"codemod.dev/pkg/codemod/internal/domain"
	m "codemod.dev/pkg/codemod/internal/model"
)

const (
	stripRulesArg = "strip"
	mocksRulesArg = "mocks"
)

var rulesFormatFlag string

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "rules [strip|mocks]",
		Short:     "List the substitution rules of each command",
		Long:      "Print the ordered substitution rules used by strip and fix-mocks, as a table or as YAML.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{stripRulesArg, mocksRulesArg},
		RunE: func(_ *cobra.Command, args []string) error {
			return ui.DisplayRules(context.Background(), selectRuleSets(args), controller.RulesFormat(rulesFormatFlag))
		},
	}

	cmd.Flags().StringVarP(&rulesFormatFlag, formatFlagName, "f", string(controller.RulesFormatTable),
		fmt.Sprintf("output format (%s or %s)", controller.RulesFormatTable, controller.RulesFormatYAML))

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func selectRuleSets(args []string) []m.RuleSet {
	if len(args) == 0 {
		return []m.RuleSet{domain.IntegrationsRuleSet(), domain.MockRuleSet()}
	}

	switch args[0] {
	case stripRulesArg:
		return []m.RuleSet{domain.IntegrationsRuleSet()}
	case mocksRulesArg:
		return []m.RuleSet{domain.MockRuleSet()}
	}

	return nil
}
