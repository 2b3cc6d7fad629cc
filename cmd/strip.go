package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codemod.dev/pkg/codemod/internal/domain"
	m "codemod.dev/pkg/codemod/internal/model"
)

const stripLongDescription = `Remove the deprecated API key and webhook code from the integrations
settings route (DIVE-031).

The file defaults to the strip.file config value
(app/routes/tenant/settings/integrations.tsx). Type declarations, loader
calls, returned fields and action handlers are replaced by DIVE-031 marker
comments; leftover destructured names are deleted. Running it twice is a
no-op. A missing or unreadable file aborts with a non-zero exit status.`

// stripCmd represents the strip command.
var stripCmd = newStripCmd()

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove API key and webhook code from the integrations route",
		Long:  stripLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			file := m.Path(viper.GetString(stripFileKey))
			if len(args) == 1 {
				file = m.Path(args[0])
			}

			return workflow.Strip(context.Background(), domain.StripArgs{
				File:   file,
				DryRun: viper.GetBool(dryRunFlagName),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(stripCmd)
}
