package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codemod.dev/pkg/codemod/internal/domain"
	m "codemod.dev/pkg/codemod/internal/model"
)

const fixMocksLongDescription = `Rewrite the inline requireOrgContext mocks of the integration tests from
the legacy tenant shape to the OrgContext shape.

Files matching --pattern below --root that contain "tenant: {" are
rewritten. The organization id comes from a mockOrganizationId constant,
then from the organizationId of the legacy mock, then from
--default-org-id. A file that cannot be read or written is reported and
skipped.`

var mocksRootFlag string
var mocksPatternFlag string
var mocksDefaultOrgFlag string
var mocksReplaceAllFlag bool

// fixMocksCmd represents the fix-mocks command.
var fixMocksCmd = newFixMocksCmd()

func newFixMocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-mocks",
		Short: "Rewrite legacy tenant mocks in integration tests",
		Long:  fixMocksLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.FixMocks(context.Background(), domain.FixMocksArgs{
				Root:         m.Path(viper.GetString(mocksRootKey)),
				Pattern:      viper.GetString(mocksPatternKey),
				DefaultOrgID: viper.GetString(mocksDefaultOrgKey),
				ReplaceAll:   viper.GetBool(mocksReplaceAllKey),
				DryRun:       viper.GetBool(dryRunFlagName),
			})
		},
	}

	configureFixMocksFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fixMocksCmd)
}

func configureFixMocksFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mocksRootFlag, rootFlagName, defaultMocksRoot, "directory the pattern is resolved against")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), mocksRootKey)

	cmd.Flags().StringVarP(&mocksPatternFlag, patternFlagName, "p", domain.DefaultMockPattern, "glob selecting the test files (** matches any number of directories)")
	bindFlagToConfig(cmd.Flags().Lookup(patternFlagName), mocksPatternKey)

	cmd.Flags().StringVar(&mocksDefaultOrgFlag, defaultOrgIDFlagName, domain.DefaultOrgID, "organization id literal used when a file names none")
	bindFlagToConfig(cmd.Flags().Lookup(defaultOrgIDFlagName), mocksDefaultOrgKey)

	cmd.Flags().BoolVar(&mocksReplaceAllFlag, replaceAllFlagName, defaultReplaceAll, "replace every legacy mock in a file instead of the first one")
	bindFlagToConfig(cmd.Flags().Lookup(replaceAllFlagName), mocksReplaceAllKey)
}
