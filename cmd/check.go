package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"demorun.dev/pkg/demorun/internal/domain"
)

var checkRunsFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that repeated runs print identical output",
		Long: `Run the demonstration several times in parallel and compare the printed
output byte for byte. A unified diff is reported if any run differs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Runs: viper.GetInt(checkRunsConfigKey),
			})
		},
	}

	cmd.Flags().IntVarP(&checkRunsFlag, checkRunsFlagName, "n", defaultCheckRuns, "number of runs to compare (minimum 2)")
	bindFlagToConfig(cmd.Flags().Lookup(checkRunsFlagName), checkRunsConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
