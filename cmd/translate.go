package cmd

import (
	"github.com/spf13/cobra"

	"demorun.dev/pkg/demorun/internal/domain"
	m "demorun.dev/pkg/demorun/internal/model"
)

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <file.go>",
		Short: "Translate a Go source file to TypeScript",
		Long:  translateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Translate(cmd.Context(), domain.TranslateArgs{Path: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
