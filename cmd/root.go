// Package cmd provides the root command and CLI setup for demorun.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"demorun.dev/pkg/demorun/internal/adapter"
	"demorun.dev/pkg/demorun/internal/controller"
	"demorun.dev/pkg/demorun/internal/domain"
	m "demorun.dev/pkg/demorun/internal/model"
)

var goFileAdapter adapter.GoFileAdapter = adapter.NewLocalGoFileAdapter()
var sourceFSAdapter adapter.SourceFSAdapter = adapter.NewLocalSourceFSAdapter()

// formatFlag selects the renderer for commands that display results.
var formatFlag string

// verboseFlag forces debug logging.
var verboseFlag bool

const formatsHelp = `Output formats (--format):
  - text    plain console lines (default)
  - table   one row per printed line
  - yaml    the transcript as a YAML sequence`

const translateLongDescription = `Translate a Go source file to TypeScript and print the result.

Supported: functions with typed parameters and one result, var/const
declarations (including grouped blocks), short declarations, slice literals,
if/else chains, calls, and fmt.Println (emitted as console.log). Types map
int and float kinds to number, bool to boolean, string to string and []T to T[].

` + formatsHelp

const rootLongDescription = `Demorun executes a fixed demonstration: it declares values of several
primitive types, adds and compares them, and prints each intermediate step.
The run takes no input and always prints the same output.

` + formatsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "demorun",
		Short:        "Run the primitive types demonstration",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context())
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&formatFlag, formatFlagName, "f",
			string(defaultFormat),
			"output format: text, table or yaml",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds the workflow for the configured output format.
func newWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	ui, err := controller.NewUI(cmd, m.Format(viper.GetString(formatFlagName)))
	if err != nil {
		return nil, err
	}

	translator := domain.NewTranslator(sourceFSAdapter, goFileAdapter)

	return domain.NewWorkflow(domain.NewRunner(), translator, ui), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
