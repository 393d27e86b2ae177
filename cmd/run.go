package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"deepunit.dev/pkg/deepunit/internal/domain"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

var runAllFlag bool
var runCIFlag bool
var runBaseRefFlag string
var runMaxAttemptsFlag int
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Generate and repair unit tests",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			dryRun, err := cmd.Flags().GetBool(dryRunFlagName)
			if err != nil {
				return err
			}

			return wf.Run(ctx, domain.RunArgs{
				Paths:   parsePaths(args),
				Reports: m.Path(viper.GetString(outputFlagName)),
				DryRun:  dryRun,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runAllFlag, allFlagName, "a", viper.GetBool(allFilesKey), "process every source file instead of changed files")
	bindFlagToConfig(cmd.Flags().Lookup(allFlagName), allFilesKey)

	cmd.Flags().BoolVar(&runCIFlag, ciFlagName, viper.GetBool(ciModeKey), "compare against the base ref instead of the working tree")
	bindFlagToConfig(cmd.Flags().Lookup(ciFlagName), ciModeKey)

	cmd.Flags().StringVar(&runBaseRefFlag, baseRefFlagName, viper.GetString(baseRefKey), "ref that changed files are computed against in CI mode")
	bindFlagToConfig(cmd.Flags().Lookup(baseRefFlagName), baseRefKey)

	cmd.Flags().IntVarP(&runMaxAttemptsFlag, maxAttemptsFlagName, "n", viper.GetInt(maxAttemptsKey), "maximum number of fix attempts per test file")
	bindFlagToConfig(cmd.Flags().Lookup(maxAttemptsFlagName), maxAttemptsKey)

	cmd.Flags().BoolVar(&runDryRunFlag, dryRunFlagName, false, "only check existing tests, do not call the generation service")
}
