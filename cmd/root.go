// Package cmd provides the root command and CLI setup for deepunit.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"deepunit.dev/pkg/deepunit/internal/adapter"
	"deepunit.dev/pkg/deepunit/internal/controller"
	"deepunit.dev/pkg/deepunit/internal/domain"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

// workflow is resolved lazily on first use so that commands which never touch
// the project (help, init, version) work outside a repository.
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns and includePatterns filter discovered files.
var excludePatterns []string
var includePatterns []string

var verboseFlag bool
var logFileFlag string

// stdoutIsTTY picks the interactive UI when stdout is a terminal.
var stdoutIsTTY = func() bool { return controller.IsTTY(os.Stdout) }

const pathArgumentsHelp = `Paths may be files or directories:
  - src/app/user.service.ts      process a single file
  - src/app                      process every source file below src/app
  - (none)                       process files changed since the last commit`

const rootLongDescription = `DeepUnit generates unit tests for JavaScript and TypeScript projects.

For every changed source file it checks the existing test, asks the DeepUnit
service for a new one and repairs it until it passes or the attempt budget
runs out. Tests that cannot be fixed are reverted.

` + pathArgumentsHelp

const runLongDescription = `Generate and repair tests for the given paths (default: changed files).

` + pathArgumentsHelp

const listLongDescription = `List the source files that would be processed, in processing order, with
their test and companion files.

` + pathArgumentsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "deepunit",
		Short:        "Unit test generation for JavaScript and TypeScript",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&includePatterns, includeFlagName, "i", viper.GetStringSlice(includeConfigKey), "only process files matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(includeFlagName), includeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug output to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// resolveWorkflow returns the package workflow, building the production wiring
// on first use.
func resolveWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	fsAdapter, err := adapter.NewLocalSourceFSAdapter(cfg)
	if err != nil {
		return nil, fmt.Errorf("source filesystem: %w", err)
	}

	if cfg.FrameworkVersion == "" {
		detected, err := fsAdapter.FrameworkVersion(cfg.Framework)
		if err != nil {
			slog.Warn("Could not detect framework version", "framework", cfg.Framework, "error", err)
		}

		cfg.FrameworkVersion = detected
	}

	vcs, err := adapter.NewLocalGitAdapter(cfg)
	if err != nil {
		return nil, err
	}

	runner, err := adapter.NewTestRunnerAdapter(cfg)
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, stdoutIsTTY())
	repairLoop := domain.NewRepairLoop(
		vcs,
		runner,
		adapter.NewHTTPGenerationClient(cfg),
		fsAdapter,
		ui,
		cfg.TestSuffix,
		cfg.MaxAttempts,
	)

	slog.Info("Configuration loaded",
		"root", cfg.WorkspaceRoot,
		"framework", cfg.Framework,
		"frameworkVersion", cfg.FrameworkVersion,
		"testFramework", cfg.TestFramework,
		"maxAttempts", cfg.MaxAttempts,
	)

	workflow = domain.NewWorkflow(
		cfg,
		vcs,
		fsAdapter,
		adapter.NewLocalToolchainAdapter(cfg),
		adapter.NewLocalReportStore(),
		ui,
		repairLoop,
	)

	return workflow, nil
}

// resolveReportWorkflow returns a workflow that can only read reports. It
// needs neither a repository nor a valid project configuration.
func resolveReportWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	return domain.NewWorkflow(
		m.Config{},
		nil,
		nil,
		nil,
		adapter.NewLocalReportStore(),
		controller.NewUI(cmd, stdoutIsTTY()),
		nil,
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
