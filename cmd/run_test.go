package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deepunit.dev/pkg/deepunit/internal/domain"
	domainmocks "deepunit.dev/pkg/deepunit/internal/domain/mocks"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

func newTestRunRoot(t *testing.T) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, mockWorkflow
}

func TestRunCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestRunRoot(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Paths) == 0 &&
			args.Reports == m.Path(".deepunit-reports") &&
			!args.DryRun
	})).Return(nil)

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_MultiplePaths(t *testing.T) {
	cmd, mockWorkflow := newTestRunRoot(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Paths) == 3 &&
			args.Paths[0] == m.Path("src/app") &&
			args.Paths[1] == m.Path("src/lib/util.ts") &&
			args.Paths[2] == m.Path("src/user.component.html")
	})).Return(nil)

	cmd.SetArgs([]string{"run", "src/app", "src/lib/util.ts", "src/user.component.html"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_DryRun(t *testing.T) {
	cmd, mockWorkflow := newTestRunRoot(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.DryRun
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--dry-run"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_OutputFlag(t *testing.T) {
	cmd, mockWorkflow := newTestRunRoot(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Reports == m.Path("./out")
	})).Return(nil)

	cmd.SetArgs([]string{"--output", "./out", "run"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_FlagsFeedConfig(t *testing.T) {
	cmd, mockWorkflow := newTestRunRoot(t)

	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{
		"run",
		"--all",
		"--ci",
		"--base-ref", "origin/main",
		"--max-attempts", "3",
		"-x", "**/*.stories.ts",
		"-x", "src/generated/**",
	})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.True(t, viper.GetBool(allFilesKey))
	assert.True(t, viper.GetBool(ciModeKey))
	assert.Equal(t, "origin/main", viper.GetString(baseRefKey))
	assert.Equal(t, 3, viper.GetInt(maxAttemptsKey))
	assert.Equal(t, []string{"**/*.stories.ts", "src/generated/**"}, viper.GetStringSlice(excludeConfigKey))
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	cmd, mockWorkflow := newTestRunRoot(t)

	fatal := errors.New("toolchain: node is too old")
	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(fatal)

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.ErrorIs(t, err, fatal)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	for _, name := range []string{allFlagName, ciFlagName, baseRefFlagName, maxAttemptsFlagName, dryRunFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	maxAttempts := cmd.Flags().Lookup(maxAttemptsFlagName)
	require.NotNil(t, maxAttempts)
	assert.Equal(t, "7", maxAttempts.DefValue)
}
