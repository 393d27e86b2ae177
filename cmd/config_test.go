package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "deepunit", configBaseName)
	assert.Equal(t, "deepunit.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, ".deepunit-reports", defaultReportsDir)
	assert.Equal(t, 7, defaultMaxAttempts)
	assert.Equal(t, "origin/HEAD", defaultBaseRef)
	assert.Equal(t, "DEEPUNIT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(string(cfg.WorkspaceRoot)))
	assert.Equal(t, "typescript", cfg.Framework)
	assert.Equal(t, m.TestFrameworkJest, cfg.TestFramework)
	assert.Equal(t, "test", cfg.TestSuffix)
	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, 2, cfg.GenerateRetries)
	assert.Equal(t, 2*time.Minute, cfg.APITimeout)
	assert.Equal(t, 2*time.Second, cfg.RetryBackoff)
	assert.Equal(t, "origin/HEAD", cfg.BaseRef)
	assert.Equal(t, ">= 14.0.0", cfg.MinNodeVersion)
}

func TestBuildConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DEEPUNIT_PROJECT_FRAMEWORK", "angular")
	t.Setenv("DEEPUNIT_PROJECT_TEST_FRAMEWORK", "karma")
	t.Setenv("DEEPUNIT_PROJECT_TEST_SUFFIX", "spec")
	t.Setenv("DEEPUNIT_API_TIMEOUT", "90s")

	cfg, err := buildConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsAngular())
	assert.Equal(t, m.TestFrameworkKarma, cfg.TestFramework)
	assert.Equal(t, "spec", cfg.TestSuffix)
	assert.Equal(t, 90*time.Second, cfg.APITimeout)
}

func TestBuildConfig_Invalid(t *testing.T) {
	t.Setenv("DEEPUNIT_RUN_MAX_ATTEMPTS", "0")

	_, err := buildConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
