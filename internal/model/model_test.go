package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestPathFor(t *testing.T) {
	tests := []struct {
		name   string
		source Path
		suffix string
		want   Path
	}{
		{"typescript", "src/foo.ts", "test", "src/foo.test.ts"},
		{"angular component", "src/app/app.component.ts", "spec", "src/app/app.component.spec.ts"},
		{"jsx", "ui/Button.jsx", "test", "ui/Button.test.jsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TestPathFor(tt.source, tt.suffix)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsTestPath(got, tt.suffix))
			assert.False(t, IsTestPath(tt.source, tt.suffix))
		})
	}
}

func TestCompanionPaths(t *testing.T) {
	assert.Equal(t, Path("a/x.component.html"), CompanionPathFor("a/x.component.ts"))
	assert.Equal(t, Path("a/x.component.ts"), SourcePathForCompanion("a/x.component.html", ".ts"))
}

func TestIsScript(t *testing.T) {
	assert.True(t, IsScript("a.ts"))
	assert.True(t, IsScript("a.tsx"))
	assert.False(t, IsScript("a.html"))
	assert.False(t, IsScript("README.md"))
}

func TestTestRunResult_Ok(t *testing.T) {
	assert.True(t, TestRunResult{Status: RunPassed}.Ok())
	assert.True(t, TestRunResult{Status: RunEmpty}.Ok())
	assert.False(t, TestRunResult{Status: RunFailed}.Ok())
	assert.Equal(t, "empty", RunEmpty.String())
}

func TestNewFileReport(t *testing.T) {
	report := NewFileReport(Outcome{
		Source: "a.ts",
		Test:   "a.test.ts",
		Bucket: BucketStillHasErrors,
		Fixes:  7,
		Err:    errors.New("boom"),
	})

	assert.Equal(t, "a.ts", report.Source)
	assert.Equal(t, BucketStillHasErrors, report.Bucket)
	assert.Equal(t, 7, report.Fixes)
	assert.Equal(t, "boom", report.Error)
}

func TestOutcome_Fixed(t *testing.T) {
	assert.True(t, Outcome{Bucket: BucketPassing, Fixes: 2}.Fixed())
	assert.False(t, Outcome{Bucket: BucketPassing}.Fixed())
	assert.False(t, Outcome{Bucket: BucketStillHasErrors, Fixes: 7}.Fixed())
}

func validConfig() Config {
	return Config{
		WorkspaceRoot:   "/tmp/project",
		Framework:       "react",
		TestFramework:   TestFrameworkJest,
		TestSuffix:      "test",
		ScriptTarget:    "typescript",
		APIHost:         "https://api.deepunit.dev",
		APITimeout:      time.Minute,
		GenerateRetries: 2,
		MaxAttempts:     7,
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.TestFramework = "mocha"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.MaxAttempts = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.APIHost = "not a url"
	assert.Error(t, cfg.Validate())

	assert.True(t, Config{Framework: "angular"}.IsAngular())
}
