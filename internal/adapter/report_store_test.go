package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

func TestLocalReportStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".deepunit-reports")
	store := NewLocalReportStore()

	_, err := store.LoadReport(m.Path(dir))
	require.ErrorIs(t, err, ErrNoReport)

	report := m.RunReport{
		StartedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Duration:  90 * time.Second,
		Framework: "react",
		Runner:    "jest",
		Files: []m.FileReport{
			{Source: "src/a.ts", Test: "src/a.test.ts", Bucket: m.BucketPassing, Fixes: 2},
			{Source: "src/b.ts", Test: "src/b.test.ts", Bucket: m.BucketStillHasErrors, Fixes: 7, Reverted: true, Error: "attempts exhausted"},
		},
	}

	require.NoError(t, store.SaveReport(m.Path(dir), report))

	loaded, err := store.LoadReport(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, report, loaded)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are renamed into place")

	report.Files = report.Files[:1]
	require.NoError(t, store.SaveReport(m.Path(dir), report))

	loaded, err = store.LoadReport(m.Path(dir))
	require.NoError(t, err)
	assert.Len(t, loaded.Files, 1)
}

func TestLocalReportStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "last-run.yaml"), "files: [unterminated")

	_, err := NewLocalReportStore().LoadReport(m.Path(dir))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoReport)
}
