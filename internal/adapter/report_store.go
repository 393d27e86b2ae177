package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

// ErrNoReport is returned by ReportStore.LoadReport before the first run.
var ErrNoReport = errors.New("no run report found")

const lastRunFile = "last-run.yaml"

// ReportStore persists the outcome of the most recent run in a reports
// directory.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
	LoadReport(dir m.Path) (m.RunReport, error)
}

// LocalReportStore keeps YAML run reports on disk.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes the report atomically, replacing the previous one. The
// directory is created when missing.
func (s *LocalReportStore) SaveReport(dir m.Path, report m.RunReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode run report: %w", err)
	}

	tmp, err := os.CreateTemp(string(dir), lastRunFile+".*")
	if err != nil {
		return fmt.Errorf("create run report: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("write run report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write run report: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(string(dir), lastRunFile)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace run report: %w", err)
	}

	return nil
}

// LoadReport reads the most recent report from dir.
func (s *LocalReportStore) LoadReport(dir m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(filepath.Join(string(dir), lastRunFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.RunReport{}, ErrNoReport
		}

		return m.RunReport{}, fmt.Errorf("read run report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("decode run report: %w", err)
	}

	return report, nil
}
