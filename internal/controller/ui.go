// Package controller provides output adapters for displaying test generation progress and results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	total     int
	interrupt func()
}

// WithRunMode sets the UI to repair mode for total files.
func WithRunMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
		c.total = total
	}
}

// WithListMode sets the UI to target listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithInterrupt registers a callback invoked when the user aborts the run
// from an interactive UI.
func WithInterrupt(interrupt func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = interrupt
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying repair progress and run summaries.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayTargets(ctx context.Context, targets []m.Target)
	DisplayStage(ctx context.Context, source m.Path, stage m.Stage, attempt int)
	DisplayOutcome(ctx context.Context, outcome m.Outcome)
	DisplaySummary(ctx context.Context, summary string, report m.RunReport)
}

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// bucketCounts tallies report files per bucket.
func bucketCounts(report m.RunReport) map[m.Bucket]int {
	counts := make(map[m.Bucket]int, len(m.Buckets))
	for _, file := range report.Files {
		counts[file.Bucket]++
	}

	return counts
}

// bucketLabels are the human readable bucket names used in tables.
var bucketLabels = map[m.Bucket]string{
	m.BucketPreExistingFailure: "Pre-existing failures",
	m.BucketStillHasErrors:     "Remaining errors",
	m.BucketPassing:            "Passing",
	m.BucketAPIError:           "API errors",
}
