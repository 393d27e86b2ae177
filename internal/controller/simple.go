package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	s.mode = cfg.mode

	if cfg.mode == ModeRun && cfg.total > 0 {
		s.printf("Processing %d %s\n", cfg.total, plural(cfg.total, "file", "files"))
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayTargets prints the discovered targets in processing order.
func (s *SimpleUI) DisplayTargets(ctx context.Context, targets []m.Target) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(targets) == 0 {
		s.printf("No files to process\n")
		return
	}

	s.printf("\n%s", renderTargetsTable(targets))
}

func renderTargetsTable(targets []m.Target) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Source", "Test", "Companion"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for i, target := range targets {
		table.Append([]string{
			strconv.Itoa(i + 1),
			string(target.Source),
			string(target.Test),
			string(target.Companion),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Files %d", len(targets)), "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayStage shows which repair step is running for a file.
func (s *SimpleUI) DisplayStage(ctx context.Context, source m.Path, stage m.Stage, attempt int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", stageLine(source, stage, attempt))
}

// DisplayOutcome shows the bucket a file ended in.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, outcome m.Outcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", outcomeLine(outcome))
}

// DisplaySummary prints the rendered summary followed by a counts table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary string, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(report.Files) == 0 {
		s.printf("No files were processed\n")
		return
	}

	if s.mode == ModeView {
		s.printf("Last run: %s framework, %s runner\n", report.Framework, report.Runner)
	}

	if summary != "" {
		s.printf("\n%s", summary)
	}

	s.printf("\n%s", renderCountsTable(report))

	if !report.StartedAt.IsZero() {
		s.printf("Started %s, took %s\n", humanize.Time(report.StartedAt), formatDuration(report))
	}
}

func renderCountsTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	counts := bucketCounts(report)
	for _, bucket := range m.Buckets {
		table.Append([]string{bucketLabels[bucket], strconv.Itoa(counts[bucket])})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(len(report.Files))})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// stageLine describes a running stage, e.g. "Fixing src/a.ts (2nd attempt)".
func stageLine(source m.Path, stage m.Stage, attempt int) string {
	switch stage {
	case m.StageBaseline:
		return fmt.Sprintf("Checking existing test for %s", source)
	case m.StageGenerating:
		return fmt.Sprintf("Generating test for %s", source)
	case m.StageVerifying:
		if attempt > 0 {
			return fmt.Sprintf("Running test for %s after %s fix", source, humanize.Ordinal(attempt))
		}

		return fmt.Sprintf("Running test for %s", source)
	case m.StageFixing:
		return fmt.Sprintf("Fixing %s (%s attempt)", source, humanize.Ordinal(attempt))
	}

	return string(source)
}

var (
	passingLabel = color.New(color.FgGreen).SprintFunc()
	failingLabel = color.New(color.FgRed).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
)

// outcomeLine describes the final bucket of a file.
func outcomeLine(outcome m.Outcome) string {
	switch outcome.Bucket {
	case m.BucketPassing:
		if outcome.Fixed() {
			return fmt.Sprintf("%s %s (fixed after %d %s)", passingLabel("PASS"), outcome.Source,
				outcome.Fixes, plural(outcome.Fixes, "attempt", "attempts"))
		}

		return fmt.Sprintf("%s %s", passingLabel("PASS"), outcome.Source)
	case m.BucketStillHasErrors:
		return fmt.Sprintf("%s %s: %v", failingLabel("FAIL"), outcome.Source, outcome.Err)
	case m.BucketPreExistingFailure:
		return fmt.Sprintf("%s %s: existing test already fails", skippedLabel("SKIP"), outcome.Source)
	case m.BucketAPIError:
		return fmt.Sprintf("%s %s: %v", skippedLabel("SKIP"), outcome.Source, outcome.Err)
	}

	return fmt.Sprintf("Would generate %s for %s", outcome.Test, outcome.Source)
}

func formatDuration(report m.RunReport) string {
	if report.Duration < time.Second {
		return report.Duration.String()
	}

	return report.Duration.Truncate(time.Second).String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
