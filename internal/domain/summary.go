package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

// Section headings of the rendered summary, keyed by bucket.
var sectionHeadings = map[m.Bucket]string{
	m.BucketPreExistingFailure: "Files with failing tests before generation",
	m.BucketStillHasErrors:     "Files whose tests still have errors",
	m.BucketPassing:            "Files with passing tests",
	m.BucketAPIError:           "Files skipped due to API errors",
}

var sectionColors = map[m.Bucket]*color.Color{
	m.BucketPreExistingFailure: color.New(color.FgYellow, color.Bold),
	m.BucketStillHasErrors:     color.New(color.FgRed, color.Bold),
	m.BucketPassing:            color.New(color.FgGreen, color.Bold),
	m.BucketAPIError:           color.New(color.FgMagenta, color.Bold),
}

// SummaryReporter accumulates per-file outcomes across a batch. It holds no
// state beyond the current run and is not safe for concurrent use.
type SummaryReporter struct {
	outcomes []m.Outcome
	seen     map[string]struct{}
}

// NewSummaryReporter creates an empty SummaryReporter.
func NewSummaryReporter() *SummaryReporter {
	return &SummaryReporter{seen: map[string]struct{}{}}
}

// Record appends an outcome. Recording the same file in the same bucket again
// is a no-op.
func (s *SummaryReporter) Record(outcome m.Outcome) {
	key := string(outcome.Bucket) + "\x00" + string(outcome.Source)
	if _, ok := s.seen[key]; ok {
		return
	}

	s.seen[key] = struct{}{}
	s.outcomes = append(s.outcomes, outcome)
}

// Outcomes returns the recorded outcomes in recording order.
func (s *SummaryReporter) Outcomes() []m.Outcome {
	return append([]m.Outcome(nil), s.outcomes...)
}

// Counts returns the number of files recorded per bucket.
func (s *SummaryReporter) Counts() map[m.Bucket]int {
	counts := make(map[m.Bucket]int, len(m.Buckets))
	for _, outcome := range s.outcomes {
		counts[outcome.Bucket]++
	}

	return counts
}

// Render groups the recorded files under a heading per bucket, in the fixed
// order of m.Buckets. Empty sections are omitted.
func (s *SummaryReporter) Render() string {
	var b strings.Builder

	for _, bucket := range m.Buckets {
		var lines []string

		for _, outcome := range s.outcomes {
			if outcome.Bucket != bucket {
				continue
			}

			lines = append(lines, renderOutcomeLine(outcome))
		}

		if len(lines) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "%s (%d):\n", sectionColors[bucket].Sprint(sectionHeadings[bucket]), len(lines))

		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	return b.String()
}

func renderOutcomeLine(outcome m.Outcome) string {
	line := string(outcome.Source)

	switch {
	case outcome.Fixed():
		line += fmt.Sprintf(" (fixed after %d %s)", outcome.Fixes, plural(outcome.Fixes, "attempt", "attempts"))
	case outcome.Bucket == m.BucketStillHasErrors && outcome.Reverted:
		line += " (reverted)"
	case outcome.Bucket == m.BucketAPIError && outcome.Err != nil:
		line += ": " + outcome.Err.Error()
	}

	return line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}

// outcomesFromReport rebuilds outcomes from a persisted report.
func outcomesFromReport(report m.RunReport) []m.Outcome {
	outcomes := make([]m.Outcome, 0, len(report.Files))

	for _, file := range report.Files {
		outcome := m.Outcome{
			Source:   m.Path(file.Source),
			Test:     m.Path(file.Test),
			Bucket:   file.Bucket,
			Fixes:    file.Fixes,
			Reverted: file.Reverted,
		}
		if file.Error != "" {
			outcome.Err = reportedError(file.Error)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// reportedError carries an error message restored from a report.
type reportedError string

func (e reportedError) Error() string {
	return string(e)
}
