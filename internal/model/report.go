package model

import "time"

// Bucket is the final classification of one file in a batch.
type Bucket string

const (
	// BucketPreExistingFailure marks files whose existing test already failed.
	BucketPreExistingFailure Bucket = "pre-existing-failure"
	// BucketStillHasErrors marks files whose test could not be repaired in budget.
	BucketStillHasErrors Bucket = "still-has-errors"
	// BucketPassing marks files whose generated test passes.
	BucketPassing Bucket = "passing"
	// BucketAPIError marks files skipped because the generation service failed.
	BucketAPIError Bucket = "api-error"
)

// Buckets lists every bucket in summary order.
var Buckets = []Bucket{
	BucketPreExistingFailure,
	BucketStillHasErrors,
	BucketPassing,
	BucketAPIError,
}

// Outcome is the terminal result of the repair loop for one source file.
type Outcome struct {
	Source   Path
	Test     Path
	Bucket   Bucket
	Fixes    int   // fix requests issued
	Reverted bool  // test file restored to its version-controlled state
	Err      error // cause for api-error and still-has-errors
}

// Fixed reports whether the test passes only thanks to at least one fix.
func (o Outcome) Fixed() bool {
	return o.Bucket == BucketPassing && o.Fixes > 0
}

// FileReport is the persisted form of an Outcome.
type FileReport struct {
	Source   string `yaml:"source"`
	Test     string `yaml:"test"`
	Bucket   Bucket `yaml:"bucket"`
	Fixes    int    `yaml:"fixes"`
	Reverted bool   `yaml:"reverted,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// RunReport is the persisted summary of one `run` invocation.
type RunReport struct {
	StartedAt time.Time     `yaml:"started_at"`
	Duration  time.Duration `yaml:"duration"`
	Framework string        `yaml:"framework"`
	Runner    string        `yaml:"runner"`
	Files     []FileReport  `yaml:"files"`
}

// NewFileReport converts an Outcome into its persisted form.
func NewFileReport(o Outcome) FileReport {
	report := FileReport{
		Source:   string(o.Source),
		Test:     string(o.Test),
		Bucket:   o.Bucket,
		Fixes:    o.Fixes,
		Reverted: o.Reverted,
	}
	if o.Err != nil {
		report.Error = o.Err.Error()
	}

	return report
}
