package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"

	"deepunit.dev/pkg/deepunit/internal/adapter"
	"deepunit.dev/pkg/deepunit/internal/controller"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

// DefaultMaxAttempts bounds the fix requests issued per test file.
const DefaultMaxAttempts = 7

// ErrAttemptsExhausted is recorded on outcomes classified still-has-errors.
var ErrAttemptsExhausted = errors.New("fix attempts exhausted")

// RepairLoop drives one source file through baseline check, generation and
// the bounded fix loop.
type RepairLoop interface {
	// Repair classifies source into exactly one bucket. The error is reserved
	// for conditions fatal to the whole run: version control failures and
	// cancellation.
	Repair(ctx context.Context, source m.SourceFile) (m.Outcome, error)

	// Check performs only the baseline check without writing anything. The
	// returned outcome has an empty bucket when generation would proceed.
	Check(ctx context.Context, source m.SourceFile) (m.Outcome, error)
}

type repairLoop struct {
	adapter.VersionControlAdapter
	adapter.TestRunnerAdapter
	adapter.GenerationClient
	adapter.SourceFSAdapter
	ui          controller.UI
	testSuffix  string
	maxAttempts int
}

// NewRepairLoop creates a RepairLoop. A non-positive maxAttempts falls back to
// DefaultMaxAttempts.
func NewRepairLoop(
	vcs adapter.VersionControlAdapter,
	runner adapter.TestRunnerAdapter,
	client adapter.GenerationClient,
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	testSuffix string,
	maxAttempts int,
) RepairLoop {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &repairLoop{
		VersionControlAdapter: vcs,
		TestRunnerAdapter:     runner,
		GenerationClient:      client,
		SourceFSAdapter:       fsAdapter,
		ui:                    ui,
		testSuffix:            testSuffix,
		maxAttempts:           maxAttempts,
	}
}

// Check implements RepairLoop.
func (r *repairLoop) Check(ctx context.Context, source m.SourceFile) (m.Outcome, error) {
	testPath := m.TestPathFor(source.Path, r.testSuffix)
	outcome := m.Outcome{Source: source.Path, Test: testPath}

	exists, err := r.Exists(testPath)
	if err != nil {
		slog.Warn("Failed to check test file, assuming none", "path", testPath, "error", err)
		return outcome, nil
	}

	if !exists {
		return outcome, nil
	}

	content, err := r.ReadFile(testPath)
	if err != nil {
		slog.Warn("Failed to read test file, assuming none", "path", testPath, "error", err)
		return outcome, nil
	}

	test := m.TestFile{Path: testPath, Content: content, Existed: len(strings.TrimSpace(string(content))) > 0}
	if test.Existed && !r.baselinePasses(ctx, source, test) {
		outcome.Bucket = m.BucketPreExistingFailure
	}

	return outcome, ctx.Err()
}

// Repair implements RepairLoop.
func (r *repairLoop) Repair(ctx context.Context, source m.SourceFile) (m.Outcome, error) {
	testPath := m.TestPathFor(source.Path, r.testSuffix)
	outcome := m.Outcome{Source: source.Path, Test: testPath}

	test, err := r.EnsureTestFile(testPath)
	if err != nil {
		slog.Error("Failed to prepare test file", "path", testPath, "error", err)
		return classify(outcome, m.BucketStillHasErrors, err), nil
	}

	if test.Existed && !r.baselinePasses(ctx, source, test) {
		slog.Info("Existing test fails, skipping generation", "source", source.Path, "test", testPath)
		return classify(outcome, m.BucketPreExistingFailure, nil), ctx.Err()
	}

	diff, err := r.Diff(ctx, unitPaths(source))
	if err != nil {
		return outcome, fmt.Errorf("diff %s: %w", source.Path, err)
	}

	r.ui.DisplayStage(ctx, source.Path, m.StageGenerating, 0)

	generated, err := r.GenerateTest(ctx, adapter.GenerateRequest{Source: source, Test: test, Diff: diff})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return outcome, ctxErr
		}

		slog.Warn("Test generation failed", "source", source.Path, "error", err)

		if test.Created {
			if removeErr := r.RemoveFile(testPath); removeErr != nil {
				slog.Warn("Failed to remove placeholder test file", "path", testPath, "error", removeErr)
			}
		}

		return classify(outcome, m.BucketAPIError, err), nil
	}

	if err := r.Stash(ctx, testPath); err != nil {
		return outcome, fmt.Errorf("stash %s: %w", testPath, err)
	}

	if err := r.persist(&test, generated); err != nil {
		return r.revert(ctx, outcome, m.BucketStillHasErrors, err)
	}

	return r.fixLoop(ctx, source, test, diff, outcome)
}

// fixLoop runs the test and requests fixes until it passes or the attempt
// budget is spent.
func (r *repairLoop) fixLoop(ctx context.Context, source m.SourceFile, test m.TestFile, diff string, outcome m.Outcome) (m.Outcome, error) {
	for {
		r.ui.DisplayStage(ctx, source.Path, m.StageVerifying, outcome.Fixes)

		result, err := r.Run(ctx, test.Path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return outcome, ctxErr
			}

			slog.Warn("Test runner crashed, counting as a failed run", "path", test.Path, "error", err)

			result = m.TestRunResult{Status: m.RunFailed, Failures: []m.Failure{{File: test.Path, Message: err.Error()}}}
		}

		if result.Ok() {
			slog.Info("Test passes", "source", source.Path, "fixes", outcome.Fixes)
			return classify(outcome, m.BucketPassing, nil), nil
		}

		if len(result.Failures) == 0 {
			return r.revert(ctx, outcome, m.BucketStillHasErrors,
				fmt.Errorf("%w: run failed without reported failures", ErrAttemptsExhausted))
		}

		if outcome.Fixes >= r.maxAttempts {
			return r.revert(ctx, outcome, m.BucketStillHasErrors,
				fmt.Errorf("%w: %d failure(s) remain after %d fixes", ErrAttemptsExhausted, len(result.Failures), outcome.Fixes))
		}

		// The last reported failure is addressed first. This is a tie-break
		// policy, not a correctness requirement.
		failure := result.Failures[len(result.Failures)-1]

		outcome.Fixes++
		r.ui.DisplayStage(ctx, source.Path, m.StageFixing, outcome.Fixes)
		slog.Debug("Requesting fix", "path", test.Path, "attempt", outcome.Fixes, "failure", failure.Message)

		fixed, err := r.FixTest(ctx, adapter.FixRequest{Source: source, Test: test, Diff: diff, Failure: failure})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return outcome, ctxErr
			}

			slog.Warn("Test fix failed", "path", test.Path, "attempt", outcome.Fixes, "error", err)

			return r.revert(ctx, outcome, m.BucketAPIError, err)
		}

		if err := r.persist(&test, fixed); err != nil {
			return r.revert(ctx, outcome, m.BucketStillHasErrors, err)
		}
	}
}

// baselinePasses runs a pre-existing test. A runner error counts as failing.
func (r *repairLoop) baselinePasses(ctx context.Context, source m.SourceFile, test m.TestFile) bool {
	r.ui.DisplayStage(ctx, source.Path, m.StageBaseline, 0)

	passes, err := r.CheckIfPasses(ctx, test.Path)
	if err != nil {
		slog.Warn("Baseline check could not run", "path", test.Path, "error", err)
		return false
	}

	return passes
}

func (r *repairLoop) persist(test *m.TestFile, content string) error {
	if err := r.WriteFile(test.Path, []byte(content)); err != nil {
		slog.Error("Failed to write test file", "path", test.Path, "error", err)
		return fmt.Errorf("write %s: %w", test.Path, err)
	}

	test.Content = []byte(content)

	return nil
}

// revert restores the test file to its version-controlled state before
// classifying. A revert failure is fatal and is reported together with cause.
func (r *repairLoop) revert(ctx context.Context, outcome m.Outcome, bucket m.Bucket, cause error) (m.Outcome, error) {
	outcome = classify(outcome, bucket, cause)

	if err := r.Revert(ctx, outcome.Test); err != nil {
		slog.Error("Failed to revert test file", "path", outcome.Test, "error", err)

		var result *multierror.Error
		result = multierror.Append(result, fmt.Errorf("revert %s: %w", outcome.Test, err))
		if cause != nil {
			result = multierror.Append(result, cause)
		}

		return outcome, result.ErrorOrNil()
	}

	outcome.Reverted = true

	slog.Info("Reverted test file", "path", outcome.Test, "bucket", bucket)

	return outcome, nil
}

func classify(outcome m.Outcome, bucket m.Bucket, cause error) m.Outcome {
	outcome.Bucket = bucket
	outcome.Err = cause

	return outcome
}

// unitPaths lists the source together with its companion template.
func unitPaths(source m.SourceFile) []m.Path {
	paths := []m.Path{source.Path}
	if source.Companion != nil {
		paths = append(paths, source.Companion.Path)
	}

	return paths
}
