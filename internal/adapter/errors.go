// Package adapter contains the infrastructure adapters DeepUnit drives: git,
// the local test runners, the generation service and the filesystem.
package adapter

import (
	"errors"
	"fmt"
)

// WrappedError attaches the failing operation and its context to a sentinel.
type WrappedError struct {
	Op      string // Operation that failed
	Path    string // File path if applicable
	Context string // Additional context, e.g. stderr
	Err     error  // Sentinel or original error
}

func (e *WrappedError) Error() string {
	if e.Path != "" && e.Context != "" {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Path, e.Context, e.Err)
	}

	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}

	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WrappedError) Unwrap() error {
	return e.Err
}

// Version control errors.
var (
	ErrVcs           = errors.New("git command failed")
	ErrNotRepository = fmt.Errorf("%w: not inside a git repository", ErrVcs)
)

// Test runner errors.
var (
	ErrRunnerSpawn = errors.New("failed to run test runner")
	ErrRunnerParse = errors.New("unparseable test report")
)

// Generation service errors.
var (
	ErrNetwork = errors.New("generation service unreachable")
	ErrAPI     = errors.New("generation service returned an error")
	ErrParse   = errors.New("malformed generation service response")
)

// ErrUnsupportedToolchain is returned by startup checks.
var ErrUnsupportedToolchain = errors.New("unsupported toolchain")

// IsVcsError reports whether err originates from the version control adapter.
func IsVcsError(err error) bool {
	return errors.Is(err, ErrVcs)
}

// IsAPIError reports whether err is a file-local generation service failure.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPI) || errors.Is(err, ErrNetwork) || errors.Is(err, ErrParse)
}

func wrapError(op, path, context string, err error) error {
	return &WrappedError{
		Op:      op,
		Path:    path,
		Context: context,
		Err:     err,
	}
}
