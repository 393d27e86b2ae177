package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/shlex"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

// TestRunnerAdapter executes test files with the project's local test runner.
type TestRunnerAdapter interface {
	// CheckIfPasses runs a single test file in isolation. An empty suite is a
	// vacuous pass.
	CheckIfPasses(ctx context.Context, path m.Path) (bool, error)

	// Run executes the given test files and classifies the result. A report
	// that cannot be parsed is returned as a failed run whose single failure
	// wraps the raw output; only a runner that cannot be spawned is an error.
	Run(ctx context.Context, paths ...m.Path) (m.TestRunResult, error)
}

// NewTestRunnerAdapter returns the runner variant matching cfg.TestFramework.
func NewTestRunnerAdapter(cfg m.Config) (TestRunnerAdapter, error) {
	switch cfg.TestFramework {
	case m.TestFrameworkJest:
		return NewJestRunner(cfg)
	case m.TestFrameworkKarma:
		return NewKarmaRunner(cfg)
	}

	return nil, fmt.Errorf("unsupported test framework %q", cfg.TestFramework)
}

// runnerCommand is the argv prefix for a runner invocation and the directory
// it runs in. The caller's working directory is never changed.
type runnerCommand struct {
	argv []string
	dir  string
}

func newRunnerCommand(cfg m.Config, defaults []string) (runnerCommand, error) {
	argv := defaults

	if strings.TrimSpace(cfg.TestCommand) != "" {
		parsed, err := shlex.Split(cfg.TestCommand)
		if err != nil {
			return runnerCommand{}, fmt.Errorf("parse test command %q: %w", cfg.TestCommand, err)
		}

		if len(parsed) == 0 {
			return runnerCommand{}, fmt.Errorf("empty test command %q", cfg.TestCommand)
		}

		argv = parsed
	}

	return runnerCommand{argv: argv, dir: string(cfg.WorkspaceRoot)}, nil
}

// exec runs the command with extra arguments. A non-zero exit status is not an
// error: failing tests exit non-zero by convention.
func (c runnerCommand) exec(ctx context.Context, op string, extra ...string) (stdout, stderr string, err error) {
	args := append(append([]string{}, c.argv[1:]...), extra...)

	cmd := exec.CommandContext(ctx, c.argv[0], args...)
	cmd.Dir = c.dir

	var outBuf, errBuf bytes.Buffer

	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	slog.Debug("Running tests", "command", c.argv[0], "args", args, "dir", c.dir)

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return "", "", wrapError(op, c.argv[0], runErr.Error(), ErrRunnerSpawn)
		}

		if ctx.Err() != nil {
			return "", "", wrapError(op, c.argv[0], ctx.Err().Error(), ErrRunnerSpawn)
		}
	}

	return outBuf.String(), errBuf.String(), nil
}

func unparseable(op, raw string, cause error) m.TestRunResult {
	wrapped := wrapError(op, "", cause.Error(), ErrRunnerParse)
	slog.Warn("Unable to parse test report", "op", op, "error", wrapped)

	return m.TestRunResult{
		Status:   m.RunFailed,
		Failures: []m.Failure{{Message: fmt.Sprintf("%v\n%s", wrapped, raw)}},
		Output:   raw,
	}
}

func checkIfPasses(ctx context.Context, runner TestRunnerAdapter, path m.Path) (bool, error) {
	result, err := runner.Run(ctx, path)
	if err != nil {
		return false, err
	}

	return result.Ok(), nil
}

// JestRunner drives jest and parses its JSON report.
type JestRunner struct {
	command runnerCommand
}

// NewJestRunner constructs a JestRunner. TestCommand replaces "npx jest".
func NewJestRunner(cfg m.Config) (*JestRunner, error) {
	command, err := newRunnerCommand(cfg, []string{"npx", "jest"})
	if err != nil {
		return nil, err
	}

	return &JestRunner{command: command}, nil
}

// jestEmptySuiteMessage is how jest reports a test file without tests.
const jestEmptySuiteMessage = "Your test suite must contain at least one test"

type jestReport struct {
	NumFailedTestSuites int              `json:"numFailedTestSuites"`
	NumTotalTests       int              `json:"numTotalTests"`
	Success             bool             `json:"success"`
	TestResults         []jestSuiteEntry `json:"testResults"`
}

type jestSuiteEntry struct {
	Name             string              `json:"name"`
	Status           string              `json:"status"`
	Message          string              `json:"message"`
	AssertionResults []jestAssertionItem `json:"assertionResults"`
}

type jestAssertionItem struct {
	FullName        string   `json:"fullName"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failureMessages"`
	Location        *struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"location"`
}

// CheckIfPasses implements TestRunnerAdapter.
func (r *JestRunner) CheckIfPasses(ctx context.Context, path m.Path) (bool, error) {
	return checkIfPasses(ctx, r, path)
}

// Run implements TestRunnerAdapter.
func (r *JestRunner) Run(ctx context.Context, paths ...m.Path) (m.TestRunResult, error) {
	report, err := os.CreateTemp("", "deepunit-jest-*.json")
	if err != nil {
		return m.TestRunResult{}, fmt.Errorf("create jest report file: %w", err)
	}

	reportPath := report.Name()
	_ = report.Close()

	defer func() { _ = os.Remove(reportPath) }()

	args := []string{"--json", "--outputFile=" + reportPath, "--runTestsByPath"}
	for _, path := range paths {
		args = append(args, string(path))
	}

	stdout, stderr, err := r.command.exec(ctx, "jest", args...)
	if err != nil {
		return m.TestRunResult{}, err
	}

	raw, err := os.ReadFile(reportPath)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		// Without --outputFile support jest prints the report on stdout.
		raw = []byte(stdout)
	}

	return parseJestReport(raw, stdout+stderr), nil
}

func parseJestReport(raw []byte, output string) m.TestRunResult {
	var report jestReport
	if err := json.Unmarshal(bytes.TrimSpace(raw), &report); err != nil {
		return unparseable("jest_report", output, err)
	}

	if report.NumFailedTestSuites == 0 {
		if report.NumTotalTests == 0 {
			return m.TestRunResult{Status: m.RunEmpty, Output: output}
		}

		return m.TestRunResult{Status: m.RunPassed, Output: output}
	}

	var failures []m.Failure

	empty := len(report.TestResults) > 0

	for _, suite := range report.TestResults {
		if suite.Status != "failed" {
			continue
		}

		suiteFailures := jestSuiteFailures(suite)
		if len(suiteFailures) > 0 || !strings.Contains(suite.Message, jestEmptySuiteMessage) {
			empty = false
		}

		failures = append(failures, suiteFailures...)
	}

	if empty {
		return m.TestRunResult{Status: m.RunEmpty, Output: output}
	}

	return m.TestRunResult{Status: m.RunFailed, Failures: failures, Output: output}
}

func jestSuiteFailures(suite jestSuiteEntry) []m.Failure {
	var failures []m.Failure

	for _, assertion := range suite.AssertionResults {
		if assertion.Status != "failed" {
			continue
		}

		location := ""
		if assertion.Location != nil {
			location = fmt.Sprintf("%d:%d", assertion.Location.Line, assertion.Location.Column)
		}

		for _, message := range assertion.FailureMessages {
			failures = append(failures, m.Failure{
				File:     m.Path(suite.Name),
				Message:  message,
				Location: location,
			})
		}
	}

	// A suite that fails before any assertion runs (syntax or import errors)
	// only carries the suite message.
	if len(failures) == 0 && suite.Message != "" && !strings.Contains(suite.Message, jestEmptySuiteMessage) {
		failures = append(failures, m.Failure{File: m.Path(suite.Name), Message: suite.Message})
	}

	return failures
}

// KarmaRunner drives the Angular CLI test builder and parses its textual
// summary.
type KarmaRunner struct {
	command runnerCommand
}

// NewKarmaRunner constructs a KarmaRunner. TestCommand replaces "npx ng test".
func NewKarmaRunner(cfg m.Config) (*KarmaRunner, error) {
	command, err := newRunnerCommand(cfg, []string{"npx", "ng", "test"})
	if err != nil {
		return nil, err
	}

	return &KarmaRunner{command: command}, nil
}

var (
	karmaTotalPattern          = regexp.MustCompile(`TOTAL: (\d+) FAILED, (\d+) SUCCESS`)
	karmaSuccessPattern        = regexp.MustCompile(`TOTAL: (\d+) SUCCESS`)
	karmaExecutedPattern       = regexp.MustCompile(`Executed (\d+) of (\d+)`)
	karmaExecutedFailedPattern = regexp.MustCompile(`\((\d+) FAILED\)`)
	karmaLocationPattern       = regexp.MustCompile(`\(([^()\s]+:\d+:\d+)\)`)
)

// CheckIfPasses implements TestRunnerAdapter.
func (r *KarmaRunner) CheckIfPasses(ctx context.Context, path m.Path) (bool, error) {
	return checkIfPasses(ctx, r, path)
}

// Run implements TestRunnerAdapter.
func (r *KarmaRunner) Run(ctx context.Context, paths ...m.Path) (m.TestRunResult, error) {
	args := []string{"--watch=false", "--browsers=ChromeHeadless"}

	for _, path := range paths {
		rel, err := filepath.Rel(r.command.dir, string(path))
		if err != nil {
			rel = string(path)
		}

		args = append(args, "--include", filepath.ToSlash(rel))
	}

	stdout, stderr, err := r.command.exec(ctx, "karma", args...)
	if err != nil {
		return m.TestRunResult{}, err
	}

	var file m.Path
	if len(paths) == 1 {
		file = paths[0]
	}

	return parseKarmaOutput(stdout+stderr, file), nil
}

func parseKarmaOutput(output string, file m.Path) m.TestRunResult {
	executedLine := lastLineMatching(output, karmaExecutedPattern)
	if match := karmaExecutedPattern.FindStringSubmatch(executedLine); match != nil {
		if total, _ := strconv.Atoi(match[2]); total == 0 {
			return m.TestRunResult{Status: m.RunEmpty, Output: output}
		}
	}

	failed := -1

	if match := karmaTotalPattern.FindStringSubmatch(output); match != nil {
		failed, _ = strconv.Atoi(match[1])
	} else if karmaSuccessPattern.MatchString(output) {
		failed = 0
	} else if executedLine != "" {
		// Single-browser runs print no TOTAL line; the last Executed line is final.
		failed = 0
		if match := karmaExecutedFailedPattern.FindStringSubmatch(executedLine); match != nil {
			failed, _ = strconv.Atoi(match[1])
		}
	}

	if failed < 0 {
		return unparseable("karma_report", output, errors.New("no summary line found"))
	}

	if failed == 0 && !strings.Contains(executedLine, "ERROR") {
		return m.TestRunResult{Status: m.RunPassed, Output: output}
	}

	failures := karmaFailures(output, file)
	if len(failures) == 0 && strings.Contains(executedLine, "ERROR") {
		failures = []m.Failure{{File: file, Message: strings.TrimSpace(output)}}
	}

	return m.TestRunResult{Status: m.RunFailed, Failures: failures, Output: output}
}

func lastLineMatching(output string, pattern *regexp.Regexp) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if pattern.MatchString(lines[i]) {
			return lines[i]
		}
	}

	return ""
}

// karmaFailures collects every "<spec> FAILED" line together with the indented
// lines that follow it.
func karmaFailures(output string, file m.Path) []m.Failure {
	var (
		failures []m.Failure
		current  *m.Failure
		body     []string
	)

	flush := func() {
		if current == nil {
			return
		}

		current.Message = strings.TrimSpace(strings.Join(body, "\n"))
		failures = append(failures, *current)
		current, body = nil, nil
	}

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimRight(line, "\r")

		switch {
		case strings.HasSuffix(trimmed, " FAILED") && !karmaExecutedPattern.MatchString(trimmed) && !strings.HasPrefix(trimmed, "TOTAL"):
			flush()

			current = &m.Failure{File: file}
			body = []string{strings.TrimSpace(trimmed)}
		case current != nil && (strings.HasPrefix(trimmed, "\t") || strings.HasPrefix(trimmed, " ")):
			body = append(body, strings.TrimSpace(trimmed))

			if current.Location == "" {
				if match := karmaLocationPattern.FindStringSubmatch(trimmed); match != nil {
					current.Location = match[1]
				}
			}
		default:
			flush()
		}
	}

	flush()

	return failures
}
