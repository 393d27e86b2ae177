package model

// RunStatus is the tri-state outcome of executing a test file.
type RunStatus int

const (
	// RunPassed indicates every suite passed.
	RunPassed RunStatus = iota
	// RunFailed indicates at least one failing suite or assertion.
	RunFailed
	// RunEmpty indicates the suite contained no tests.
	RunEmpty
)

func (s RunStatus) String() string {
	switch s {
	case RunPassed:
		return "passed"
	case RunFailed:
		return "failed"
	case RunEmpty:
		return "empty"
	}

	return "unknown"
}

// Failure is one structured failure entry extracted from a test report.
type Failure struct {
	File     Path
	Message  string
	Location string // "line:column" when the runner reports one
}

// TestRunResult is produced fresh by each test run.
type TestRunResult struct {
	Status   RunStatus
	Failures []Failure
	Output   string
}

// Ok reports whether the run counts as passing. An empty suite is a vacuous pass.
func (r TestRunResult) Ok() bool {
	return r.Status == RunPassed || r.Status == RunEmpty
}

// Stage names the repair loop step currently running for a file.
type Stage string

// Repair loop stages, in the order a file moves through them.
const (
	StageBaseline   Stage = "baseline"
	StageGenerating Stage = "generating"
	StageVerifying  Stage = "verifying"
	StageFixing     Stage = "fixing"
)
