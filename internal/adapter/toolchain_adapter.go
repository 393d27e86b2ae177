package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-version"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

const defaultMinNodeVersion = ">= 14.0.0"

// ToolchainAdapter verifies the local JavaScript toolchain before a run.
type ToolchainAdapter interface {
	// CheckNode returns the installed node version, failing with
	// ErrUnsupportedToolchain when node is missing or too old.
	CheckNode(ctx context.Context) (string, error)
}

// LocalToolchainAdapter shells out to the node binary on PATH.
type LocalToolchainAdapter struct {
	command    []string
	constraint string
}

// NewLocalToolchainAdapter constructs a LocalToolchainAdapter enforcing
// cfg.MinNodeVersion.
func NewLocalToolchainAdapter(cfg m.Config) *LocalToolchainAdapter {
	constraint := cfg.MinNodeVersion
	if constraint == "" {
		constraint = defaultMinNodeVersion
	}

	return &LocalToolchainAdapter{
		command:    []string{"node"},
		constraint: constraint,
	}
}

// CheckNode implements ToolchainAdapter.
func (a *LocalToolchainAdapter) CheckNode(ctx context.Context) (string, error) {
	constraints, err := version.NewConstraint(a.constraint)
	if err != nil {
		return "", wrapError("node_version", "", "invalid constraint "+a.constraint, ErrUnsupportedToolchain)
	}

	args := append(append([]string{}, a.command[1:]...), "--version")
	cmd := exec.CommandContext(ctx, a.command[0], args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("Failed to run node", "error", err, "stderr", stderr.String())
		return "", wrapError("node_version", "", "node is not installed or not on PATH", ErrUnsupportedToolchain)
	}

	raw := strings.TrimSpace(stdout.String())

	installed, err := version.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return "", wrapError("node_version", "", "unrecognised node version "+raw, ErrUnsupportedToolchain)
	}

	if !constraints.Check(installed) {
		return "", wrapError("node_version", "", "node "+installed.String()+" does not satisfy "+a.constraint, ErrUnsupportedToolchain)
	}

	slog.Debug("Node toolchain accepted", "version", installed.String(), "constraint", a.constraint)

	return installed.String(), nil
}
