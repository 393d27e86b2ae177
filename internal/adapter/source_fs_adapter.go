package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-version"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

// SourceFSAdapter hides the filesystem operations the workflow and repair loop
// rely on so they can be tested without touching the disk.
//
//nolint:interfacebloat // Keeps workflow logic decoupled from os.
type SourceFSAdapter interface {
	// Walk visits every script file under root that passes the include and
	// exclude filters, in discovery order.
	Walk(root m.Path, fn func(path m.Path) error) error

	// Matches applies the include and exclude filters to a single path.
	Matches(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of an existing or new file.
	WriteFile(path m.Path, content []byte) error

	// Exists reports whether path is present on disk.
	Exists(path m.Path) (bool, error)

	// EnsureTestFile loads the test file at path, creating it empty when absent.
	EnsureTestFile(path m.Path) (m.TestFile, error)

	// RemoveFile deletes a file; a missing file is not an error.
	RemoveFile(path m.Path) error

	// FrameworkVersion reads the installed framework version from package.json.
	FrameworkVersion(framework string) (string, error)
}

// Directories never descended into during a walk.
var skippedDirs = map[string]struct{}{
	"node_modules": {},
	"dist":         {},
	"coverage":     {},
}

// Package names whose version identifies each framework.
var frameworkPackages = map[string]string{
	"angular":    "@angular/core",
	"react":      "react",
	"vue":        "vue",
	"typescript": "typescript",
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct {
	root       string
	testSuffix string
	include    []glob.Glob
	exclude    []glob.Glob
}

// NewLocalSourceFSAdapter compiles the include and exclude patterns from cfg.
// Patterns are matched against slash-separated paths relative to the
// workspace root.
func NewLocalSourceFSAdapter(cfg m.Config) (*LocalSourceFSAdapter, error) {
	include, err := compileGlobs(cfg.Include)
	if err != nil {
		return nil, err
	}

	exclude, err := compileGlobs(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	return &LocalSourceFSAdapter{
		root:       string(cfg.WorkspaceRoot),
		testSuffix: cfg.TestSuffix,
		include:    include,
		exclude:    exclude,
	}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, g)
	}

	return compiled, nil
}

// Walk traverses root with an explicit stack of directories. Entries of a
// directory are visited in lexical order; subdirectories are pushed and
// expanded after the files of the current directory.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn func(path m.Path) error) error {
	stack := []string{string(root)}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read directory %s: %w", dir, err)
		}

		var subdirs []string

		for _, entry := range entries {
			name := entry.Name()
			path := filepath.Join(dir, name)

			if entry.IsDir() {
				if _, skip := skippedDirs[name]; skip || strings.HasPrefix(name, ".") {
					continue
				}

				subdirs = append(subdirs, path)

				continue
			}

			candidate := m.Path(path)
			if !a.isCandidate(candidate) {
				continue
			}

			if err := fn(candidate); err != nil {
				return err
			}
		}

		// Reverse so the lexically first subdirectory is popped first.
		sort.Sort(sort.Reverse(sort.StringSlice(subdirs)))
		stack = append(stack, subdirs...)
	}

	return nil
}

func (a *LocalSourceFSAdapter) isCandidate(path m.Path) bool {
	if !m.IsScript(path) || strings.HasSuffix(string(path), ".d.ts") {
		return false
	}

	if a.testSuffix != "" && m.IsTestPath(path, a.testSuffix) {
		return false
	}

	return a.Matches(path)
}

// Matches implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Matches(path m.Path) bool {
	rel := string(path)
	if a.root != "" {
		if r, err := filepath.Rel(a.root, string(path)); err == nil {
			rel = r
		}
	}

	rel = filepath.ToSlash(rel)

	if strings.Contains("/"+rel+"/", "/node_modules/") {
		return false
	}

	for _, g := range a.exclude {
		if g.Match(rel) {
			return false
		}
	}

	if len(a.include) == 0 {
		return true
	}

	for _, g := range a.include {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content, creating parent directories as needed.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	// #nosec G306 - test files are committed project sources
	return os.WriteFile(string(path), content, 0o644)
}

// Exists implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// EnsureTestFile implements SourceFSAdapter. A file that exists but is blank
// is reported as neither pre-existing nor created.
func (a *LocalSourceFSAdapter) EnsureTestFile(path m.Path) (m.TestFile, error) {
	content, err := os.ReadFile(string(path))
	if err == nil {
		return m.TestFile{
			Path:    path,
			Content: content,
			Existed: len(strings.TrimSpace(string(content))) > 0,
		}, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return m.TestFile{}, fmt.Errorf("read test file %s: %w", path, err)
	}

	if err := a.WriteFile(path, nil); err != nil {
		return m.TestFile{}, fmt.Errorf("create test file %s: %w", path, err)
	}

	return m.TestFile{Path: path, Created: true}, nil
}

// RemoveFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) RemoveFile(path m.Path) error {
	if err := os.Remove(string(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// FrameworkVersion implements SourceFSAdapter. The declared range in
// package.json (e.g. "^17.0.2") is reduced to its base version. An unknown
// framework or an undeclared package yields an empty version.
func (a *LocalSourceFSAdapter) FrameworkVersion(framework string) (string, error) {
	pkg, ok := frameworkPackages[framework]
	if !ok {
		return "", nil
	}

	data, err := os.ReadFile(filepath.Join(a.root, "package.json"))
	if err != nil {
		return "", fmt.Errorf("read package.json: %w", err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("parse package.json: %w", err)
	}

	declared, ok := manifest.Dependencies[pkg]
	if !ok {
		declared, ok = manifest.DevDependencies[pkg]
	}

	if !ok {
		return "", nil
	}

	v, err := version.NewVersion(strings.TrimLeft(strings.TrimSpace(declared), "^~>=<v "))
	if err != nil {
		return "", fmt.Errorf("parse %s version %q: %w", pkg, declared, err)
	}

	return v.String(), nil
}
