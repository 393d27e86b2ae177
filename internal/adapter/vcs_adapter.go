package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

const (
	defaultBaseRef = "origin/HEAD"
	defaultRemote  = "origin"
)

// VersionControlAdapter wraps the git queries and the few write operations
// (stash, revert) the repair loop needs.
type VersionControlAdapter interface {
	// ChangedFiles returns absolute paths modified between the last commit and
	// the working tree, or between the base ref and HEAD in CI mode.
	ChangedFiles(ctx context.Context) ([]m.Path, error)

	// Diff returns a zero-context unified diff restricted to paths. It is empty
	// when none of the paths differ.
	Diff(ctx context.Context, paths []m.Path) (string, error)

	// Stash pushes uncommitted content of a single path onto the stash, so it
	// can be recovered after the path is overwritten. Untracked files are
	// stashed too. Unmodified paths and empty untracked placeholders are left
	// alone.
	Stash(ctx context.Context, path m.Path) error

	// Revert restores path to its committed state. An untracked path has no
	// committed state and is removed.
	Revert(ctx context.Context, path m.Path) error

	// ResolveUpstream fetches the primary remote and points its HEAD ref at
	// the remote default branch.
	ResolveUpstream(ctx context.Context) error
}

// LocalGitAdapter implements VersionControlAdapter on top of the git CLI, using
// go-git for repository discovery and remote enumeration.
type LocalGitAdapter struct {
	gitPath string
	root    string
	ciMode  bool
	baseRef string
}

// NewLocalGitAdapter locates the repository enclosing the workspace root. It
// fails with ErrNotRepository outside a repository or before the first commit.
func NewLocalGitAdapter(cfg m.Config) (*LocalGitAdapter, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, wrapError("git", "", "git not found in PATH", ErrVcs)
	}

	root, err := findRepositoryRoot(string(cfg.WorkspaceRoot))
	if err != nil {
		return nil, err
	}

	baseRef := cfg.BaseRef
	if baseRef == "" {
		baseRef = defaultBaseRef
	}

	a := &LocalGitAdapter{
		gitPath: gitPath,
		root:    root,
		ciMode:  cfg.CIMode,
		baseRef: baseRef,
	}

	if err := a.withRepository(func(repo *git.Repository) error {
		if _, err := repo.Head(); err != nil {
			return wrapError("git_open", root, "repository has no commits", ErrVcs)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return a, nil
}

// Root returns the repository top-level directory.
func (a *LocalGitAdapter) Root() string {
	return a.root
}

func findRepositoryRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", wrapError("git_open", start, err.Error(), ErrNotRepository)
	}

	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, git.GitDirName)); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", wrapError("git_open", start, "", ErrNotRepository)
		}

		dir = parent
	}
}

func (a *LocalGitAdapter) withRepository(fn func(repo *git.Repository) error) error {
	worktree := osfs.New(a.root)

	dot, err := worktree.Chroot(git.GitDirName)
	if err != nil {
		return wrapError("git_open", a.root, err.Error(), ErrNotRepository)
	}

	storage := filesystem.NewStorageWithOptions(dot, cache.NewObjectLRUDefault(), filesystem.Options{})
	defer func() { _ = storage.Close() }()

	repo, err := git.Open(storage, worktree)
	if err != nil {
		return wrapError("git_open", a.root, err.Error(), ErrNotRepository)
	}

	return fn(repo)
}

// ChangedFiles implements VersionControlAdapter.
func (a *LocalGitAdapter) ChangedFiles(ctx context.Context) ([]m.Path, error) {
	if a.ciMode {
		return a.changedSinceBase(ctx)
	}

	seen := map[string]struct{}{}

	queries := [][]string{
		{"diff", "--name-only", "--diff-filter=ACMR", "HEAD"},
		{"diff", "--name-only", "--diff-filter=ACMR", "--cached", "HEAD"},
		{"ls-files", "--others", "--exclude-standard"},
	}

	for _, args := range queries {
		out, err := a.run(ctx, "git_changed_files", args...)
		if err != nil {
			return nil, err
		}

		for _, name := range splitLines(out) {
			seen[name] = struct{}{}
		}
	}

	return a.absolutePaths(seen), nil
}

// changedSinceBase lists files changed on this branch since the base ref. A
// missing upstream ref is repaired once before giving up.
func (a *LocalGitAdapter) changedSinceBase(ctx context.Context) ([]m.Path, error) {
	args := []string{"diff", "--name-only", "--diff-filter=ACMR", a.baseRef + "...HEAD"}

	out, err := a.run(ctx, "git_changed_files", args...)
	if err != nil {
		slog.Warn("Base ref diff failed, resolving upstream", "baseRef", a.baseRef, "error", err)

		if resolveErr := a.ResolveUpstream(ctx); resolveErr != nil {
			return nil, resolveErr
		}

		out, err = a.run(ctx, "git_changed_files", args...)
		if err != nil {
			return nil, err
		}
	}

	seen := map[string]struct{}{}
	for _, name := range splitLines(out) {
		seen[name] = struct{}{}
	}

	return a.absolutePaths(seen), nil
}

func (a *LocalGitAdapter) absolutePaths(names map[string]struct{}) []m.Path {
	paths := make([]m.Path, 0, len(names))
	for name := range names {
		paths = append(paths, m.Path(filepath.Join(a.root, filepath.FromSlash(name))))
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// Diff implements VersionControlAdapter.
func (a *LocalGitAdapter) Diff(ctx context.Context, paths []m.Path) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}

	var tracked, untracked []m.Path

	for _, path := range paths {
		ok, err := a.isTracked(ctx, path)
		if err != nil {
			return "", err
		}

		if ok {
			tracked = append(tracked, path)
		} else {
			untracked = append(untracked, path)
		}
	}

	var b strings.Builder

	if len(tracked) > 0 {
		rev := "HEAD"
		if a.ciMode {
			rev = a.baseRef + "...HEAD"
		}

		args := []string{"diff", "--no-color", "--unified=0", rev, "--"}
		for _, path := range tracked {
			args = append(args, string(path))
		}

		out, err := a.run(ctx, "git_diff", args...)
		if err != nil {
			return "", err
		}

		b.WriteString(keepHunks(out))
	}

	for _, path := range untracked {
		synthetic, err := a.newFileDiff(path)
		if err != nil {
			return "", err
		}

		b.WriteString(synthetic)
	}

	return b.String(), nil
}

// keepHunks drops file entries without hunks (mode-only or binary changes).
func keepHunks(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	fileDiffs, err := diff.ParseMultiFileDiff([]byte(raw))
	if err != nil {
		slog.Warn("Unable to parse git diff, passing it through", "error", err)
		return raw
	}

	kept := make([]*diff.FileDiff, 0, len(fileDiffs))
	changed := 0

	for _, fileDiff := range fileDiffs {
		if len(fileDiff.Hunks) == 0 {
			continue
		}

		for _, hunk := range fileDiff.Hunks {
			stat := hunk.Stat()
			changed += int(stat.Added + stat.Changed + stat.Deleted)
		}

		kept = append(kept, fileDiff)
	}

	if len(kept) == 0 {
		return ""
	}

	out, err := diff.PrintMultiFileDiff(kept)
	if err != nil {
		slog.Warn("Unable to print filtered diff, passing it through", "error", err)
		return raw
	}

	slog.Debug("Computed diff", "files", len(kept), "changedLines", changed)

	return string(out)
}

// newFileDiff renders an untracked file as an all-added zero-context diff,
// which git itself does not produce.
func (a *LocalGitAdapter) newFileDiff(path m.Path) (string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("read untracked file %s: %w", path, err)
	}

	if len(content) == 0 {
		return "", nil
	}

	rel, err := filepath.Rel(a.root, string(path))
	if err != nil {
		rel = string(path)
	}

	rel = filepath.ToSlash(rel)

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        nil,
		B:        difflib.SplitLines(string(content)),
		FromFile: "/dev/null",
		ToFile:   "b/" + rel,
		Context:  0,
	})
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", path, err)
	}

	return fmt.Sprintf("diff --git a/%s b/%s\nnew file mode 100644\n%s", rel, rel, text), nil
}

// Stash implements VersionControlAdapter.
func (a *LocalGitAdapter) Stash(ctx context.Context, path m.Path) error {
	out, err := a.run(ctx, "git_status", "status", "--porcelain", "--", string(path))
	if err != nil {
		return err
	}

	status := strings.TrimSpace(out)
	if status == "" {
		return nil
	}

	args := []string{"stash", "push", "-m", "deepunit: " + filepath.Base(string(path))}

	if strings.HasPrefix(status, "??") {
		// Empty untracked files are the placeholders EnsureTestFile creates.
		info, err := os.Stat(string(path))
		if err != nil {
			return wrapError("git_stash", string(path), err.Error(), ErrVcs)
		}

		if info.Size() == 0 {
			return nil
		}

		args = append(args, "--include-untracked")
	}

	args = append(args, "--", string(path))
	if _, err := a.run(ctx, "git_stash", args...); err != nil {
		return err
	}

	slog.Info("Stashed local test changes", "path", path)

	return nil
}

// Revert implements VersionControlAdapter.
func (a *LocalGitAdapter) Revert(ctx context.Context, path m.Path) error {
	tracked, err := a.isTracked(ctx, path)
	if err != nil {
		return err
	}

	if !tracked {
		if err := os.Remove(string(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return wrapError("git_revert", string(path), err.Error(), ErrVcs)
		}

		return nil
	}

	_, err = a.run(ctx, "git_checkout", "checkout", "HEAD", "--", string(path))

	return err
}

// ResolveUpstream implements VersionControlAdapter.
func (a *LocalGitAdapter) ResolveUpstream(ctx context.Context) error {
	remote, err := a.primaryRemote()
	if err != nil {
		return err
	}

	if _, err := a.run(ctx, "git_fetch", "fetch", remote); err != nil {
		return err
	}

	if _, err := a.run(ctx, "git_set_head", "remote", "set-head", remote, "--auto"); err != nil {
		return err
	}

	return nil
}

// primaryRemote prefers "origin" and otherwise takes the first remote by name.
func (a *LocalGitAdapter) primaryRemote() (string, error) {
	var names []string

	err := a.withRepository(func(repo *git.Repository) error {
		remotes, err := repo.Remotes()
		if err != nil {
			return wrapError("git_remote", a.root, err.Error(), ErrVcs)
		}

		for _, remote := range remotes {
			names = append(names, remote.Config().Name)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	if len(names) == 0 {
		return "", wrapError("git_remote", a.root, "no remotes configured", ErrVcs)
	}

	sort.Strings(names)

	for _, name := range names {
		if name == defaultRemote {
			return name, nil
		}
	}

	return names[0], nil
}

func (a *LocalGitAdapter) isTracked(ctx context.Context, path m.Path) (bool, error) {
	cmd := a.prepareCommand(ctx, "ls-files", "--error-unmatch", "--", string(path))

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}

	return false, wrapError("git_ls_files", string(path), err.Error(), ErrVcs)
}

func (a *LocalGitAdapter) run(ctx context.Context, op string, args ...string) (string, error) {
	cmd := a.prepareCommand(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Debug("git command failed", "args", args, "stderr", stderr.String(), "error", err)
		return "", wrapError(op, "", strings.TrimSpace(stderr.String()), ErrVcs)
	}

	return stdout.String(), nil
}

func (a *LocalGitAdapter) prepareCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, a.gitPath, append([]string{name}, args...)...)
	cmd.Dir = a.root

	return cmd
}

func splitLines(out string) []string {
	var lines []string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
