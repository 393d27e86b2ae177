package adapter

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

func requireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=deepunit", "GIT_AUTHOR_EMAIL=deepunit@example.com",
		"GIT_COMMITTER_NAME=deepunit", "GIT_COMMITTER_EMAIL=deepunit@example.com",
	)

	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)

	return string(out)
}

// newRepo creates a repository with one committed file per entry in files.
func newRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	requireGit(t)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	gitCmd(t, dir, "init", "-q")
	gitCmd(t, dir, "config", "user.name", "deepunit")
	gitCmd(t, dir, "config", "user.email", "deepunit@example.com")

	for name, content := range files {
		writeTestFile(t, filepath.Join(dir, name), content)
	}

	gitCmd(t, dir, "add", "-A")
	gitCmd(t, dir, "commit", "-q", "--allow-empty", "-m", "initial")

	return dir
}

func newGitAdapter(t *testing.T, dir string) *LocalGitAdapter {
	t.Helper()

	a, err := NewLocalGitAdapter(m.Config{WorkspaceRoot: m.Path(dir)})
	require.NoError(t, err)

	return a
}

func TestNewLocalGitAdapter_NotARepository(t *testing.T) {
	requireGit(t)

	_, err := NewLocalGitAdapter(m.Config{WorkspaceRoot: m.Path(t.TempDir())})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRepository)
	assert.True(t, IsVcsError(err))
}

func TestNewLocalGitAdapter_NoCommits(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	gitCmd(t, dir, "init", "-q")

	_, err := NewLocalGitAdapter(m.Config{WorkspaceRoot: m.Path(dir)})
	require.Error(t, err)
	assert.True(t, IsVcsError(err))
}

func TestNewLocalGitAdapter_FindsRootFromSubdirectory(t *testing.T) {
	dir := newRepo(t, map[string]string{"src/a.ts": "export const a = 1;\n"})

	a, err := NewLocalGitAdapter(m.Config{WorkspaceRoot: m.Path(filepath.Join(dir, "src"))})
	require.NoError(t, err)
	assert.Equal(t, dir, a.Root())
}

func TestLocalGitAdapter_ChangedFiles(t *testing.T) {
	dir := newRepo(t, map[string]string{
		"a.ts": "export const a = 1;\n",
		"b.ts": "export const b = 1;\n",
	})
	a := newGitAdapter(t, dir)

	writeTestFile(t, filepath.Join(dir, "a.ts"), "export const a = 2;\n")
	writeTestFile(t, filepath.Join(dir, "c.ts"), "export const c = 1;\n")
	writeTestFile(t, filepath.Join(dir, "d.ts"), "export const d = 1;\n")
	gitCmd(t, dir, "add", "d.ts")

	changed, err := a.ChangedFiles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "a.ts")),
		m.Path(filepath.Join(dir, "c.ts")),
		m.Path(filepath.Join(dir, "d.ts")),
	}, changed)
}

func TestLocalGitAdapter_Diff(t *testing.T) {
	dir := newRepo(t, map[string]string{
		"a.ts": "export const a = 1;\nexport const z = 0;\n",
		"b.ts": "export const b = 1;\n",
	})
	a := newGitAdapter(t, dir)
	ctx := context.Background()

	t.Run("unmodified paths produce an empty diff", func(t *testing.T) {
		out, err := a.Diff(ctx, []m.Path{m.Path(filepath.Join(dir, "a.ts")), m.Path(filepath.Join(dir, "b.ts"))})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("changed line appears exactly once", func(t *testing.T) {
		writeTestFile(t, filepath.Join(dir, "a.ts"), "export const a = 42;\nexport const z = 0;\n")

		out, err := a.Diff(ctx, []m.Path{m.Path(filepath.Join(dir, "a.ts")), m.Path(filepath.Join(dir, "b.ts"))})
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "+export const a = 42;"))
		assert.NotContains(t, out, "export const z = 0;")
		assert.NotContains(t, out, "b.ts")
	})

	t.Run("untracked file renders as added", func(t *testing.T) {
		writeTestFile(t, filepath.Join(dir, "new.ts"), "export const n = 1;\n")

		out, err := a.Diff(ctx, []m.Path{m.Path(filepath.Join(dir, "new.ts"))})
		require.NoError(t, err)
		assert.Contains(t, out, "new file mode")
		assert.Contains(t, out, "+++ b/new.ts")
		assert.Equal(t, 1, strings.Count(out, "+export const n = 1;"))
	})

	t.Run("no paths", func(t *testing.T) {
		out, err := a.Diff(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestLocalGitAdapter_Stash(t *testing.T) {
	dir := newRepo(t, map[string]string{"a.test.ts": "it('a', () => {});\n"})
	a := newGitAdapter(t, dir)
	ctx := context.Background()
	path := filepath.Join(dir, "a.test.ts")

	require.NoError(t, a.Stash(ctx, m.Path(path)), "clean file is a no-op")
	assert.Empty(t, strings.TrimSpace(gitCmd(t, dir, "stash", "list")))

	writeTestFile(t, path, "it('edited', () => {});\n")
	require.NoError(t, a.Stash(ctx, m.Path(path)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "it('a', () => {});\n", string(content))
	assert.Contains(t, gitCmd(t, dir, "stash", "list"), "deepunit: a.test.ts")

	placeholder := filepath.Join(dir, "b.test.ts")
	writeTestFile(t, placeholder, "")
	require.NoError(t, a.Stash(ctx, m.Path(placeholder)), "empty placeholder is a no-op")
	assert.FileExists(t, placeholder)
	assert.Equal(t, 1, strings.Count(gitCmd(t, dir, "stash", "list"), "deepunit:"))

	untracked := filepath.Join(dir, "c.test.ts")
	writeTestFile(t, untracked, "it('user work', () => {});\n")
	require.NoError(t, a.Stash(ctx, m.Path(untracked)))
	assert.NoFileExists(t, untracked)
	assert.Contains(t, gitCmd(t, dir, "stash", "list"), "deepunit: c.test.ts")
}

func TestLocalGitAdapter_UntrackedTestSurvivesRevert(t *testing.T) {
	dir := newRepo(t, map[string]string{"foo.ts": "export const foo = 1;\n"})
	a := newGitAdapter(t, dir)
	ctx := context.Background()
	path := filepath.Join(dir, "foo.test.ts")

	writeTestFile(t, path, "user work\n")
	require.NoError(t, a.Stash(ctx, m.Path(path)))

	writeTestFile(t, path, "generated\n")
	require.NoError(t, a.Revert(ctx, m.Path(path)))
	assert.NoFileExists(t, path)

	assert.Contains(t, gitCmd(t, dir, "stash", "list"), "deepunit: foo.test.ts")

	gitCmd(t, dir, "stash", "pop", "-q")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user work\n", string(content))
}

func TestLocalGitAdapter_Revert(t *testing.T) {
	dir := newRepo(t, map[string]string{"a.test.ts": "committed\n"})
	a := newGitAdapter(t, dir)
	ctx := context.Background()

	tracked := filepath.Join(dir, "a.test.ts")
	writeTestFile(t, tracked, "generated\n")
	require.NoError(t, a.Revert(ctx, m.Path(tracked)))

	content, err := os.ReadFile(tracked)
	require.NoError(t, err)
	assert.Equal(t, "committed\n", string(content))

	untracked := filepath.Join(dir, "b.test.ts")
	writeTestFile(t, untracked, "generated\n")
	require.NoError(t, a.Revert(ctx, m.Path(untracked)))
	assert.NoFileExists(t, untracked)
}

func TestLocalGitAdapter_CIMode(t *testing.T) {
	dir := newRepo(t, map[string]string{"a.ts": "export const a = 1;\n"})
	writeTestFile(t, filepath.Join(dir, "b.ts"), "export const b = 1;\n")
	gitCmd(t, dir, "add", "b.ts")
	gitCmd(t, dir, "commit", "-q", "-m", "second")

	t.Run("explicit base ref", func(t *testing.T) {
		a, err := NewLocalGitAdapter(m.Config{WorkspaceRoot: m.Path(dir), CIMode: true, BaseRef: "HEAD~1"})
		require.NoError(t, err)

		changed, err := a.ChangedFiles(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(dir, "b.ts"))}, changed)
	})

	t.Run("missing upstream without remotes is fatal", func(t *testing.T) {
		a, err := NewLocalGitAdapter(m.Config{WorkspaceRoot: m.Path(dir), CIMode: true})
		require.NoError(t, err)

		_, err = a.ChangedFiles(context.Background())
		require.Error(t, err)
		assert.True(t, IsVcsError(err))
	})
}

func TestLocalGitAdapter_ResolveUpstream(t *testing.T) {
	upstream := newRepo(t, map[string]string{"a.ts": "export const a = 1;\n"})

	clone, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	gitCmd(t, clone, "clone", "-q", upstream, ".")
	gitCmd(t, clone, "remote", "set-head", "origin", "-d")

	a := newGitAdapter(t, clone)
	require.NoError(t, a.ResolveUpstream(context.Background()))

	head := strings.TrimSpace(gitCmd(t, clone, "rev-parse", "--abbrev-ref", "origin/HEAD"))
	assert.True(t, strings.HasPrefix(head, "origin/"), head)

	t.Run("no remotes", func(t *testing.T) {
		err := newGitAdapter(t, upstream).ResolveUpstream(context.Background())
		require.Error(t, err)
		assert.True(t, IsVcsError(err))
	})
}

func TestWrappedError(t *testing.T) {
	err := wrapError("git_diff", "a.ts", "fatal: bad revision", ErrVcs)

	assert.Equal(t, "git_diff: a.ts: fatal: bad revision: git command failed", err.Error())
	assert.ErrorIs(t, err, ErrVcs)
	assert.False(t, IsAPIError(err))
	assert.Equal(t, "git: git command failed", wrapError("git", "", "", ErrVcs).Error())
}
