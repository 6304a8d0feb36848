package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuchuk-borom-debbarma/sandshell/internal/vfs"
)

func setup(t *testing.T, files ...string) (*Repository, *vfs.Node) {
	t.Helper()
	fs := vfs.New()
	for _, f := range files {
		require.NoError(t, fs.CreateFile(fs.Root(), f))
	}
	return New(), fs.Root()
}

func TestRequiresInit(t *testing.T) {
	repo, root := setup(t, "a.txt")

	assert.ErrorIs(t, repo.Add(root, "a.txt"), ErrNotRepository)
	_, err := repo.Commit("msg")
	assert.ErrorIs(t, err, ErrNotRepository)
	_, err = repo.Status()
	assert.ErrorIs(t, err, ErrNotRepository)
	_, err = repo.Log()
	assert.ErrorIs(t, err, ErrNotRepository)
	assert.Equal(t, "fatal: not a git repository", ErrNotRepository.Error())
}

func TestInitIsIdempotent(t *testing.T) {
	repo, root := setup(t, "a.txt")
	repo.Init()
	require.NoError(t, repo.Add(root, "a.txt"))
	repo.Init()

	assert.True(t, repo.Initialized())
	assert.Equal(t, []string{"a.txt"}, repo.Staged())
}

func TestAddPathspec(t *testing.T) {
	repo, root := setup(t)
	repo.Init()

	err := repo.Add(root, "ghost")
	assert.ErrorIs(t, err, ErrPathspec)
	assert.Equal(t, "fatal: pathspec 'ghost' did not match any files", err.Error())

	// directories are children too
	require.NoError(t, repo.Add(root, "home"))
}

func TestCommitSnapshotsAndClears(t *testing.T) {
	repo, root := setup(t, "a", "b")
	repo.Init()
	require.NoError(t, repo.Add(root, "b"))
	require.NoError(t, repo.Add(root, "a"))
	require.NoError(t, repo.Add(root, "b"))

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, "On branch main\nStaged files: b, a\n", status.String())

	c, err := repo.Commit("first")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "staged", "b": "staged"}, c.Files)

	status, err = repo.Status()
	require.NoError(t, err)
	assert.Equal(t, "On branch main\nStaged files: none\n", status.String())

	_, err = repo.Commit("empty")
	require.NoError(t, err)
	assert.Empty(t, repo.Commits()[1].Files)
	assert.Len(t, repo.Commits()[0].Files, 2)
}

func TestCommitsAreSnapshots(t *testing.T) {
	repo, root := setup(t, "a")
	repo.Init()
	require.NoError(t, repo.Add(root, "a"))
	_, err := repo.Commit("first")
	require.NoError(t, err)

	got := repo.Commits()
	got[0].Files["b"] = "staged"
	delete(got[0].Files, "a")
	got[0].Message = "rewritten"

	assert.Equal(t, map[string]string{"a": "staged"}, repo.Commits()[0].Files)
	assert.Equal(t, "first", repo.Commits()[0].Message)
}

func TestLog(t *testing.T) {
	repo, _ := setup(t)
	repo.Init()

	out, err := repo.Log()
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, _ = repo.Commit("one")
	_, _ = repo.Commit("two words")

	out, err = repo.Log()
	require.NoError(t, err)
	assert.Equal(t, "commit 1\n    one\n\ncommit 2\n    two words", out)
}
