package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadCommitOnPlainDirectory(t *testing.T) {
	hash, ok := New().HeadCommit(t.TempDir())

	assert.False(t, ok)
	assert.Empty(t, hash)
}

func TestHeadCommitOnRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte("x = 1\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("app.py")
	require.NoError(t, err)
	want, err := wt.Commit("add app", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	hash, ok := New().HeadCommit(dir)
	require.True(t, ok)
	assert.Equal(t, want.String(), hash)
}
