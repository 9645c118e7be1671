package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/testutil"
)

func TestLastUpdated(t *testing.T) {
	f := testutil.InitGitRepo(t)
	first := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	f.Commit(first, map[string]string{
		"docs/share/read.md":    "# read\n",
		"docs/mybatis/cache.md": "# cache\n",
	})
	f.Commit(second, map[string]string{"docs/mybatis/cache.md": "# cache\n\nmore\n"})

	repo, err := Open(filepath.Join(f.Dir, "docs"))
	require.NoError(t, err)

	when, ok, err := repo.LastUpdated(filepath.Join(f.Dir, "docs", "share", "read.md"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, first.Equal(when), "got %s", when)

	when, ok, err = repo.LastUpdated(filepath.Join(f.Dir, "docs", "mybatis", "cache.md"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, second.Equal(when), "got %s", when)

	// Cached lookups answer the same.
	again, ok, err := repo.LastUpdated(filepath.Join(f.Dir, "docs", "mybatis", "cache.md"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, when.Equal(again))
}

func TestLastUpdatedUncommitted(t *testing.T) {
	f := testutil.InitGitRepo(t)
	f.Commit(time.Now(), map[string]string{"docs/index.md": "# home\n"})
	p := filepath.Join(f.Dir, "docs", "draft.md")
	require.NoError(t, os.WriteFile(p, []byte("# draft\n"), 0o600))

	repo, err := Open(f.Dir)
	require.NoError(t, err)
	_, ok, err := repo.LastUpdated(p)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyRepository(t *testing.T) {
	f := testutil.InitGitRepo(t)
	repo, err := Open(f.Dir)
	require.NoError(t, err)

	head, err := repo.HeadCommit()
	require.NoError(t, err)
	assert.Empty(t, head)

	_, ok, err := repo.LastUpdated(filepath.Join(f.Dir, "index.md"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHeadCommit(t *testing.T) {
	f := testutil.InitGitRepo(t)
	f.Commit(time.Now(), map[string]string{"index.md": "# home\n"})
	repo, err := Open(f.Dir)
	require.NoError(t, err)

	head, err := repo.HeadCommit()
	require.NoError(t, err)
	assert.Len(t, head, 40)
}

func TestOpenOutsideRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
}

func TestLastUpdatedOutsideWorktree(t *testing.T) {
	f := testutil.InitGitRepo(t)
	repo, err := Open(f.Dir)
	require.NoError(t, err)
	_, _, err = repo.LastUpdated(filepath.Join(t.TempDir(), "elsewhere.md"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
}
