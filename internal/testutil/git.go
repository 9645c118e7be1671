package testutil

import (
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a throwaway repository rooted in a temporary directory.
type GitRepo struct {
	t    *testing.T
	Dir  string
	Repo *git.Repository
}

// InitGitRepo initializes an empty repository for testing.
func InitGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	return &GitRepo{t: t, Dir: dir, Repo: repo}
}

// Commit writes files, stages them, and commits with author time when.
func (g *GitRepo) Commit(when time.Time, files map[string]string) string {
	g.t.Helper()
	WriteFiles(g.t, g.Dir, files)
	wt, err := g.Repo.Worktree()
	if err != nil {
		g.t.Fatalf("failed to get worktree: %v", err)
	}
	for rel := range files {
		if _, err := wt.Add(rel); err != nil {
			g.t.Fatalf("failed to add %s: %v", rel, err)
		}
	}
	hash, err := wt.Commit("update docs", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: when},
	})
	if err != nil {
		g.t.Fatalf("failed to commit: %v", err)
	}
	return hash.String()
}
