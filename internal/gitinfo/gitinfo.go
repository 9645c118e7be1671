// Package gitinfo reads commit times for documentation files from the
// repository that holds them.
package gitinfo

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

// Repo is an open repository. It is safe for concurrent use.
type Repo struct {
	repo *git.Repository
	root string

	mu    sync.Mutex
	cache map[string]entry
}

type entry struct {
	when time.Time
	ok   bool
}

// Open opens the repository containing dir, searching parent directories
// for the .git directory.
func Open(dir string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "open repository").
			WithContext("path", dir).
			Build()
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryGit, "repository has no worktree").
			WithContext("path", dir).
			Build()
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		root = wt.Filesystem.Root()
	}
	return &Repo{repo: repo, root: root, cache: map[string]entry{}}, nil
}

// Root returns the worktree root.
func (r *Repo) Root() string { return r.root }

// HeadCommit returns the hash of the checked-out commit. An empty repository
// yields "".
func (r *Repo) HeadCommit() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", ferrors.WrapError(err, ferrors.CategoryGit, "resolve HEAD").Build()
	}
	return ref.Hash().String(), nil
}

// LastUpdated returns the committer time of the newest commit reachable from
// HEAD that touched path. ok is false when the file was never committed.
func (r *Repo) LastUpdated(path string) (time.Time, bool, error) {
	rel, err := r.relative(path)
	if err != nil {
		return time.Time{}, false, err
	}

	r.mu.Lock()
	if e, hit := r.cache[rel]; hit {
		r.mu.Unlock()
		return e.when, e.ok, nil
	}
	r.mu.Unlock()

	when, ok, err := r.lookup(rel)
	if err != nil {
		return time.Time{}, false, ferrors.WrapError(err, ferrors.CategoryGit, "read file history").
			WithContext("file", rel).
			Build()
	}

	r.mu.Lock()
	r.cache[rel] = entry{when: when, ok: ok}
	r.mu.Unlock()
	return when, ok, nil
}

func (r *Repo) lookup(rel string) (time.Time, bool, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	iter, err := r.repo.Log(&git.LogOptions{From: ref.Hash(), FileName: &rel})
	if err != nil {
		return time.Time{}, false, err
	}
	defer iter.Close()

	commit, err := iter.Next()
	if errors.Is(err, io.EOF) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return newest(commit), true, nil
}

func newest(c *object.Commit) time.Time {
	if c.Committer.When.IsZero() {
		return c.Author.When
	}
	return c.Committer.When
}

func (r *Repo) relative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve path").
			WithContext("path", path).
			Build()
	}
	if resolved, evalErr := filepath.EvalSymlinks(abs); evalErr == nil {
		abs = resolved
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ferrors.GitError(fmt.Sprintf("%s is outside the repository", path)).
			WithContext("root", r.root).
			Build()
	}
	return filepath.ToSlash(rel), nil
}
