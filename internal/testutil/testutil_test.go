package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteTree(t *testing.T) {
	root := WriteTree(t, map[string]string{"a/b/c.md": "# c\n"})
	data, err := os.ReadFile(filepath.Join(root, "a", "b", "c.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "# c\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestGitRepoCommit(t *testing.T) {
	g := InitGitRepo(t)
	hash := g.Commit(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), map[string]string{"docs/index.md": "# home\n"})
	if len(hash) != 40 {
		t.Fatalf("unexpected hash %q", hash)
	}
	head, err := g.Repo.Head()
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if head.Hash().String() != hash {
		t.Fatalf("HEAD %s, want %s", head.Hash(), hash)
	}
}
