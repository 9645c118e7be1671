package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, opts Options) (<-chan []string, context.CancelFunc, <-chan error) {
	t.Helper()
	calls := make(chan []string, 8)
	opts.Handler = func(_ context.Context, changed []string) { calls <- changed }
	if opts.Debounce == 0 {
		opts.Debounce = 50 * time.Millisecond
	}
	w, err := New(opts)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(cancel)
	return calls, cancel, done
}

func waitCall(t *testing.T, calls <-chan []string) []string {
	t.Helper()
	select {
	case changed := <-calls:
		return changed
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
		return nil
	}
}

func TestWatcherDebouncesMarkdownChanges(t *testing.T) {
	docs := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "share"), 0o750))
	calls, _, _ := startWatcher(t, Options{Dirs: []string{docs}})

	a := filepath.Join(docs, "share", "a.md")
	b := filepath.Join(docs, "share", "b.md")
	require.NoError(t, os.WriteFile(a, []byte("# a\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("# b\n"), 0o600))
	require.NoError(t, os.WriteFile(a, []byte("# a2\n"), 0o600))

	changed := waitCall(t, calls)
	assert.Subset(t, changed, []string{a})
	for _, p := range changed {
		assert.Equal(t, ".md", filepath.Ext(p))
	}
}

func TestWatcherIgnoresNonMarkdownAndDotDirs(t *testing.T) {
	docs := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(docs, ".vitepress"), 0o750))
	calls, _, _ := startWatcher(t, Options{Dirs: []string{docs}})

	require.NoError(t, os.WriteFile(filepath.Join(docs, ".vitepress", "config.mts"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "logo.png"), []byte("x"), 0o600))

	select {
	case changed := <-calls:
		t.Fatalf("unexpected handler call: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	docs := t.TempDir()
	calls, _, _ := startWatcher(t, Options{Dirs: []string{docs}})

	sub := filepath.Join(docs, "dubbo")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	waitCall(t, calls)

	page := filepath.Join(sub, "spi.md")
	require.NoError(t, os.WriteFile(page, []byte("# spi\n"), 0o600))
	assert.Contains(t, waitCall(t, calls), page)
}

func TestWatcherWatchesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sitenav.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs: {}\n"), 0o600))
	calls, _, _ := startWatcher(t, Options{Files: []string{cfgPath}})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs:\n  dir: ./docs\n"), 0o600))

	assert.Equal(t, []string{cfgPath}, waitCall(t, calls))
}

func TestWatcherStopsOnCancel(t *testing.T) {
	_, cancel, done := startWatcher(t, Options{Dirs: []string{t.TempDir()}})
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(Options{Dirs: []string{filepath.Join(t.TempDir(), "missing")}})
	assert.Error(t, err)
}
