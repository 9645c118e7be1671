// Package watch re-runs a handler when the docs tree or a config file changes.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/logfields"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 500 * time.Millisecond

// Handler is called once per burst of changes with the paths that changed,
// sorted and de-duplicated.
type Handler func(ctx context.Context, changed []string)

// Options configures a Watcher.
type Options struct {
	// Dirs are watched recursively for Markdown changes. Dot-directories and
	// node_modules are skipped, which keeps generator output under
	// docs/.vitepress from re-triggering the handler.
	Dirs []string
	// Files are watched individually, e.g. sitenav.yaml.
	Files    []string
	Debounce time.Duration
	Handler  Handler
}

// Watcher monitors the filesystem and triggers debounced callbacks.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	trees    map[string]bool
	debounce time.Duration
	handler  Handler
}

// New starts watching every path in opts. Call Run to process events.
func New(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.RuntimeError("create file watcher").WithCause(err).Build()
	}
	w := &Watcher{
		fsw:      fsw,
		files:    map[string]bool{},
		trees:    map[string]bool{},
		debounce: opts.Debounce,
		handler:  opts.Handler,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}

	for _, dir := range opts.Dirs {
		if err := w.addTree(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	for _, f := range opts.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve watched file").WithContext("path", f).Build()
		}
		// Watch the directory containing the file (more reliable than watching the file directly).
		if err := fsw.Add(filepath.Dir(abs)); err != nil {
			_ = fsw.Close()
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "watch directory").WithContext("path", filepath.Dir(abs)).Build()
		}
		w.files[abs] = true
	}
	return w, nil
}

// WatchList returns the directories currently watched.
func (w *Watcher) WatchList() []string {
	list := w.fsw.WatchList()
	sort.Strings(list)
	return list
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := map[string]bool{}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			pending[event.Name] = true
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = map[string]bool{}
			if w.handler != nil && len(changed) > 0 {
				w.handler(ctx, changed)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if w.files[abs] {
		return true
	}
	if !w.trees[filepath.Dir(abs)] {
		return false
	}
	isMarkdown := filepath.Ext(abs) == ".md"
	switch {
	case event.Op.Has(fsnotify.Create):
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			if skipDir(info.Name()) {
				return false
			}
			if err := w.addTree(abs); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(abs), logfields.Error(err))
			}
			return true
		}
		return isMarkdown
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		// A removed directory has no extension and takes its pages with it.
		return isMarkdown || filepath.Ext(abs) == ""
	default:
		return isMarkdown
	}
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "walk watched directory").WithContext("path", p).Build()
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "watch directory").WithContext("path", p).Build()
		}
		if abs, err := filepath.Abs(p); err == nil {
			w.trees[abs] = true
		}
		return nil
	})
}
