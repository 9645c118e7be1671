package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/javanotes/sitenav/internal/export"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Export bool `help:"Re-export the configuration after each successful check"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadToolConfig(g, root)
	if err != nil {
		return err
	}

	pass := func() {
		// Re-read both configs so edits to either take effect.
		cfg, err := loadToolConfig(g, root)
		if err != nil {
			slog.Error("Configuration invalid", logfields.Error(err))
			return
		}
		siteCfg, err := loadSite(g, root)
		if err != nil {
			slog.Error("Site configuration invalid", logfields.Error(err))
			return
		}
		if err := runCheck(g, cfg, siteCfg, "text", false); err != nil {
			slog.Warn("Check failed", logfields.Error(err), slog.String("category", string(ferrors.GetCategory(err))))
			return
		}
		if w.Export {
			if _, err := export.WriteAll(siteCfg, cfg.Output.Directory, cfg.Output.Formats, export.WithRecorder(g.Recorder)); err != nil {
				slog.Error("Export failed", logfields.Error(err))
			}
		}
		if err := g.Flush(); err != nil {
			slog.Warn("Failed to write metrics", logfields.Error(err))
		}
	}

	files := []string{}
	if _, err := os.Stat(root.Config); err == nil {
		files = append(files, root.Config)
	}
	if root.Site != "" {
		files = append(files, root.Site)
	}
	watcher, err := watch.New(watch.Options{
		Dirs:     []string{cfg.Docs.Dir},
		Files:    files,
		Debounce: cfg.Watch.DebounceDuration(),
		Handler: func(_ context.Context, changed []string) {
			slog.Info("Change detected, re-running check", logfields.Count(len(changed)))
			pass()
		},
	})
	if err != nil {
		return err
	}

	pass()
	slog.Info("Watching for changes", logfields.Path(cfg.Docs.Dir))
	if err := watcher.Run(ctx); err != nil {
		return err
	}
	slog.Info("Watch stopped")
	return nil
}
