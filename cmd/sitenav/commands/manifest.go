package commands

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/javanotes/sitenav/internal/docs"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/gitinfo"
	"github.com/javanotes/sitenav/internal/logfields"
)

// ManifestCmd implements the 'manifest' command.
type ManifestCmd struct {
	Format string `short:"f" default:"json" help:"Output format (json or yaml)" enum:"json,yaml"`
	Output string `short:"o" help:"Write the manifest to this file instead of stdout"`
}

func (m *ManifestCmd) Run(g *Global, root *CLI) error {
	start := time.Now()
	defer func() { g.Recorder.ObserveCommandDuration("manifest", time.Since(start)) }()

	cfg, err := loadToolConfig(g, root)
	if err != nil {
		return err
	}
	siteCfg, err := loadSite(g, root)
	if err != nil {
		return err
	}
	idx, err := docs.Discover(cfg.Docs.Dir, cfg.Docs.Ignore)
	if err != nil {
		return err
	}
	g.Recorder.SetPagesDiscovered(idx.Len())

	var (
		updates docs.UpdateSource
		commit  string
	)
	if cfg.Git.Enabled && siteCfg.LastUpdated() {
		repoDir := cfg.Git.RepoDir
		if repoDir == "" {
			repoDir = cfg.Docs.Dir
		}
		repo, err := gitinfo.Open(repoDir)
		if err != nil {
			slog.Warn("Last-updated times unavailable", logfields.Path(repoDir), logfields.Error(err))
		} else {
			updates = repo
			if commit, err = repo.HeadCommit(); err != nil {
				slog.Warn("Cannot resolve HEAD", logfields.Error(err))
			}
		}
	}

	manifest := docs.BuildManifest(siteCfg, idx, updates)
	manifest.Commit = commit

	var buf bytes.Buffer
	switch m.Format {
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(manifest); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryExport, "encode manifest").Build()
		}
		_ = enc.Close()
	default:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(manifest); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryExport, "encode manifest").Build()
		}
	}

	if m.Output == "" {
		_, err := g.Out.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(m.Output, buf.Bytes(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write manifest").WithContext("path", m.Output).Build()
	}
	slog.Info("Wrote manifest", logfields.Path(m.Output), logfields.Count(len(manifest.Pages)))
	return nil
}
