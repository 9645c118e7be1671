package commands

import (
	"fmt"
	"time"

	"github.com/javanotes/sitenav/internal/config"
	"github.com/javanotes/sitenav/internal/export"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Output string   `short:"o" help:"Output directory (overrides output.directory)"`
	Format []string `short:"f" help:"Export format: yaml, json, vitepress or hugo (repeatable; overrides output.formats)"`
	Stdout bool     `help:"Write a single format to stdout instead of files"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	start := time.Now()
	defer func() { g.Recorder.ObserveCommandDuration("export", time.Since(start)) }()

	cfg, err := loadToolConfig(g, root)
	if err != nil {
		return err
	}
	siteCfg, err := loadSite(g, root)
	if err != nil {
		return err
	}

	formats := cfg.Output.Formats
	if len(e.Format) > 0 {
		formats, err = parseFormats(e.Format)
		if err != nil {
			return err
		}
	}

	if e.Stdout {
		if len(formats) != 1 {
			return ferrors.ConfigError("--stdout needs exactly one format").
				WithContext("formats", len(formats)).
				Build()
		}
		return export.Write(siteCfg, formats[0], g.Out)
	}

	dir := cfg.Output.Directory
	if e.Output != "" {
		dir = e.Output
	}
	written, err := export.WriteAll(siteCfg, dir, formats, export.WithRecorder(g.Recorder))
	for _, p := range written {
		_, _ = fmt.Fprintf(g.Out, "wrote %s\n", p)
	}
	return err
}

func parseFormats(raw []string) ([]config.Format, error) {
	out := make([]config.Format, 0, len(raw))
	seen := map[config.Format]bool{}
	for _, r := range raw {
		f := config.NormalizeFormat(r)
		if f == "" {
			return nil, ferrors.ConfigError("unsupported export format").
				WithContext("format", r).
				Build()
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}
