package commands

import (
	"log/slog"
	"time"

	"github.com/javanotes/sitenav/internal/config"
	"github.com/javanotes/sitenav/internal/docs"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/linkcheck"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Strict bool   `help:"Fail on orphans and broken content links too"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	start := time.Now()
	defer func() { g.Recorder.ObserveCommandDuration("check", time.Since(start)) }()

	cfg, err := loadToolConfig(g, root)
	if err != nil {
		return err
	}
	siteCfg, err := loadSite(g, root)
	if err != nil {
		return err
	}
	return runCheck(g, cfg, siteCfg, c.Format, c.Strict)
}

func checkOptions(cfg *config.Config, strict bool) linkcheck.Options {
	return linkcheck.Options{
		FailOnOrphans:      cfg.Check.FailOnOrphans || strict,
		FailOnContentLinks: cfg.Check.FailOnContentLinks || strict,
		IgnoreOrphans:      cfg.Check.IgnoreOrphans,
	}
}

func runCheck(g *Global, cfg *config.Config, siteCfg *site.Config, format string, strict bool) error {
	idx, err := docs.Discover(cfg.Docs.Dir, cfg.Docs.Ignore)
	if err != nil {
		return err
	}
	g.Recorder.SetPagesDiscovered(idx.Len())

	opts := checkOptions(cfg, strict)
	report := linkcheck.Run(siteCfg, idx, opts)
	g.Recorder.AddCheckFindings(string(linkcheck.KindDangling), len(report.Dangling))
	g.Recorder.AddCheckFindings(string(linkcheck.KindOrphan), len(report.Orphans))
	g.Recorder.AddCheckFindings(string(linkcheck.KindContentLink), len(report.ContentLinks))

	formatter, err := linkcheck.NewFormatter(format)
	if err != nil {
		return err
	}
	if err := formatter.Format(g.Out, report); err != nil {
		return err
	}
	slog.Info("Check complete",
		logfields.Count(len(report.Findings())),
		slog.Int("errors", report.ErrorCount()),
		slog.Int("warnings", report.WarningCount()))
	err = report.Err(opts)
	if ferrors.HasSeverity(err, ferrors.SeverityWarning) {
		slog.Warn("Check passed with warnings", logfields.Error(err))
		return nil
	}
	return err
}
