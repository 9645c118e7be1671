package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/javanotes/sitenav/internal/config"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/metrics"
	"github.com/javanotes/sitenav/internal/notes"
	"github.com/javanotes/sitenav/internal/site"
)

// LogLevelEnv overrides the log level when --verbose is not given.
const LogLevelEnv = "SITENAV_LOG_LEVEL"

// Global context passed to subcommands.
type Global struct {
	Logger   *slog.Logger
	Out      io.Writer
	Recorder metrics.Recorder

	registry *prom.Registry
	textfile string
}

// NewGlobal returns a Global that prints to stdout and records nothing.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Out: os.Stdout, Recorder: metrics.NoopRecorder{}}
}

// EnableMetrics switches to a Prometheus recorder whose registry Flush
// writes to textfile. An empty textfile leaves metrics off.
func (g *Global) EnableMetrics(textfile string) {
	if textfile == "" || g.registry != nil {
		return
	}
	g.registry = prom.NewRegistry()
	g.Recorder = metrics.NewPrometheusRecorder(g.registry)
	g.textfile = textfile
}

// Flush writes collected metrics, if any.
func (g *Global) Flush() error {
	if g.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(g.textfile, g.registry); err != nil {
		return err
	}
	slog.Debug("Wrote metrics textfile", logfields.Path(g.textfile))
	return nil
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitenav.yaml"`
	Site    string           `short:"s" help:"Site definition file (YAML or JSON). Defaults to the built-in notes site"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Export   ExportCmd   `cmd:"" help:"Write the site configuration in each configured format"`
	Validate ValidateCmd `cmd:"" help:"Validate the site configuration and print a summary"`
	Check    CheckCmd    `cmd:"" help:"Resolve navigation targets against the docs tree"`
	Sidebar  SidebarCmd  `cmd:"" help:"Show which sidebar serves a page path"`
	Manifest ManifestCmd `cmd:"" help:"Print the page manifest with titles, fingerprints and update times"`
	Watch    WatchCmd    `cmd:"" help:"Re-run the check whenever docs or configuration change"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.logLevel()})))
	return nil
}

func (c *CLI) logLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level := slog.LevelInfo
	if raw := strings.TrimSpace(os.Getenv(LogLevelEnv)); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return slog.LevelInfo
		}
	}
	return level
}

// loadToolConfig reads sitenav.yaml, falling back to defaults when it is
// missing, and turns on metrics when configured.
func loadToolConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, err
	}
	g.EnableMetrics(cfg.Metrics.Textfile)
	return cfg, nil
}

// loadSite builds the validated site configuration, either from --site or
// from the built-in definition.
func loadSite(g *Global, root *CLI) (*site.Config, error) {
	start := time.Now()
	var (
		cfg *site.Config
		err error
	)
	if root.Site == "" {
		cfg, err = notes.Load()
	} else {
		cfg, err = decodeSiteFile(root.Site)
	}
	if err != nil {
		g.Recorder.IncValidation(metrics.ResultInvalid)
		return nil, err
	}
	g.Recorder.IncValidation(metrics.ResultValid)
	slog.Debug("Site configuration validated", logfields.Since(start))
	return cfg, nil
}

func decodeSiteFile(path string) (*site.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.NotFoundError("site definition file not found").WithContext("path", path).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read site definition").WithContext("path", path).Build()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return site.DecodeJSON(data)
	default:
		return site.DecodeYAML(data)
	}
}
