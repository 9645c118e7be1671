package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when -c is not given.
const DefaultPath = "sitenav.yaml"

// Config represents the sitenav tool configuration.
type Config struct {
	Docs    DocsConfig    `yaml:"docs"`
	Output  OutputConfig  `yaml:"output"`
	Check   CheckConfig   `yaml:"check"`
	Git     GitConfig     `yaml:"git"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`
}

// DocsConfig locates the Markdown tree the generator renders.
type DocsConfig struct {
	Dir    string   `yaml:"dir"`
	Ignore []string `yaml:"ignore,omitempty"` // glob patterns relative to dir
}

// OutputConfig controls where and how exports are written.
type OutputConfig struct {
	Directory string   `yaml:"directory"`
	Formats   []Format `yaml:"formats"`
}

// CheckConfig controls how strict `sitenav check` is.
type CheckConfig struct {
	FailOnOrphans      bool     `yaml:"fail_on_orphans"`
	FailOnContentLinks bool     `yaml:"fail_on_content_links"`
	IgnoreOrphans      []string `yaml:"ignore_orphans,omitempty"` // route prefixes never reported as orphans
}

// GitConfig controls last-updated lookups.
type GitConfig struct {
	Enabled bool   `yaml:"enabled"`
	RepoDir string `yaml:"repo_dir,omitempty"` // defaults to docs.dir; parents are searched
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"`
}

// DebounceDuration parses Debounce; validation guarantees it parses.
func (w WatchConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return defaultDebounce
	}
	return d
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read config file").
			WithContext("path", configPath).
			Build()
	}
	return Parse(data)
}

// LoadOrDefault loads configPath, falling back to defaults when the file
// does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if _, statErr := os.Stat(configPath); errors.Is(statErr, os.ErrNotExist) {
		slog.Debug("Configuration file not found, using defaults", "path", configPath)
		def := Default()
		return &def, nil
	}
	return nil, err
}

// Parse decodes YAML, expands environment variables, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").UserAction().Build()
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Default()
	example.Check.IgnoreOrphans = []string{"/about/"}
	example.Metrics.Textfile = "./metrics/sitenav.prom"

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
