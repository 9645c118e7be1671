package config

import (
	"path/filepath"
	"strings"
	"time"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

// Validate checks a configuration after defaults have been applied.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Docs.Dir) == "" {
		return invalid("docs.dir", cfg.Docs.Dir, "docs directory must be set")
	}
	for _, pattern := range cfg.Docs.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return invalid("docs.ignore", pattern, "invalid glob pattern")
		}
	}
	if strings.TrimSpace(cfg.Output.Directory) == "" {
		return invalid("output.directory", cfg.Output.Directory, "output directory must be set")
	}
	seen := map[Format]bool{}
	for _, f := range cfg.Output.Formats {
		if NormalizeFormat(string(f)) == "" {
			return invalid("output.formats", string(f), "unsupported format (allowed: yaml|json|vitepress|hugo)")
		}
		if seen[f] {
			return invalid("output.formats", string(f), "format listed twice")
		}
		seen[f] = true
	}
	for _, p := range cfg.Check.IgnoreOrphans {
		if !strings.HasPrefix(p, "/") {
			return invalid("check.ignore_orphans", p, "route prefix must start with /")
		}
	}
	d, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil || d <= 0 {
		return invalid("watch.debounce", cfg.Watch.Debounce, "debounce must be a positive duration")
	}
	return nil
}

func invalid(field, value, msg string) error {
	return ferrors.ConfigError(msg).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}
