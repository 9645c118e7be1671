package config

import "time"

const defaultDebounce = 500 * time.Millisecond

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Docs.Dir == "" {
		cfg.Docs.Dir = "./docs"
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./docs/.vitepress"
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []Format{FormatVitePress}
	}
	for i, f := range cfg.Output.Formats {
		if n := NormalizeFormat(string(f)); n != "" {
			cfg.Output.Formats[i] = n
		}
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = defaultDebounce.String()
	}
}
