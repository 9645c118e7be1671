package config

import "strings"

// Format names an export format.
type Format string

const (
	FormatYAML      Format = "yaml"
	FormatJSON      Format = "json"
	FormatVitePress Format = "vitepress"
	FormatHugo      Format = "hugo"
)

// NormalizeFormat maps user spellings to a Format, or "" when unknown.
func NormalizeFormat(raw string) Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	case "vitepress", "mts", "ts":
		return FormatVitePress
	case "hugo", "hextra":
		return FormatHugo
	default:
		return ""
	}
}

// AllFormats lists the supported formats.
func AllFormats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatVitePress, FormatHugo}
}
