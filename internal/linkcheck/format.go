package linkcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter writes a report for humans or machines.
type Formatter interface {
	Format(w io.Writer, r *Report) error
}

// NewFormatter returns the formatter named by name ("text" or "json").
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "", "text":
		return TextFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", name)
	}
}

// TextFormatter prints findings grouped by kind followed by a summary.
type TextFormatter struct{}

// Format outputs the report in human-readable text.
func (TextFormatter) Format(w io.Writer, r *Report) error {
	p := &printer{w: w}
	p.line(strings.Repeat("━", 60))
	for _, group := range []struct {
		title    string
		findings []Finding
	}{
		{"Dangling targets", r.Dangling},
		{"Orphan pages", r.Orphans},
		{"Broken content links", r.ContentLinks},
	} {
		if len(group.findings) == 0 {
			continue
		}
		p.printf("%s (%d)\n", group.title, len(group.findings))
		for _, f := range group.findings {
			icon := "⚠"
			if f.Severity == SeverityError {
				icon = "✗"
			}
			p.printf("%s %s\n", icon, f.Source)
			p.printf("  %s: %s\n", f.Severity, f.Message)
			if f.Suggestion != "" {
				p.printf("  Suggested label: %s\n", f.Suggestion)
			}
		}
		p.line("")
	}
	p.line(strings.Repeat("━", 60))
	p.printf("Results:\n")
	p.printf("  %d pages, %d targets checked\n", r.PagesTotal, r.TargetsTotal)
	if n := r.ErrorCount(); n > 0 {
		p.printf("  %d error%s\n", n, pluralize(n))
	}
	if n := r.WarningCount(); n > 0 {
		p.printf("  %d warning%s\n", n, pluralize(n))
	}
	switch {
	case r.ErrorCount() > 0:
		p.line("❌ Navigation does not match the documentation tree.")
	case r.WarningCount() > 0:
		p.line("⚠️  Navigation resolves, with warnings.")
	default:
		p.line("✨ Every navigation target resolves.")
	}
	return p.err
}

// JSONFormatter writes the report as indented JSON.
type JSONFormatter struct{}

// Format outputs the report as JSON.
func (JSONFormatter) Format(w io.Writer, r *Report) error {
	out := struct {
		*Report
		ErrorCount   int `json:"error_count"`
		WarningCount int `json:"warning_count"`
	}{r, r.ErrorCount(), r.WarningCount()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) { p.printf("%s\n", s) }

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
