// Package linkcheck compares the site navigation with the Markdown tree the
// generator renders.
package linkcheck

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/javanotes/sitenav/internal/docs"
	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/site"
)

// Run resolves every nav and sidebar target against idx, looks for pages a
// sidebar should list but does not, and checks internal links in page bodies.
func Run(cfg *site.Config, idx *docs.Index, opts Options) *Report {
	r := &Report{PagesTotal: idx.Len(), Dangling: []Finding{}, Orphans: []Finding{}, ContentLinks: []Finding{}}
	reached := map[string]bool{}

	target := func(source, t string) {
		r.TargetsTotal++
		pg, ok := idx.Resolve(t)
		if ok {
			reached[pg.Route] = true
			return
		}
		slog.Debug("Dangling target", logfields.Target(t), slog.String("source", source))
		r.Dangling = append(r.Dangling, Finding{
			Kind:     KindDangling,
			Severity: SeverityError,
			Source:   source,
			Target:   t,
			Message:  "no page serves " + t,
		})
	}

	for i, e := range cfg.Nav() {
		if e.Target != "" {
			target(fmt.Sprintf("nav[%d].link", i), e.Target)
		}
		for j, c := range e.Children {
			target(fmt.Sprintf("nav[%d].items[%d].link", i, j), c.Target)
		}
	}
	for _, route := range cfg.Sidebar().Routes() {
		for i, section := range route.Sections {
			for j, item := range section.Items {
				target(fmt.Sprintf("sidebar[%q][%d].items[%d].link", route.Prefix, i, j), item.Target)
			}
		}
	}

	for _, pg := range idx.Pages() {
		r.Orphans = append(r.Orphans, orphan(cfg, pg, reached, opts)...)
		r.ContentLinks = append(r.ContentLinks, contentLinks(idx, pg, opts)...)
	}
	return r
}

func orphan(cfg *site.Config, pg docs.Page, reached map[string]bool, opts Options) []Finding {
	if reached[pg.Route] || (pg.Meta.Sidebar != nil && !*pg.Meta.Sidebar) || ignoredOrphan(pg.Route, opts.IgnoreOrphans) {
		return nil
	}
	prefix, _, ok := cfg.ResolveSidebar(pg.Route)
	if !ok {
		return nil
	}
	sev := SeverityWarning
	if opts.FailOnOrphans {
		sev = SeverityError
	}
	return []Finding{{
		Kind:       KindOrphan,
		Severity:   sev,
		Source:     pg.RelPath,
		Target:     pg.Route,
		Message:    fmt.Sprintf("page is under sidebar %s but no sidebar item links to it", prefix),
		Suggestion: SuggestLabel(pg),
	}}
}

func contentLinks(idx *docs.Index, pg docs.Page, opts Options) []Finding {
	var out []Finding
	sev := SeverityWarning
	if opts.FailOnContentLinks {
		sev = SeverityError
	}
	for _, l := range pg.Links {
		if !l.IsInternal() || !pageLike(l.Destination) {
			continue
		}
		if _, ok := idx.ResolveFrom(pg.Route, l.Destination); ok {
			continue
		}
		out = append(out, Finding{
			Kind:     KindContentLink,
			Severity: sev,
			Source:   pg.RelPath,
			Target:   l.Destination,
			Message:  fmt.Sprintf("%s link does not resolve to a page", l.Kind),
		})
	}
	return out
}

// pageLike reports whether dest names a page rather than an asset such as
// an image.
func pageLike(dest string) bool {
	p, _, _ := strings.Cut(dest, "#")
	p, _, _ = strings.Cut(p, "?")
	switch strings.ToLower(path.Ext(p)) {
	case "", ".md", ".html":
		return true
	default:
		return false
	}
}

func ignoredOrphan(route string, ignore []string) bool {
	for _, ig := range ignore {
		if route == ig || (strings.HasSuffix(ig, "/") && strings.HasPrefix(route, ig)) {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.Und)

// SuggestLabel proposes a sidebar label for pg. A heading-derived title is
// used as is; a bare file name is turned into words and title-cased.
func SuggestLabel(pg docs.Page) string {
	slug := strings.TrimSuffix(path.Base(pg.RelPath), path.Ext(pg.RelPath))
	if slug == "index" {
		slug = path.Base(path.Dir(pg.RelPath))
	}
	if pg.Title != "" && pg.Title != slug {
		return pg.Title
	}
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	return titleCaser.String(strings.Join(words, " "))
}

// Err turns the report into a classified error. Dangling targets always
// fail; orphans and content links fail only when opts asks for it, and
// otherwise come back as a warning-severity error. A clean report yields nil.
func (r *Report) Err(opts Options) error {
	var parts []string
	if n := len(r.Dangling); n > 0 {
		parts = append(parts, fmt.Sprintf("%d dangling target(s)", n))
	}
	if n := len(r.Orphans); n > 0 && opts.FailOnOrphans {
		parts = append(parts, fmt.Sprintf("%d orphan page(s)", n))
	}
	if n := len(r.ContentLinks); n > 0 && opts.FailOnContentLinks {
		parts = append(parts, fmt.Sprintf("%d broken content link(s)", n))
	}
	counts := ferrors.ErrorContext{
		"dangling":      len(r.Dangling),
		"orphans":       len(r.Orphans),
		"content_links": len(r.ContentLinks),
	}
	if len(parts) == 0 {
		if len(r.Orphans)+len(r.ContentLinks) == 0 {
			return nil
		}
		return ferrors.DocsError(fmt.Sprintf("link check passed with %d warning(s)", len(r.Orphans)+len(r.ContentLinks))).
			Warning().
			WithContextMap(counts).
			Build()
	}
	return ferrors.DocsError("link check failed: " + strings.Join(parts, ", ")).
		WithContextMap(counts).
		Build()
}
