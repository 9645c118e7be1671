package docs

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/site"
)

// RefNav marks a page reached from the top navigation bar.
const RefNav = "nav"

// UpdateSource reports when a file last changed.
type UpdateSource interface {
	LastUpdated(path string) (time.Time, bool, error)
}

// Manifest describes every page of a build together with the
// configuration entries that reach it.
type Manifest struct {
	BuildID     string          `json:"build_id" yaml:"build_id"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Site        string          `json:"site" yaml:"site"`
	Commit      string          `json:"commit,omitempty" yaml:"commit,omitempty"`
	Pages       []ManifestEntry `json:"pages" yaml:"pages"`
}

// ManifestEntry is one page of a Manifest.
type ManifestEntry struct {
	Route        string     `json:"route" yaml:"route"`
	File         string     `json:"file" yaml:"file"`
	Title        string     `json:"title" yaml:"title"`
	Fingerprint  string     `json:"fingerprint" yaml:"fingerprint"`
	LastUpdated  *time.Time `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	ReferencedBy []string   `json:"referenced_by,omitempty" yaml:"referenced_by,omitempty"`
}

// BuildManifest lists the pages of idx in route order. updates may be nil;
// it is consulted only when the site shows last-updated times. A failed
// lookup is logged and leaves the entry's time empty.
func BuildManifest(cfg *site.Config, idx *Index, updates UpdateSource) *Manifest {
	refs := references(cfg, idx)

	m := &Manifest{
		BuildID:     uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Site:        cfg.Title(),
		Pages:       make([]ManifestEntry, 0, idx.Len()),
	}
	for _, pg := range idx.Pages() {
		entry := ManifestEntry{
			Route:        pg.Route,
			File:         pg.RelPath,
			Title:        pg.Title,
			Fingerprint:  pg.Fingerprint,
			ReferencedBy: refs[pg.Route],
		}
		if updates != nil && cfg.LastUpdated() && (pg.Meta.LastUpdated == nil || *pg.Meta.LastUpdated) {
			ts, ok, err := updates.LastUpdated(filepath.Join(idx.Root(), filepath.FromSlash(pg.RelPath)))
			switch {
			case err != nil:
				slog.Warn("Last-updated lookup failed", logfields.File(pg.RelPath), logfields.Error(err))
			case ok:
				ts = ts.UTC()
				entry.LastUpdated = &ts
			}
		}
		m.Pages = append(m.Pages, entry)
	}
	return m
}

func references(cfg *site.Config, idx *Index) map[string][]string {
	refs := map[string][]string{}
	add := func(target, ref string) {
		pg, ok := idx.Resolve(target)
		if !ok {
			return
		}
		for _, r := range refs[pg.Route] {
			if r == ref {
				return
			}
		}
		refs[pg.Route] = append(refs[pg.Route], ref)
	}
	for _, target := range site.NavTargets(cfg.Nav()) {
		add(target, RefNav)
	}
	for _, route := range cfg.Sidebar().Routes() {
		for _, section := range route.Sections {
			for _, item := range section.Items {
				add(item.Target, "sidebar:"+route.Prefix)
			}
		}
	}
	return refs
}
