package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inful/mdfp"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/frontmatter"
	"github.com/javanotes/sitenav/internal/logfields"
	"github.com/javanotes/sitenav/internal/markdown"
)

// Page is a Markdown document the generator will render.
type Page struct {
	Route       string           // URL path the generator serves the page at
	RelPath     string           // slash-separated path relative to the docs dir
	Title       string           // front matter title, else first H1, else file name
	Fingerprint string           // content fingerprint of header and body
	Meta        frontmatter.Meta // decoded header
	Links       []markdown.Link  // links found in the body
}

// Index holds the pages of a docs tree keyed by route.
type Index struct {
	root    string
	pages   []Page
	byRoute map[string]int
}

// Root returns the docs directory the index was built from.
func (x *Index) Root() string { return x.root }

// Pages returns the pages sorted by route.
func (x *Index) Pages() []Page { return append([]Page(nil), x.pages...) }

// Len returns the number of pages.
func (x *Index) Len() int { return len(x.pages) }

// Page returns the page served at route.
func (x *Index) Page(route string) (Page, bool) {
	i, ok := x.byRoute[route]
	if !ok {
		return Page{}, false
	}
	return x.pages[i], true
}

// Resolve maps a root-relative link target to a page. It drops a #fragment,
// accepts a .md or .html suffix, and lets "/dir" reach "/dir/" (index.md).
func (x *Index) Resolve(target string) (Page, bool) {
	p, _, _ := strings.Cut(target, "#")
	p, _, _ = strings.Cut(p, "?")
	if p == "" {
		return Page{}, false
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	switch {
	case strings.HasSuffix(p, "/index.md"), strings.HasSuffix(p, "/index.html"):
		p = p[:strings.LastIndex(p, "/")+1]
	case strings.HasSuffix(p, ".md"):
		p = strings.TrimSuffix(p, ".md")
	case strings.HasSuffix(p, ".html"):
		p = strings.TrimSuffix(p, ".html")
	}
	if pg, ok := x.Page(p); ok {
		return pg, true
	}
	if !strings.HasSuffix(p, "/") {
		return x.Page(p + "/")
	}
	return Page{}, false
}

// ResolveFrom resolves a link written inside the page at fromRoute. Relative
// destinations are joined onto the page's directory.
func (x *Index) ResolveFrom(fromRoute, dest string) (Page, bool) {
	if strings.HasPrefix(dest, "/") {
		return x.Resolve(dest)
	}
	dir := fromRoute
	if !strings.HasSuffix(dir, "/") {
		dir = path.Dir(dir) + "/"
	}
	p, frag, hasFrag := strings.Cut(dest, "#")
	joined := path.Join(dir, p)
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	if hasFrag {
		joined += "#" + frag
	}
	return x.Resolve(joined)
}

// RouteFor converts a slash-separated path relative to the docs dir into the
// route the generator serves it at.
func RouteFor(relPath string) string {
	p := strings.TrimSuffix(relPath, ".md")
	if p == "index" {
		return "/"
	}
	if strings.HasSuffix(p, "/index") {
		return "/" + strings.TrimSuffix(p, "index")
	}
	return "/" + p
}

// Discover walks dir and indexes every Markdown page. Dot-directories,
// node_modules, and paths matching an ignore glob are skipped.
func Discover(dir string, ignore []string) (*Index, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, ferrors.WrapError(ErrDocsDirNotFound, ferrors.CategoryDocs, "docs directory not found").
			WithContext("path", dir).
			Build()
	}

	idx := &Index{root: dir, byRoute: map[string]int{}}
	walkErr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules" || ignored(rel, ignore)) {
				return filepath.SkipDir
			}
			return nil
		}
		// The generator only renders lowercase .md files.
		if filepath.Ext(p) != ".md" || ignored(rel, ignore) {
			return nil
		}
		page, err := loadPage(p, rel)
		if err != nil {
			return err
		}
		slog.Debug("Discovered page", logfields.File(rel), logfields.Route(page.Route))
		idx.pages = append(idx.pages, page)
		return nil
	})
	if walkErr != nil {
		if ferrors.IsClassified(walkErr) {
			return nil, walkErr
		}
		return nil, ferrors.WrapError(fmt.Errorf("%w: %w", ErrDocsDirWalkFailed, walkErr), ferrors.CategoryFileSystem, "walk docs directory").
			WithContext("path", dir).
			Build()
	}

	sort.Slice(idx.pages, func(i, j int) bool { return idx.pages[i].Route < idx.pages[j].Route })
	for i, pg := range idx.pages {
		idx.byRoute[pg.Route] = i
	}
	slog.Info("Discovered documentation pages", logfields.Path(dir), logfields.Count(len(idx.pages)))
	return idx, nil
}

func loadPage(absPath, rel string) (Page, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return Page{}, ferrors.WrapError(fmt.Errorf("%w: %w", ErrFileReadFailed, err), ferrors.CategoryFileSystem, "read page").
			WithContext("file", rel).
			Build()
	}
	header, body, _, err := frontmatter.Split(content)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryDocs, "malformed front matter").
			WithContext("file", rel).
			Build()
	}
	meta, err := frontmatter.Decode(header)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryDocs, "malformed front matter").
			WithContext("file", rel).
			Build()
	}

	facts := markdown.Analyze(body)
	page := Page{
		Route:       RouteFor(rel),
		RelPath:     rel,
		Meta:        meta,
		Links:       facts.Links,
		Fingerprint: mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(header), "\n"), string(body)),
	}
	switch {
	case meta.Title != "":
		page.Title = meta.Title
	case facts.Title != "":
		page.Title = facts.Title
	default:
		page.Title = fallbackTitle(rel)
	}
	return page, nil
}

func fallbackTitle(rel string) string {
	name := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	if name == "index" {
		if dir := path.Dir(rel); dir != "." {
			name = path.Base(dir)
		}
	}
	return name
}

func ignored(rel string, patterns []string) bool {
	base := path.Base(rel)
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
