package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

var headElements = map[atom.Atom]struct{}{
	atom.Meta: {}, atom.Link: {}, atom.Script: {}, atom.Style: {},
	atom.Base: {}, atom.Noscript: {}, atom.Title: {},
}

// Validate checks def and returns the first violation as a classified
// validation error carrying the offending field path.
func Validate(def Definition) error {
	v := validator{}
	return v.validate(&def)
}

type validator struct{}

func (v validator) validate(def *Definition) error {
	if err := v.validateMeta(def); err != nil {
		return err
	}
	if err := v.validateHead(def.Head); err != nil {
		return err
	}
	if err := v.validateNav(def.Nav); err != nil {
		return err
	}
	if err := v.validateSidebar(def.Sidebar); err != nil {
		return err
	}
	return v.validateSocial(def.SocialLinks)
}

func (validator) validateMeta(def *Definition) error {
	if normalizeLabel(def.Title) == "" {
		return invalid("title", def.Title, "site title must not be empty")
	}
	return nil
}

func (validator) validateHead(tags []HeadTag) error {
	for i, h := range tags {
		field := fmt.Sprintf("head[%d]", i)
		a := atom.Lookup([]byte(strings.ToLower(h.Tag)))
		if _, ok := headElements[a]; !ok {
			return invalid(field+".tag", h.Tag, "not an element allowed in <head>")
		}
		for name := range h.Attrs {
			if !validAttrName(name) {
				return invalid(field+".attrs", name, "invalid attribute name")
			}
		}
	}
	return nil
}

func (validator) validateNav(nav []NavEntry) error {
	seen := make(map[string]string)
	checkTarget := func(field, target string) error {
		if err := CheckTarget(target); err != nil {
			return wrapInvalid(err, field, target)
		}
		key := norm.NFC.String(target)
		if prev, dup := seen[key]; dup {
			return invalid(field, target, "nav target already used by "+prev)
		}
		seen[key] = field
		return nil
	}

	for i, e := range nav {
		field := fmt.Sprintf("nav[%d]", i)
		if normalizeLabel(e.Label) == "" {
			return invalid(field+".text", e.Label, "nav entry label must not be empty")
		}
		switch {
		case e.Target != "" && e.IsGroup():
			return invalid(field, e.Label, "nav entry has both a link and items")
		case e.Target == "" && !e.IsGroup():
			return invalid(field, e.Label, "nav entry needs either a link or items")
		case e.Target != "":
			if err := checkTarget(field+".link", e.Target); err != nil {
				return err
			}
			continue
		}
		for j, c := range e.Children {
			cf := fmt.Sprintf("%s.items[%d]", field, j)
			if normalizeLabel(c.Label) == "" {
				return invalid(cf+".text", c.Label, "nav entry label must not be empty")
			}
			if c.IsGroup() {
				return invalid(cf, c.Label, "dropdown items cannot be nested")
			}
			if c.Target == "" {
				return invalid(cf, c.Label, "dropdown item needs a link")
			}
			if err := checkTarget(cf+".link", c.Target); err != nil {
				return err
			}
		}
	}
	return nil
}

func (validator) validateSidebar(m SidebarMap) error {
	seen := make(map[string]struct{}, m.Len())
	for _, r := range m.routes {
		field := fmt.Sprintf("sidebar[%q]", r.Prefix)
		if err := CheckPrefix(r.Prefix); err != nil {
			return wrapInvalid(err, field, r.Prefix)
		}
		if _, dup := seen[r.Prefix]; dup {
			return invalid(field, r.Prefix, "duplicate sidebar prefix")
		}
		seen[r.Prefix] = struct{}{}

		for i, s := range r.Sections {
			sf := fmt.Sprintf("%s[%d]", field, i)
			if normalizeLabel(s.Heading) == "" {
				return invalid(sf+".text", s.Heading, "sidebar section heading must not be empty")
			}
			for j, item := range s.Items {
				itf := fmt.Sprintf("%s.items[%d]", sf, j)
				if normalizeLabel(item.Label) == "" {
					return invalid(itf+".text", item.Label, "sidebar item label must not be empty")
				}
				if err := CheckTarget(item.Target); err != nil {
					return wrapInvalid(err, itf+".link", item.Target)
				}
			}
		}
	}
	return nil
}

func (validator) validateSocial(links []SocialLink) error {
	for i, l := range links {
		field := fmt.Sprintf("socialLinks[%d]", i)
		if !l.Icon.Valid() {
			return invalid(field+".icon", string(l.Icon), "unknown social icon")
		}
		u, err := url.Parse(l.URL)
		if err != nil {
			return wrapInvalid(err, field+".link", l.URL)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalid(field+".link", l.URL, "social link must be an absolute http(s) URL")
		}
	}
	return nil
}

// CheckTarget reports whether target is a well-formed root-relative document
// reference: "/", "/dir/", "/dir/page", optionally with a .md/.html suffix and
// a #fragment.
func CheckTarget(target string) error {
	if target == "" {
		return errors.New("link must not be empty")
	}
	if !strings.HasPrefix(target, "/") {
		return errors.New("link must be root-relative")
	}
	if strings.HasPrefix(target, "//") {
		return errors.New("protocol-relative links are not allowed")
	}
	if strings.IndexFunc(target, unicode.IsSpace) >= 0 {
		return errors.New("link must not contain whitespace")
	}
	if strings.IndexFunc(target, unicode.IsControl) >= 0 {
		return errors.New("link must not contain control characters")
	}
	if strings.Contains(target, `\`) {
		return errors.New("link must not contain a backslash")
	}
	if strings.Contains(target, "?") {
		return errors.New("link must not carry a query string")
	}
	p, frag, hasFrag := strings.Cut(target, "#")
	if hasFrag && (frag == "" || strings.Contains(frag, "#")) {
		return errors.New("malformed fragment")
	}
	segs := strings.Split(p[1:], "/")
	for i, seg := range segs {
		switch seg {
		case "":
			if i != len(segs)-1 {
				return errors.New("link contains an empty path segment")
			}
		case ".", "..":
			return errors.New("link must not contain relative segments")
		}
	}
	return nil
}

// CheckPrefix reports whether prefix can key the sidebar map.
func CheckPrefix(prefix string) error {
	if err := CheckTarget(prefix); err != nil {
		return err
	}
	if strings.Contains(prefix, "#") {
		return errors.New("sidebar prefix must not carry a fragment")
	}
	if !strings.HasSuffix(prefix, "/") {
		return errors.New("sidebar prefix must end with /")
	}
	return nil
}

func normalizeLabel(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("\"'>/=", r)
	})
}

func invalid(field, value, msg string) error {
	return ferrors.ValidationError(msg).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}

func wrapInvalid(err error, field, value string) error {
	return ferrors.ValidationError("invalid "+field).
		WithCause(err).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}
