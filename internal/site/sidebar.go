package site

import "strings"

// SidebarRoute binds a URL path prefix to the sidebar sections shown under it.
type SidebarRoute struct {
	Prefix   string
	Sections []SidebarSection
}

// SidebarMap is an ordered, prefix-keyed table of sidebars. The zero value is
// an empty map, which is valid: pages then render without a sidebar.
//
// SidebarMap is a value type; methods never mutate the receiver.
type SidebarMap struct {
	routes []SidebarRoute
}

// NewSidebarMap builds a map from routes in the given order. Duplicate
// prefixes are kept so that validation can report them.
func NewSidebarMap(routes ...SidebarRoute) SidebarMap {
	m := SidebarMap{}
	for _, r := range routes {
		m.routes = append(m.routes, SidebarRoute{Prefix: r.Prefix, Sections: cloneSections(r.Sections)})
	}
	return m
}

// With returns a copy with prefix bound to sections. An existing prefix keeps
// its position; a new one is appended.
func (m SidebarMap) With(prefix string, sections []SidebarSection) SidebarMap {
	out := m.clone()
	for i := range out.routes {
		if out.routes[i].Prefix == prefix {
			out.routes[i].Sections = cloneSections(sections)
			return out
		}
	}
	out.routes = append(out.routes, SidebarRoute{Prefix: prefix, Sections: cloneSections(sections)})
	return out
}

// Without returns a copy with prefix removed.
func (m SidebarMap) Without(prefix string) SidebarMap {
	out := SidebarMap{}
	for _, r := range m.routes {
		if r.Prefix != prefix {
			out.routes = append(out.routes, SidebarRoute{Prefix: r.Prefix, Sections: cloneSections(r.Sections)})
		}
	}
	return out
}

// Len returns the number of routes.
func (m SidebarMap) Len() int { return len(m.routes) }

// IsZero reports whether the map has no routes.
func (m SidebarMap) IsZero() bool { return len(m.routes) == 0 }

// Prefixes returns the keys in declaration order.
func (m SidebarMap) Prefixes() []string {
	out := make([]string, 0, len(m.routes))
	for _, r := range m.routes {
		out = append(out, r.Prefix)
	}
	return out
}

// Routes returns a deep copy of all routes in declaration order.
func (m SidebarMap) Routes() []SidebarRoute {
	return m.clone().routes
}

// Lookup returns the sections bound to exactly prefix.
func (m SidebarMap) Lookup(prefix string) ([]SidebarSection, bool) {
	for _, r := range m.routes {
		if r.Prefix == prefix {
			return cloneSections(r.Sections), true
		}
	}
	return nil, false
}

// Resolve picks the route serving pagePath: the longest prefix that pagePath
// starts with. A directory path without its trailing slash ("/share") also
// matches its own prefix ("/share/"). ok is false when no route applies.
func (m SidebarMap) Resolve(pagePath string) (prefix string, sections []SidebarSection, ok bool) {
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}
	best := -1
	for i, r := range m.routes {
		if !strings.HasPrefix(pagePath, r.Prefix) && pagePath+"/" != r.Prefix {
			continue
		}
		if best < 0 || len(r.Prefix) > len(m.routes[best].Prefix) {
			best = i
		}
	}
	if best < 0 {
		return "", nil, false
	}
	r := m.routes[best]
	return r.Prefix, cloneSections(r.Sections), true
}

func (m SidebarMap) clone() SidebarMap {
	if len(m.routes) == 0 {
		return SidebarMap{}
	}
	out := SidebarMap{routes: make([]SidebarRoute, len(m.routes))}
	for i, r := range m.routes {
		out.routes[i] = SidebarRoute{Prefix: r.Prefix, Sections: cloneSections(r.Sections)}
	}
	return out
}
