package markdown

// LinkKind classifies a link found in a Markdown body.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is a link-like construct and its raw destination.
type Link struct {
	Kind        LinkKind
	Destination string
}

// IsInternal reports whether the destination points inside the site: no
// scheme, not protocol-relative, not a bare fragment.
func (l Link) IsInternal() bool {
	d := l.Destination
	if d == "" || d[0] == '#' || l.Kind == LinkKindAuto {
		return false
	}
	if len(d) > 1 && d[0] == '/' && d[1] == '/' {
		return false
	}
	for i := 0; i < len(d); i++ {
		switch c := d[i]; {
		case c == ':':
			return false
		case c == '/' || c == '?' || c == '#':
			return true
		}
	}
	return true
}
