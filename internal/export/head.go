package export

import (
	"bytes"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/site"
)

var voidHeadElements = map[atom.Atom]bool{
	atom.Meta: true,
	atom.Link: true,
	atom.Base: true,
}

// RenderHead renders head tags as HTML, one element per line. Attributes are
// emitted in name order; content is ignored on void elements.
func RenderHead(tags []site.HeadTag) (string, error) {
	var buf bytes.Buffer
	for _, tag := range tags {
		a := atom.Lookup([]byte(tag.Tag))
		n := &html.Node{Type: html.ElementNode, Data: tag.Tag, DataAtom: a}
		names := make([]string, 0, len(tag.Attrs))
		for name := range tag.Attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			n.Attr = append(n.Attr, html.Attribute{Key: name, Val: tag.Attrs[name]})
		}
		if tag.Content != "" && !voidHeadElements[a] {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: tag.Content})
		}
		if err := html.Render(&buf, n); err != nil {
			return "", ferrors.WrapError(err, ferrors.CategoryExport, "render head tag").
				WithContext("tag", tag.Tag).
				Build()
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
