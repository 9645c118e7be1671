// Package markdown extracts navigation-relevant facts from Markdown bodies
// (front matter already removed). It never renders HTML.
package markdown

import (
	"bytes"
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Facts is what a single parse yields.
type Facts struct {
	// Title is the text of the first level-1 heading, or "".
	Title string
	Links []Link
}

// Analyze parses body once and returns its title and links.
func Analyze(body []byte) Facts {
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	var facts Facts
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if node.Level == 1 && facts.Title == "" {
				facts.Title = string(bytes.TrimSpace(nodeText(node, body)))
			}
		case *gmast.AutoLink:
			facts.Links = append(facts.Links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			facts.Links = append(facts.Links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			facts.Links = append(facts.Links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions live in the parse context, not in the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		facts.Links = append(facts.Links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}
	return facts
}

// ExtractLinks returns the links of body in document order, reference
// definitions last.
func ExtractLinks(body []byte) []Link {
	return Analyze(body).Links
}

// Title returns the first level-1 heading of body.
func Title(body []byte) string {
	return Analyze(body).Title
}

func nodeText(n gmast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		default:
			buf.Write(nodeText(c, source))
		}
	}
	return buf.Bytes()
}
