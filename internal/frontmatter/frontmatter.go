// Package frontmatter reads the YAML header of Markdown pages.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a YAML header but
// never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Meta holds the header fields that matter for navigation.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Layout      string `yaml:"layout"`
	// Sidebar is false when the page opts out of the sidebar; nil means unset.
	Sidebar *bool `yaml:"sidebar"`
	// LastUpdated is false when the page hides its last-updated time.
	LastUpdated *bool `yaml:"lastUpdated"`
}

// Split separates a `---` delimited YAML header from the Markdown body. had
// is false when the document has no header; body is then the full input.
func Split(content []byte) (header, body []byte, had bool, err error) {
	nl := []byte("\n")
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = []byte("\r\n")
	}
	open := append([]byte("---"), nl...)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}
	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}
	closing := append(append([]byte{}, nl...), open...)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		// A header closed at end of file has no trailing newline.
		tail := append(append([]byte{}, nl...), []byte("---")...)
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
}

// Parse splits content and decodes its header. Unknown header keys are ignored.
func Parse(content []byte) (Meta, []byte, error) {
	header, body, _, err := Split(content)
	if err != nil {
		return Meta{}, nil, err
	}
	meta, err := Decode(header)
	if err != nil {
		return Meta{}, nil, err
	}
	return meta, body, nil
}

// Decode reads a header returned by Split. An empty header yields zero Meta.
func Decode(header []byte) (Meta, error) {
	var meta Meta
	if len(bytes.TrimSpace(header)) == 0 {
		return meta, nil
	}
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return Meta{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	return meta, nil
}
