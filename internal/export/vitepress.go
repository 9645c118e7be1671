package export

import (
	"bytes"
	"encoding/json"
	"io"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/site"
)

const vitepressHeader = `// Generated by sitenav. Edit the site definition and re-export instead.
import { defineConfig } from 'vitepress'

export default defineConfig(`

type vitepressConfig struct {
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Lang        string                `json:"lang,omitempty"`
	LastUpdated bool                  `json:"lastUpdated,omitempty"`
	Head        [][]any               `json:"head,omitempty"`
	Markdown    *site.MarkdownOptions `json:"markdown,omitempty"`
	ThemeConfig vitepressTheme        `json:"themeConfig"`
}

type vitepressTheme struct {
	Nav         []site.NavEntry   `json:"nav,omitempty"`
	Sidebar     site.SidebarMap   `json:"sidebar"`
	SocialLinks []site.SocialLink `json:"socialLinks,omitempty"`
}

// writeVitePress writes a config.mts module that passes the site definition
// to the generator's defineConfig.
func writeVitePress(cfg *site.Config, w io.Writer) error {
	def := cfg.Definition()
	out := vitepressConfig{
		Title:       def.Title,
		Description: def.Description,
		Lang:        def.Lang,
		LastUpdated: def.LastUpdated,
		ThemeConfig: vitepressTheme{
			Nav:         def.Nav,
			Sidebar:     def.Sidebar,
			SocialLinks: def.SocialLinks,
		},
	}
	if def.Markdown != (site.MarkdownOptions{}) {
		md := def.Markdown
		out.Markdown = &md
	}
	for _, tag := range def.Head {
		entry := []any{tag.Tag, attrsOrEmpty(tag.Attrs)}
		if tag.Content != "" {
			entry = append(entry, tag.Content)
		}
		out.Head = append(out.Head, entry)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryExport, "encode vitepress config").Build()
	}
	var buf bytes.Buffer
	buf.WriteString(vitepressHeader)
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryExport, "indent vitepress config").Build()
	}
	buf.WriteString(")\n")
	_, err = w.Write(buf.Bytes())
	return err
}

func attrsOrEmpty(attrs map[string]string) map[string]string {
	if attrs == nil {
		return map[string]string{}
	}
	return attrs
}
