package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/site"
)

// HeadPartialPath is where the Hugo theme picks up extra head elements,
// relative to the site root.
const HeadPartialPath = "layouts/partials/custom/head-end.html"

var iconName = cases.Title(language.Und)

// hugoConfig builds the hugo.yaml tree for the hextra theme. Nav entries
// become the main menu, dropdown groups parent their children by
// identifier, and the ordered sidebar map is passed through as a param for
// the sidebar partial.
func hugoConfig(cfg *site.Config) map[string]any {
	def := cfg.Definition()

	params := map[string]any{
		"displayUpdatedDate": def.LastUpdated,
		"navbar":             map[string]any{"displayTitle": true, "displayLogo": false},
	}
	if def.Description != "" {
		params["description"] = def.Description
	}
	if !def.Sidebar.IsZero() {
		params["sidebars"] = def.Sidebar
	}

	root := map[string]any{
		"title":         def.Title,
		"enableGitInfo": def.LastUpdated,
		"markup": map[string]any{
			"goldmark":  map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{"style": "github", "lineNos": def.Markdown.LineNumbers, "noClasses": false},
		},
		"menu":   map[string]any{"main": mainMenu(def)},
		"params": params,
	}
	if def.Lang != "" {
		root["languageCode"] = def.Lang
		root["defaultContentLanguage"] = strings.ToLower(strings.SplitN(def.Lang, "-", 2)[0])
	}
	return root
}

func mainMenu(def site.Definition) []map[string]any {
	var menu []map[string]any
	for i, e := range def.Nav {
		weight := (i + 1) * 10
		if !e.IsGroup() {
			menu = append(menu, map[string]any{"name": e.Label, "url": hugoURL(e.Target), "weight": weight})
			continue
		}
		id := fmt.Sprintf("nav-%d", i)
		menu = append(menu, map[string]any{"name": e.Label, "identifier": id, "weight": weight})
		for j, c := range e.Children {
			menu = append(menu, map[string]any{
				"name":   c.Label,
				"url":    hugoURL(c.Target),
				"parent": id,
				"weight": weight + j + 1,
			})
		}
	}
	for i, s := range def.SocialLinks {
		menu = append(menu, map[string]any{
			"name":   iconName.String(string(s.Icon)),
			"url":    s.URL,
			"weight": 900 + i,
			"params": map[string]any{"icon": string(s.Icon)},
		})
	}
	return menu
}

// hugoURL drops the .md suffix Hugo does not serve.
func hugoURL(target string) string {
	p, frag, hasFrag := strings.Cut(target, "#")
	p = strings.TrimSuffix(p, ".md")
	if hasFrag {
		return p + "#" + frag
	}
	return p
}

func writeHugo(cfg *site.Config, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(hugoConfig(cfg)); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryExport, "encode hugo config").Build()
	}
	return enc.Close()
}
