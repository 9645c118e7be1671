package site

import "maps"

// NavEntry is a top navigation bar item. It either points at a page (Target)
// or opens a dropdown (Children), never both.
type NavEntry struct {
	Label    string     `yaml:"text" json:"text"`
	Target   string     `yaml:"link,omitempty" json:"link,omitempty"`
	Children []NavEntry `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsGroup reports whether the entry is a dropdown group.
func (e NavEntry) IsGroup() bool { return len(e.Children) > 0 }

// SidebarItem is a single sidebar link.
type SidebarItem struct {
	Label  string `yaml:"text" json:"text"`
	Target string `yaml:"link" json:"link"`
}

// SidebarSection is a headed group of sidebar links. Item order is reading order.
type SidebarSection struct {
	Heading   string        `yaml:"text" json:"text"`
	Collapsed bool          `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []SidebarItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// SocialIcon identifies a social link icon known to the theme.
type SocialIcon string

const (
	IconGitHub    SocialIcon = "github"
	IconGitee     SocialIcon = "gitee"
	IconTwitter   SocialIcon = "twitter"
	IconX         SocialIcon = "x"
	IconDiscord   SocialIcon = "discord"
	IconFacebook  SocialIcon = "facebook"
	IconInstagram SocialIcon = "instagram"
	IconLinkedIn  SocialIcon = "linkedin"
	IconMastodon  SocialIcon = "mastodon"
	IconSlack     SocialIcon = "slack"
	IconYouTube   SocialIcon = "youtube"
	IconNPM       SocialIcon = "npm"
	IconRSS       SocialIcon = "rss"
	IconZhihu     SocialIcon = "zhihu"
	IconJuejin    SocialIcon = "juejin"
	IconCSDN      SocialIcon = "csdn"
)

var knownIcons = map[SocialIcon]struct{}{
	IconGitHub: {}, IconGitee: {}, IconTwitter: {}, IconX: {}, IconDiscord: {},
	IconFacebook: {}, IconInstagram: {}, IconLinkedIn: {}, IconMastodon: {},
	IconSlack: {}, IconYouTube: {}, IconNPM: {}, IconRSS: {}, IconZhihu: {},
	IconJuejin: {}, IconCSDN: {},
}

// Valid reports whether the icon is one of the known identifiers.
func (i SocialIcon) Valid() bool {
	_, ok := knownIcons[i]
	return ok
}

// SocialLink is an icon link shown in the navigation bar.
type SocialLink struct {
	Icon SocialIcon `yaml:"icon" json:"icon"`
	URL  string     `yaml:"link" json:"link"`
}

// HeadTag is an extra element injected into every page's <head>.
type HeadTag struct {
	Tag     string            `yaml:"tag" json:"tag"`
	Attrs   map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Content string            `yaml:"content,omitempty" json:"content,omitempty"`
}

// MarkdownOptions are passed through to the generator's Markdown renderer.
type MarkdownOptions struct {
	LineNumbers bool `yaml:"lineNumbers,omitempty" json:"lineNumbers,omitempty"`
}

// Definition is the plain-data form of the site configuration.
type Definition struct {
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Lang        string          `yaml:"lang,omitempty" json:"lang,omitempty"`
	LastUpdated bool            `yaml:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	Head        []HeadTag       `yaml:"head,omitempty" json:"head,omitempty"`
	Markdown    MarkdownOptions `yaml:"markdown,omitempty" json:"markdown"`
	Nav         []NavEntry      `yaml:"nav,omitempty" json:"nav,omitempty"`
	Sidebar     SidebarMap      `yaml:"sidebar,omitempty" json:"sidebar"`
	SocialLinks []SocialLink    `yaml:"socialLinks,omitempty" json:"socialLinks,omitempty"`
}

// clone returns a deep copy. Empty slices and maps come back as nil so that
// decoded and literal definitions compare equal.
func (d Definition) clone() Definition {
	out := d
	out.Head = cloneHead(d.Head)
	out.Nav = cloneNav(d.Nav)
	out.Sidebar = d.Sidebar.clone()
	if len(d.SocialLinks) > 0 {
		out.SocialLinks = append([]SocialLink(nil), d.SocialLinks...)
	} else {
		out.SocialLinks = nil
	}
	return out
}

func cloneHead(in []HeadTag) []HeadTag {
	if len(in) == 0 {
		return nil
	}
	out := make([]HeadTag, len(in))
	for i, h := range in {
		out[i] = h
		if len(h.Attrs) > 0 {
			out[i].Attrs = maps.Clone(h.Attrs)
		} else {
			out[i].Attrs = nil
		}
	}
	return out
}

func cloneNav(in []NavEntry) []NavEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]NavEntry, len(in))
	for i, e := range in {
		out[i] = NavEntry{Label: e.Label, Target: e.Target, Children: cloneNav(e.Children)}
	}
	return out
}

func cloneSections(in []SidebarSection) []SidebarSection {
	if len(in) == 0 {
		return nil
	}
	out := make([]SidebarSection, len(in))
	for i, s := range in {
		out[i] = s
		if len(s.Items) > 0 {
			out[i].Items = append([]SidebarItem(nil), s.Items...)
		} else {
			out[i].Items = nil
		}
	}
	return out
}
