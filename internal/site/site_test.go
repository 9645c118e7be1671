package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

func sampleDefinition() Definition {
	return Definition{
		Title:       "Notes",
		Description: "reading notes",
		Lang:        "zh-CN",
		LastUpdated: true,
		Head: []HeadTag{
			{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.ico"}},
		},
		Markdown: MarkdownOptions{LineNumbers: true},
		Nav: []NavEntry{
			{Label: "Home", Target: "/"},
			{Label: "Source", Children: []NavEntry{
				{Label: "MyBatis", Target: "/mybatis/"},
				{Label: "Dubbo", Target: "/dubbo/"},
			}},
		},
		Sidebar: NewSidebarMap(
			SidebarRoute{Prefix: "/mybatis/", Sections: []SidebarSection{
				{Heading: "Core", Items: []SidebarItem{
					{Label: "Overview", Target: "/mybatis/"},
					{Label: "Executor", Target: "/mybatis/executor"},
				}},
			}},
			SidebarRoute{Prefix: "/mybatis/plugin/", Sections: []SidebarSection{
				{Heading: "Plugins", Items: []SidebarItem{{Label: "Interceptor", Target: "/mybatis/plugin/interceptor"}}},
			}},
		),
		SocialLinks: []SocialLink{{Icon: IconGitHub, URL: "https://github.com/example/notes"}},
	}
}

func TestNewIsDeterministicAndIsolated(t *testing.T) {
	def := sampleDefinition()
	a, err := New(def)
	require.NoError(t, err)
	b, err := New(sampleDefinition())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	// Mutating the input or a returned copy must not leak into the config.
	def.Nav[0].Label = "changed"
	def.Head[0].Attrs["href"] = "/other.ico"
	nav := a.Nav()
	nav[1].Children[0].Target = "/x/"
	got := a.Definition()
	got.Sidebar = got.Sidebar.With("/new/", nil)

	assert.Equal(t, "Home", a.Nav()[0].Label)
	assert.Equal(t, "/favicon.ico", a.Head()[0].Attrs["href"])
	assert.Equal(t, "/mybatis/", a.Nav()[1].Children[0].Target)
	assert.Equal(t, 2, a.Sidebar().Len())
	assert.True(t, a.Equal(b))
}

func TestValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Definition)
		field  string
	}{
		{"empty title", func(d *Definition) { d.Title = "  " }, "title"},
		{"empty nav label", func(d *Definition) { d.Nav[0].Label = "" }, "nav[0].text"},
		{"nav target and items", func(d *Definition) {
			d.Nav[1].Target = "/source/"
		}, "nav[1]"},
		{"nav neither target nor items", func(d *Definition) {
			d.Nav[1].Children = nil
		}, "nav[1]"},
		{"nested dropdown", func(d *Definition) {
			d.Nav[1].Children[0].Children = []NavEntry{{Label: "x", Target: "/x"}}
		}, "nav[1].items[0]"},
		{"empty child label", func(d *Definition) { d.Nav[1].Children[1].Label = "" }, "nav[1].items[1].text"},
		{"duplicate nav target", func(d *Definition) {
			d.Nav[1].Children[1].Target = "/mybatis/"
		}, "nav[1].items[1].link"},
		{"duplicate top-level target", func(d *Definition) {
			d.Nav = append(d.Nav, NavEntry{Label: "Again", Target: "/"})
		}, "nav[2].link"},
		{"relative target", func(d *Definition) { d.Nav[0].Target = "mybatis/" }, "nav[0].link"},
		{"duplicate sidebar prefix", func(d *Definition) {
			d.Sidebar = NewSidebarMap(append(d.Sidebar.Routes(), SidebarRoute{Prefix: "/mybatis/"})...)
		}, `sidebar["/mybatis/"]`},
		{"prefix without slash", func(d *Definition) {
			d.Sidebar = NewSidebarMap(SidebarRoute{Prefix: "/mybatis"})
		}, `sidebar["/mybatis"]`},
		{"empty section heading", func(d *Definition) {
			d.Sidebar = d.Sidebar.With("/dubbo/", []SidebarSection{{Heading: ""}})
		}, `sidebar["/dubbo/"][0].text`},
		{"empty item label", func(d *Definition) {
			d.Sidebar = d.Sidebar.With("/dubbo/", []SidebarSection{{Heading: "SPI", Items: []SidebarItem{{Target: "/dubbo/spi"}}}})
		}, `sidebar["/dubbo/"][0].items[0].text`},
		{"bad item target", func(d *Definition) {
			d.Sidebar = d.Sidebar.With("/dubbo/", []SidebarSection{{Heading: "SPI", Items: []SidebarItem{{Label: "SPI", Target: "/dubbo/../etc"}}}})
		}, `sidebar["/dubbo/"][0].items[0].link`},
		{"unknown icon", func(d *Definition) { d.SocialLinks[0].Icon = "myspace" }, "socialLinks[0].icon"},
		{"relative social url", func(d *Definition) { d.SocialLinks[0].URL = "/github" }, "socialLinks[0].link"},
		{"body element in head", func(d *Definition) { d.Head[0].Tag = "div" }, "head[0].tag"},
		{"bad head attribute", func(d *Definition) { d.Head[0].Attrs["a b"] = "x" }, "head[0].attrs"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := sampleDefinition()
			tc.mutate(&def)
			_, err := New(def)
			require.Error(t, err)
			require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation), "got %v", err)
			ce, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			field, _ := ce.Context().GetString("field")
			assert.Equal(t, tc.field, field)
		})
	}
}

func TestCheckTarget(t *testing.T) {
	valid := []string{"/", "/share/", "/share/mybatis-cache", "/dubbo/spi.md", "/spring/ioc.html#refresh", "/源码/"}
	for _, v := range valid {
		assert.NoError(t, CheckTarget(v), v)
	}
	invalid := []string{"", "share/", "//cdn.example.com/x", "https://example.com/", "/a//b", "/a/./b", "/a b", "/a?x=1", "/a#", "/a#b#c", `/notes\b/`, `/a\n/`, "/a\x08/"}
	for _, v := range invalid {
		assert.Error(t, CheckTarget(v), v)
	}
	assert.Error(t, CheckPrefix("/share/#top"))
	assert.NoError(t, CheckPrefix("/share/"))
}

func TestEmptySidebarIsValid(t *testing.T) {
	def := sampleDefinition()
	def.Sidebar = SidebarMap{}
	cfg, err := New(def)
	require.NoError(t, err)

	prefix, sections, ok := cfg.ResolveSidebar("/mybatis/executor")
	assert.False(t, ok)
	assert.Empty(t, prefix)
	assert.Nil(t, sections)
}

func TestResolveSidebarLongestPrefix(t *testing.T) {
	cfg, err := New(sampleDefinition())
	require.NoError(t, err)

	cases := []struct {
		path   string
		prefix string
		ok     bool
	}{
		{"/mybatis/executor", "/mybatis/", true},
		{"/mybatis/plugin/interceptor", "/mybatis/plugin/", true},
		{"/mybatis/plugin/", "/mybatis/plugin/", true},
		{"/mybatis/plugin", "/mybatis/plugin/", true},
		{"mybatis/executor", "/mybatis/", true},
		{"/dubbo/spi", "", false},
		{"/", "", false},
	}
	for _, tc := range cases {
		prefix, _, ok := cfg.ResolveSidebar(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.prefix, prefix, tc.path)
	}
}

func TestSidebarMapOperations(t *testing.T) {
	m := NewSidebarMap(SidebarRoute{Prefix: "/a/"}, SidebarRoute{Prefix: "/b/"})
	m2 := m.With("/a/", []SidebarSection{{Heading: "A"}}).With("/c/", nil)

	assert.Equal(t, []string{"/a/", "/b/"}, m.Prefixes())
	assert.Equal(t, []string{"/a/", "/b/", "/c/"}, m2.Prefixes())

	secs, ok := m2.Lookup("/a/")
	require.True(t, ok)
	assert.Equal(t, "A", secs[0].Heading)

	_, ok = m.Lookup("/a/x")
	assert.False(t, ok)

	assert.Equal(t, []string{"/a/", "/c/"}, m2.Without("/b/").Prefixes())
	assert.True(t, SidebarMap{}.IsZero())
}

func TestNavRemoveAndReinsert(t *testing.T) {
	nav := sampleDefinition().Nav
	rest, group, idx, ok := RemoveNavEntry(nav, "Source")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Len(t, rest, 1)
	assert.True(t, group.IsGroup())

	assert.Equal(t, nav, InsertNavEntry(rest, idx, group))

	_, _, idx, ok = RemoveNavEntry(nav, "missing")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	appended := InsertNavEntry(nav, 99, NavEntry{Label: "About", Target: "/about/"})
	assert.Equal(t, "About", appended[len(appended)-1].Label)
	assert.Len(t, nav, 2)
}

func TestTargets(t *testing.T) {
	cfg, err := New(sampleDefinition())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/", "/mybatis/", "/dubbo/",
		"/mybatis/", "/mybatis/executor", "/mybatis/plugin/interceptor",
	}, cfg.Targets())
}
