package docs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
	"github.com/javanotes/sitenav/internal/testutil"
)

func TestRouteFor(t *testing.T) {
	cases := map[string]string{
		"index.md":                     "/",
		"about/index.md":               "/about/",
		"share/read-source-code.md":    "/share/read-source-code",
		"mybatis/cache/first-level.md": "/mybatis/cache/first-level",
	}
	for in, want := range cases {
		assert.Equal(t, want, RouteFor(in), in)
	}
}

func TestDiscover(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"index.md":                   "---\ntitle: 首页\n---\n\nwelcome\n",
		"share/index.md":             "# 分享\n",
		"share/read-source-code.md":  "# 如何阅读源码\n\nSee [cache](/mybatis/cache).\n",
		"mybatis/cache.md":           "plain body\n",
		"about/index.md":             "no heading\n",
		".vitepress/theme/index.md":  "# hidden\n",
		"node_modules/pkg/README.md": "# vendored\n",
		"drafts/wip.md":              "# draft\n",
		"share/image.png":            "binary",
		"share/Legacy.MD":            "# legacy\n",
	})

	idx, err := Discover(root, []string{"drafts/*"})
	require.NoError(t, err)

	var routes []string
	for _, pg := range idx.Pages() {
		routes = append(routes, pg.Route)
	}
	assert.Equal(t, []string{"/", "/about/", "/mybatis/cache", "/share/", "/share/read-source-code"}, routes)

	home, ok := idx.Page("/")
	require.True(t, ok)
	assert.Equal(t, "首页", home.Title)
	assert.NotEmpty(t, home.Fingerprint)

	article, ok := idx.Page("/share/read-source-code")
	require.True(t, ok)
	assert.Equal(t, "如何阅读源码", article.Title)
	assert.Equal(t, "share/read-source-code.md", article.RelPath)
	require.Len(t, article.Links, 1)
	assert.Equal(t, "/mybatis/cache", article.Links[0].Destination)

	cache, _ := idx.Page("/mybatis/cache")
	assert.Equal(t, "cache", cache.Title)
	about, _ := idx.Page("/about/")
	assert.Equal(t, "about", about.Title)
}

func TestDiscoverFingerprintTracksContent(t *testing.T) {
	a := testutil.WriteTree(t, map[string]string{"a.md": "# A\n\none\n"})
	b := testutil.WriteTree(t, map[string]string{"a.md": "# A\n\ntwo\n"})

	ia, err := Discover(a, nil)
	require.NoError(t, err)
	ib, err := Discover(b, nil)
	require.NoError(t, err)
	again, err := Discover(a, nil)
	require.NoError(t, err)

	pa, _ := ia.Page("/a")
	pb, _ := ib.Page("/a")
	pc, _ := again.Page("/a")
	assert.NotEqual(t, pa.Fingerprint, pb.Fingerprint)
	assert.Equal(t, pa.Fingerprint, pc.Fingerprint)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocsDirNotFound)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryDocs))
}

func TestDiscoverMalformedFrontMatter(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"broken.md": "---\ntitle: x\n\nno closing\n"})
	_, err := Discover(root, nil)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryDocs))
}

func TestIndexResolve(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"index.md":                  "# home\n",
		"share/index.md":            "# share\n",
		"share/read-source-code.md": "# read\n",
		"dubbo/spi.md":              "# spi\n",
	})
	idx, err := Discover(root, nil)
	require.NoError(t, err)

	cases := []struct {
		target string
		route  string
		ok     bool
	}{
		{"/", "/", true},
		{"/share/", "/share/", true},
		{"/share", "/share/", true},
		{"/share/index.md", "/share/", true},
		{"/share/read-source-code", "/share/read-source-code", true},
		{"/share/read-source-code.md", "/share/read-source-code", true},
		{"/share/read-source-code.html#intro", "/share/read-source-code", true},
		{"/dubbo/spi", "/dubbo/spi", true},
		{"/dubbo/", "", false},
		{"/missing", "", false},
		{"#top", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			pg, ok := idx.Resolve(tc.target)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.route, pg.Route)
		})
	}
}

func TestIndexResolveFrom(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"mybatis/index.md": "# mybatis\n",
		"mybatis/cache.md": "# cache\n",
		"spring/ioc.md":    "# ioc\n",
	})
	idx, err := Discover(root, nil)
	require.NoError(t, err)

	pg, ok := idx.ResolveFrom("/mybatis/cache", "../spring/ioc.md")
	require.True(t, ok)
	assert.Equal(t, "/spring/ioc", pg.Route)

	pg, ok = idx.ResolveFrom("/mybatis/", "cache#first-level")
	require.True(t, ok)
	assert.Equal(t, "/mybatis/cache", pg.Route)

	pg, ok = idx.ResolveFrom("/spring/ioc", "../mybatis/")
	require.True(t, ok)
	assert.Equal(t, "/mybatis/", pg.Route)

	_, ok = idx.ResolveFrom("/spring/ioc", "aop.md")
	assert.False(t, ok)
}
