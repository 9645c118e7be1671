package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javanotes/sitenav/internal/site"
)

func TestLoadIsDeterministic(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, Definition(), Definition())
}

func TestMustLoadDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad() })
}

func TestShareSidebar(t *testing.T) {
	cfg := MustLoad()
	sections, ok := cfg.Sidebar().Lookup("/share/")
	require.True(t, ok)
	require.NotEmpty(t, sections)

	first := sections[0]
	assert.Equal(t, ShareHeading, first.Heading)
	assert.GreaterOrEqual(t, len(first.Items), 16)
	assert.Equal(t, "/share/read-source-code", first.Items[0].Target)
}

func TestSidebarPrefixesAreUnique(t *testing.T) {
	prefixes := MustLoad().Sidebar().Prefixes()
	seen := map[string]bool{}
	for _, p := range prefixes {
		assert.False(t, seen[p], "duplicate prefix %s", p)
		seen[p] = true
	}
	assert.Equal(t, []string{"/share/", "/mybatis/", "/rocketmq/", "/spring/", "/dubbo/"}, prefixes)
}

func TestNavEntriesHaveExactlyOneOfTargetOrChildren(t *testing.T) {
	var walk func([]site.NavEntry)
	walk = func(entries []site.NavEntry) {
		for _, e := range entries {
			assert.NotEqual(t, e.Target != "", e.IsGroup(), "entry %q", e.Label)
			walk(e.Children)
		}
	}
	walk(MustLoad().Nav())
}

func TestSourceMenuRemoveAndReadd(t *testing.T) {
	nav := MustLoad().Nav()
	rest, group, idx, ok := site.RemoveNavEntry(nav, SourceMenu)
	require.True(t, ok)
	require.Len(t, group.Children, 4)
	assert.Len(t, rest, len(nav)-1)

	assert.Equal(t, nav, site.InsertNavEntry(rest, idx, group))
}

func TestRoundTrip(t *testing.T) {
	cfg := MustLoad()

	y, err := cfg.EncodeYAML()
	require.NoError(t, err)
	fromYAML, err := site.DecodeYAML(y)
	require.NoError(t, err)
	assert.True(t, cfg.Equal(fromYAML))

	j, err := cfg.EncodeJSON()
	require.NoError(t, err)
	fromJSON, err := site.DecodeJSON(j)
	require.NoError(t, err)
	assert.True(t, cfg.Equal(fromJSON))
}

func TestSidebarResolution(t *testing.T) {
	cfg := MustLoad()
	prefix, sections, ok := cfg.ResolveSidebar("/dubbo/spi")
	require.True(t, ok)
	assert.Equal(t, "/dubbo/", prefix)
	assert.Equal(t, "Dubbo 源码", sections[0].Heading)

	_, _, ok = cfg.ResolveSidebar("/about/")
	assert.False(t, ok)
}
