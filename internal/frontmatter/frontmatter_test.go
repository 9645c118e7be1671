package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	header, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, header)
	require.Equal(t, input, body)
}

func TestSplit_SplitsHeaderAndBody(t *testing.T) {
	header, body, had, err := Split([]byte("---\ntitle: 缓存机制\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: 缓存机制\n"), header)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_CRLF(t *testing.T) {
	header, body, had, err := Split([]byte("---\r\ntitle: x\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: x\r\n"), header)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyHeader(t *testing.T) {
	header, body, had, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, header)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_HeaderAtEndOfFile(t *testing.T) {
	header, body, had, err := Split([]byte("---\nlayout: home\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("layout: home\n"), header)
	require.Empty(t, body)
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: x\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse_DecodesKnownFields(t *testing.T) {
	meta, body, err := Parse([]byte("---\ntitle: Dubbo SPI\nsidebar: false\nauthor: someone\n---\nbody\n"))
	require.NoError(t, err)
	require.Equal(t, "Dubbo SPI", meta.Title)
	require.NotNil(t, meta.Sidebar)
	require.False(t, *meta.Sidebar)
	require.Nil(t, meta.LastUpdated)
	require.Equal(t, []byte("body\n"), body)
}

func TestDecode_HeaderFromSplit(t *testing.T) {
	header, _, had, err := Split([]byte("---\ntitle: RocketMQ 存储\nlastUpdated: false\n---\n# body\n"))
	require.NoError(t, err)
	require.True(t, had)

	meta, err := Decode(header)
	require.NoError(t, err)
	require.Equal(t, "RocketMQ 存储", meta.Title)
	require.NotNil(t, meta.LastUpdated)
	require.False(t, *meta.LastUpdated)

	empty, err := Decode(nil)
	require.NoError(t, err)
	require.Equal(t, Meta{}, empty)

	_, err = Decode([]byte("title: [unclosed\n"))
	require.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	require.Error(t, err)
}
