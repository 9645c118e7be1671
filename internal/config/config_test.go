package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("docs:\n  dir: ./content\n"))
	require.NoError(t, err)

	assert.Equal(t, "./content", cfg.Docs.Dir)
	assert.Equal(t, "./docs/.vitepress", cfg.Output.Directory)
	assert.Equal(t, []Format{FormatVitePress}, cfg.Output.Formats)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.DebounceDuration())
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestParseNormalizesFormats(t *testing.T) {
	cfg, err := Parse([]byte("output:\n  directory: out\n  formats: [YML, hextra, json]\n"))
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatYAML, FormatHugo, FormatJSON}, cfg.Output.Formats)
}

func TestParseExpandsEnvironment(t *testing.T) {
	t.Setenv("SITENAV_TEST_DOCS", "/srv/notes")
	cfg, err := Parse([]byte("docs:\n  dir: ${SITENAV_TEST_DOCS}\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes", cfg.Docs.Dir)
}

func TestValidationErrors(t *testing.T) {
	cases := map[string]string{
		"unknown format":   "output:\n  formats: [pdf]\n",
		"duplicate format": "output:\n  formats: [yaml, yml]\n",
		"bad glob":         "docs:\n  ignore: ['[']\n",
		"bad ignore route": "check:\n  ignore_orphans: [about]\n",
		"bad debounce":     "watch:\n  debounce: soon\n",
		"unknown field":    "docs:\n  directory: ./docs\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "./docs", cfg.Docs.Dir)
}

func TestInitWritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/about/"}, cfg.Check.IgnoreOrphans)

	err = Init(path, false)
	require.Error(t, err)
	require.NoError(t, Init(path, true))

	_, err = os.Stat(path)
	require.NoError(t, err)
}
