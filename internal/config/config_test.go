package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.False(t, cfg.Format.Pretty)
	assert.Equal(t, "  ", cfg.Format.Indent)
	assert.False(t, cfg.Numbers.ArbitraryPrecision)
	assert.True(t, cfg.Objects.PreserveOrder)
	assert.False(t, cfg.Objects.SortKeys)
	assert.Equal(t, 128, cfg.Limits.MaxDepth)
	assert.Equal(t, "", cfg.Keys.Case)
	assert.False(t, cfg.Dev.Debug)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
format:
  pretty: true
  indent: "    "
numbers:
  arbitrary_precision: true
objects:
  sort_keys: true
limits:
  max_depth: 64
keys:
  case: "snake"
dev:
  debug: true
`

	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.True(t, cfg.Format.Pretty)
	assert.Equal(t, "    ", cfg.Format.Indent)
	assert.True(t, cfg.Numbers.ArbitraryPrecision)
	assert.True(t, cfg.Objects.SortKeys)
	assert.False(t, cfg.Objects.PreserveOrder, "sort_keys turns insertion order off")
	assert.Equal(t, 64, cfg.Limits.MaxDepth)
	assert.Equal(t, "snake", cfg.Keys.Case)
	assert.True(t, cfg.Dev.Debug)
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString("format:\n  pretty: true\n")
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.True(t, cfg.Format.Pretty)
	assert.Equal(t, 128, cfg.Limits.MaxDepth, "unset fields keep defaults")
	assert.True(t, cfg.Objects.PreserveOrder)
}

func TestConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "format: [unclosed"},
		{"bad depth", "limits:\n  max_depth: 0\n"},
		{"bad key case", "keys:\n  case: \"shouty\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := os.CreateTemp("", "config_test_*.yml")
			require.NoError(t, err)
			defer func() { _ = os.Remove(tmpFile.Name()) }()

			_, err = tmpFile.WriteString(tt.content)
			require.NoError(t, err)
			_ = tmpFile.Close()

			_, err = LoadConfig(tmpFile.Name())
			assert.Error(t, err)
		})
	}
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	assert.Error(t, err)
}

func TestFindConfigFile_FindsNearest(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))

	cfgPath := filepath.Join(dir, ".gojson.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dev:\n  debug: true\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(wd) }()
	require.NoError(t, os.Chdir(sub))

	found := FindConfigFile()
	require.NotEmpty(t, found)
	// macOS tempdirs resolve through symlinks, so compare basenames
	assert.Equal(t, ".gojson.yml", filepath.Base(found))
}
