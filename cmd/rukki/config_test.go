package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_OverridesOnlyNamedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rukki.yaml")
	require.NoError(t, os.WriteFile(path, []byte("long_node_threshold: 1000\nmarker_ratio: 0.8\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.LongNodeThreshold)
	require.Equal(t, 0.8, cfg.MarkerRatio)
	require.Equal(t, defaultConfig().MaxLength, cfg.MaxLength, "unspecified fields keep their default")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig("/does/not/exist.yaml")
	require.Error(t, err)
}
