package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./collective.json", cfg.CollectivePath)
	assert.Equal(t, "./trail.json", cfg.TrailPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ArchivePath)
	assert.Empty(t, cfg.SignalsPath)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"collective_path: /var/lib/subtext/collective.json\nlog_level: debug\n"), 0644))

	cfg, loadedFrom, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, path, loadedFrom)
	assert.Equal(t, "/var/lib/subtext/collective.json", cfg.CollectivePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./trail.json", cfg.TrailPath, "missing fields get defaults")
}

func TestLoadFromPathInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0644))

	_, _, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestFindConfigPathEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	assert.Equal(t, path, FindConfigPath())
}

func TestFindConfigPathEnvMissingFileIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigPath, filepath.Join(dir, "absent.yaml"))
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	assert.Empty(t, FindConfigPath())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	require.NoError(t, cfg.Save(path))

	loaded, _, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.LogLevel)
	assert.Equal(t, cfg.CollectivePath, loaded.CollectivePath)
}
