package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"modlist-builder/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "name-list.txt", cfg.Output.NameListFile)
	assert.Equal(t, "id-list.txt", cfg.Output.IDListFile)
	assert.Equal(t, "unmatched.txt", cfg.Output.ReportFile)
	assert.Empty(t, cfg.Manifest.Path)
	assert.Equal(t, 0, cfg.Manifest.CacheTTLSeconds)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/modlists")
	t.Setenv("MANIFEST_CACHE_TTL_SECONDS", "60")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/modlists", cfg.Output.Dir)
	assert.Equal(t, 60, cfg.Manifest.CacheTTLSeconds)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\nMANIFEST_PATH=/data/Steam.json\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("MANIFEST_PATH")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/data/Steam.json", cfg.Manifest.Path)
}
