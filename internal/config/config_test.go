package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Sources)
	assert.NotEmpty(t, cfg.StagingDir)
	assert.Equal(t, 100, cfg.Defaults.Entries)
	assert.Equal(t, "WARNING", cfg.Defaults.MinSeverity)
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() {
			require.NoError(t, os.Chdir(origDir))
		})

		cfg, err := Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("loads config from current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() {
			require.NoError(t, os.Chdir(origDir))
		})

		configContent := `
format: ndjson
sources:
  server1: server1.log
  db_server: /var/log/db_server.log
`
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".logq.yaml"), []byte(configContent), 0o644))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "ndjson", cfg.Format)
		assert.Equal(t, "server1.log", cfg.Sources["server1"])
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("returns error for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o644))

		cfg, err := LoadFromFile(configPath)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parses all config fields", func(t *testing.T) {
		configContent := `
format: ndjson
quiet: true
verbose: true
remote_root: /srv/logs
staging_dir: /tmp/logq-staging
sources:
  server1: server1.log
  server2: server2.log.gz
defaults:
  entries: 250
  min_severity: ERROR
`
		configPath := filepath.Join(t.TempDir(), "logq.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "/srv/logs", cfg.RemoteRoot)
		assert.Equal(t, "/tmp/logq-staging", cfg.StagingDir)
		assert.Equal(t, map[string]string{
			"server1": "server1.log",
			"server2": "server2.log.gz",
		}, cfg.Sources)
		assert.Equal(t, 250, cfg.Defaults.Entries)
		assert.Equal(t, "ERROR", cfg.Defaults.MinSeverity)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "logq.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("format: ndjson\n"), 0o644))

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Defaults.Entries)
		assert.Equal(t, "WARNING", cfg.Defaults.MinSeverity)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOGQ_FORMAT", "ndjson")
	t.Setenv("LOGQ_QUIET", "1")
	t.Setenv("LOGQ_REMOTE_ROOT", "/srv/remote")
	t.Setenv("LOGQ_ENTRIES", "25")
	t.Setenv("LOGQ_MIN_SEVERITY", "CRITICAL")

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ndjson", cfg.Format)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "/srv/remote", cfg.RemoteRoot)
	assert.Equal(t, 25, cfg.Defaults.Entries)
	assert.Equal(t, "CRITICAL", cfg.Defaults.MinSeverity)
}

func TestEnvOverridesBadEntriesIgnored(t *testing.T) {
	t.Setenv("LOGQ_ENTRIES", "plenty")

	cfg := Default()
	applyEnvOverrides(cfg)
	assert.Equal(t, 100, cfg.Defaults.Entries)
}
