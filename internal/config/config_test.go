package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.DB.Path, ".showcase")
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "db:\n  path: /tmp/from-file.db\nserver:\n  port: 9000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("SHOWCASE_CONFIG_PATH", path)
	t.Setenv("SHOWCASE_DB", "/tmp/from-env.db")
	t.Setenv("SHOWCASE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	// Env wins over file; file wins over defaults.
	assert.Equal(t, "/tmp/from-env.db", cfg.DB.Path)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SHOWCASE_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHOWCASE_SERVER_PORT")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("SHOWCASE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
