package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "showcase.log")

	logger, err := Build("info", file)
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestBuild_LevelFiltering(t *testing.T) {
	file := filepath.Join(t.TempDir(), "showcase.log")

	logger, err := Build("warn", file)
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestBuild_InvalidLevel(t *testing.T) {
	_, err := Build("shouting", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
