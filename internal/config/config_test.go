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
	assert.Equal(t, "0.0.0.0:8002", cfg.Addr())
	assert.False(t, cfg.Debug)
}

func TestLoadFileOverlaysOntoBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"host":"127.0.0.1","port":"9999"},"debug":true}`), 0o644))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Addr())
	assert.True(t, cfg.Debug)
}

func TestLoadFilePartialOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"port":"1234"}}`), 0o644))

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:1234", cfg.Addr())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/path.json", Default())
	require.Error(t, err)
}
