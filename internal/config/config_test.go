package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8385", cfg.Addr())
	assert.Equal(t, "./data/webland.db", cfg.Database.Path)
	assert.Equal(t, "eur", cfg.Crypto.VsCurrency)

	interval, err := cfg.RefreshInterval()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, interval)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `server:
  port: "9000"
crypto:
  vs_currency: usd
  refresh_interval: 30s
weather:
  api_key: test-key
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "usd", cfg.Crypto.VsCurrency)
	assert.Equal(t, "test-key", cfg.Weather.APIKey)

	interval, err := cfg.RefreshInterval()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, interval)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0o644))

	t.Setenv("WEBLAND_PORT", "9999")
	t.Setenv("WEBLAND_VS_CURRENCY", "usd")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "usd", cfg.Crypto.VsCurrency)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8385", cfg.Server.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("WEBLAND_PORT", "not-a-port")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestLoad_InvalidRefreshInterval(t *testing.T) {
	t.Setenv("WEBLAND_REFRESH_INTERVAL", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh interval")
}
