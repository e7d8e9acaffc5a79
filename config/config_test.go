package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
redis:
  host: "localhost"
  port: 6379
shiprocket:
  base_url: "https://apiv2.shiprocket.in"
  email: "ops@example.com"
  password: "file-secret"
shipgate:
  http_addr: ":8001"
  tracking_cache_ttl_seconds: 600
`), 0o600))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	require.Equal(t, 6379, cfg.Redis.Port)
	require.Equal(t, "https://apiv2.shiprocket.in", cfg.Shiprocket.BaseURL)
	require.Equal(t, "ops@example.com", cfg.Shiprocket.Email)
	require.Equal(t, ":8001", cfg.Shipgate.HTTPAddr)
	require.Equal(t, 600, cfg.Shipgate.TrackingCacheTTLSeconds)
}

func TestLoadConfig_EnvOverridesCredentials(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
shiprocket:
  email: "file@example.com"
  password: "file-secret"
`), 0o600))

	t.Setenv("SHIPROCKET_EMAIL", "env@example.com")
	t.Setenv("SHIPROCKET_PASSWORD", "env-secret")

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	require.Equal(t, "env@example.com", cfg.Shiprocket.Email)
	require.Equal(t, "env-secret", cfg.Shiprocket.Password)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/cfg.yaml")
	require.Error(t, err)
}
