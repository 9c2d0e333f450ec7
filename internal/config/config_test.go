package config_test

import (
	"os"
	"path/filepath"
	"presell/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
environment: production
logLevel: warn
http:
  addr: ":9090"
  allowedOrigins: ["https://app.example.com"]
capture:
  budget: 12s
validator:
  allowedDomains: ["example.com"]
screenshot:
  backend: none
`)
	t.Setenv("CAPTURE_MAX_ATTEMPTS", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 12*time.Second, cfg.Capture.Budget)
	require.Equal(t, []string{"example.com"}, cfg.Validator.AllowedDomains)
	require.Equal(t, "none", cfg.Screenshot.Backend)
	require.Equal(t, 7, cfg.Capture.MaxAttempts)

	// untouched keys keep their defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 5*time.Second, cfg.Capture.PersistTimeout)
	require.Equal(t, 2000, cfg.Validator.MaxLength)
	require.Equal(t, "local", cfg.Artifacts.Driver)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.Capture.Budget)
	require.Contains(t, cfg.Validator.AllowedDomains, "hotmart.com")
	require.Equal(t, "chromedp", cfg.Screenshot.Backend)
	require.Empty(t, cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
