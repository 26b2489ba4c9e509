package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5, cfg.Database.ConnectAttempts)
	assert.Equal(t, 5*time.Second, cfg.Database.PoolMonitorInterval)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Auth.MaxFailedAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Auth.LockDuration)
	assert.Equal(t, "admin", cfg.Auth.Admin.Username)
	assert.Equal(t, UploadProviderFile, cfg.Upload.Provider)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.ImageMaxBytes())
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.DocumentMaxBytes())
	assert.Equal(t, 400, cfg.Upload.ImageWidth)
	assert.Equal(t, 500, cfg.Upload.ImageHeight)
	assert.Equal(t, 90*24*time.Hour, cfg.Analytics.Retention)
	assert.Equal(t, 5*time.Minute, cfg.Analytics.SummaryCacheTTL)
	assert.Equal(t, 500, cfg.Analytics.MaxTextLength)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
}

func TestUploadConfig_InvalidSizeFallsBack(t *testing.T) {
	cfg := &UploadConfig{ImageMaxSize: "lots", DocumentMaxSize: "2MiB"}

	assert.Equal(t, int64(5*1024*1024), cfg.ImageMaxBytes())
	assert.Equal(t, int64(2*1024*1024), cfg.DocumentMaxBytes())
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`
http:
  port: 8080
security:
  adminAllowList: "127.0.0.1"
auth:
  tokenTTL: 1h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio-test.yaml"), yamlContent, 0o600))
	t.Chdir(dir)
	t.Setenv("SECURITY_ADMINALLOWLIST", "103.21.244.0/24")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("folio-test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "103.21.244.0/24", cfg.Security.AdminAllowList)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
