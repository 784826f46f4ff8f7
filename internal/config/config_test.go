package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Values 测试默认配置值
func TestDefault_Values(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, float64(100), cfg.Server.RateLimitRPS)
	assert.Equal(t, 200, cfg.Server.RateLimitBurst)
	assert.False(t, cfg.Server.CSRFEnabled)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "compose", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.Equal(t, 300, cfg.Render.CacheTTL)
	assert.Equal(t, float64(21), cfg.Render.DefaultTVARate)

	assert.Equal(t, "./backups", cfg.Backup.Dir)
	assert.Equal(t, 0, cfg.Backup.Interval)
	assert.Equal(t, 7, cfg.Backup.Keep)

	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "http://localhost:14268/api/traces", cfg.Tracing.JaegerEndpoint)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

// TestLoad_FromFile 测试从配置文件加载
func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
database:
  dbname: compose_test
render:
  cache_ttl: 60
  default_tva_rate: 6
backup:
  interval: 3600
  keep: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "compose_test", cfg.Database.DBName)
	assert.Equal(t, 60, cfg.Render.CacheTTL)
	assert.Equal(t, float64(6), cfg.Render.DefaultTVARate)
	assert.Equal(t, 3600, cfg.Backup.Interval)
	assert.Equal(t, 3, cfg.Backup.Keep)

	// 未覆盖的配置保持默认值
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./backups", cfg.Backup.Dir)
}

// TestLoad_EnvOverride 测试环境变量覆盖配置
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "7070")
	t.Setenv("APP_DATABASE_DBNAME", "compose_env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "compose_env", cfg.Database.DBName)
}

// TestLoad_InvalidFile 测试加载不存在的配置文件
func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

// TestIsProduction 测试环境判断
func TestIsProduction(t *testing.T) {
	assert.False(t, IsProduction(nil))
	assert.False(t, IsProduction(&Config{Env: "development"}))
	assert.True(t, IsProduction(&Config{Env: "production"}))
}
