package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hecs-calculator/repository"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, int64(10*1024), cfg.Server.BodyLimit)
	assert.Equal(t, "public", cfg.Server.StaticDir)
	assert.Equal(t, 100, cfg.RateLimit.Capacity)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, repository.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, repository.DriverMemory, cfg.Storage.CacheDriver)
	assert.Equal(t, time.Hour, cfg.Storage.CacheTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_PortOverridesAddr(t *testing.T) {
	t.Setenv("PORT", "8080")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_ExplicitAddrBeatsPort(t *testing.T) {
	t.Setenv("PORT", "8080")

	v := viper.New()
	SetDefaults(v)
	// same layer a bound --addr flag lands in
	v.Set("server.addr", "127.0.0.1:9000")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestInit_AddrFromEnvironmentBeatsPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("HECS_SERVER_ADDR", ":7000")

	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestInit_ReadsFileAndEnvironment(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HECS_RATE_LIMIT_CAPACITY", "7")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: sqlite
  sqlite_path: /tmp/hecs-test.db
cache:
  driver: none
rate_limit:
  capacity: 3
  window: 1m
`), 0o600))

	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, repository.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/hecs-test.db", cfg.Storage.SQLitePath)
	assert.Equal(t, repository.DriverNone, cfg.Storage.CacheDriver)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	// environment wins over the file
	assert.Equal(t, 7, cfg.RateLimit.Capacity)
}

func TestInit_DatabaseURLFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/hecs")

	v := viper.New()
	require.NoError(t, Init(v, ""))
	assert.Equal(t, "postgres://localhost/hecs", v.GetString("storage.database_url"))
}

func TestValidate(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	t.Setenv("PORT", "")
	base, err := Load(v)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero body limit", func(c *Config) { c.Server.BodyLimit = 0 }},
		{"zero capacity", func(c *Config) { c.RateLimit.Capacity = 0 }},
		{"zero window", func(c *Config) { c.RateLimit.Window = 0 }},
		{"unknown storage", func(c *Config) { c.Storage.Driver = "mongodb" }},
		{"unknown cache", func(c *Config) { c.Storage.CacheDriver = "memcached" }},
		{"postgres without url", func(c *Config) { c.Storage.Driver = repository.DriverPostgres }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
