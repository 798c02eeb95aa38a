// Package config loads server settings from defaults, an optional config
// file, a .env file and HECS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"hecs-calculator/repository"
)

const EnvPrefix = "HECS"

type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Storage   repository.Options
	Logging   LoggingConfig
}

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	StaticDir       string
	BodyLimit       int64
}

type RateLimitConfig struct {
	Capacity int
	Window   time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers every key with its default value. PORT, when
// present, replaces the default listen address only, so a flag, an env var
// or the config file still take precedence.
func SetDefaults(v *viper.Viper) {
	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	v.SetDefault("server.addr", addr)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("server.body_limit", 10*1024)

	v.SetDefault("rate_limit.capacity", 100)
	v.SetDefault("rate_limit.window", 15*time.Minute)

	v.SetDefault("storage.driver", repository.DriverMemory)
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.sqlite_path", "data/hecs.db")

	v.SetDefault("cache.driver", repository.DriverMemory)
	v.SetDefault("cache.ttl", time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init prepares v: .env file, defaults, environment binding and the
// optional config file. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Variables used by the previous deployment
	_ = v.BindEnv("storage.database_url", EnvPrefix+"_STORAGE_DATABASE_URL", "DATABASE_URL")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Load reads a Config out of an initialized viper instance.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			StaticDir:       v.GetString("server.static_dir"),
			BodyLimit:       v.GetInt64("server.body_limit"),
		},
		RateLimit: RateLimitConfig{
			Capacity: v.GetInt("rate_limit.capacity"),
			Window:   v.GetDuration("rate_limit.window"),
		},
		Storage: repository.Options{
			Driver:      v.GetString("storage.driver"),
			RedisAddr:   v.GetString("storage.redis_addr"),
			DatabaseURL: v.GetString("storage.database_url"),
			SQLitePath:  v.GetString("storage.sqlite_path"),
			CacheDriver: v.GetString("cache.driver"),
			CacheTTL:    v.GetDuration("cache.ttl"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.BodyLimit <= 0 {
		return fmt.Errorf("server.body_limit must be positive, got %d", c.Server.BodyLimit)
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window)
	}
	switch c.Storage.Driver {
	case repository.DriverMemory, repository.DriverRedis, repository.DriverPostgres, repository.DriverSQLite:
	default:
		return fmt.Errorf("%w: storage.driver %q", repository.ErrUnknownDriver, c.Storage.Driver)
	}
	switch c.Storage.CacheDriver {
	case repository.DriverNone, repository.DriverMemory, repository.DriverRedis:
	default:
		return fmt.Errorf("%w: cache.driver %q", repository.ErrUnknownDriver, c.Storage.CacheDriver)
	}
	if c.Storage.Driver == repository.DriverPostgres && c.Storage.DatabaseURL == "" {
		return errors.New("storage.database_url is required for the postgres driver")
	}
	return nil
}
