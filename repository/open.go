package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"
)

type Options struct {
	Driver      string
	RedisAddr   string
	DatabaseURL string
	SQLitePath  string

	CacheDriver string
	CacheTTL    time.Duration
}

// Open builds the document store and projection cache selected by opts.
// When both use Redis they share one client, owned by the store.
func Open(ctx context.Context, opts Options) (Store, CacheRepository, error) {
	var client *redis.Client
	redisClient := func() (*redis.Client, error) {
		if client != nil {
			return client, nil
		}
		c := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := c.Ping(ctx).Err(); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %w", opts.RedisAddr, err)
		}
		client = c
		return client, nil
	}

	var store Store
	switch opts.Driver {
	case DriverMemory, "":
		store = NewMemoryStore()
	case DriverRedis:
		c, err := redisClient()
		if err != nil {
			return nil, nil, err
		}
		store = NewRedisStore(c)
	case DriverPostgres:
		s, err := OpenPostgresStore(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store = s
	case DriverSQLite:
		s, err := OpenSQLiteStore(opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store = s
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}

	var cache CacheRepository
	switch opts.CacheDriver {
	case DriverNone:
		cache = NoopCache{}
	case DriverMemory, "":
		cache = NewMemoryCache(opts.CacheTTL)
	case DriverRedis:
		c, err := redisClient()
		if err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		cache = NewRedisCache(c, opts.CacheTTL)
		if opts.Driver != DriverRedis {
			// the store does not own this client
			store = &closingStore{Store: store, extra: c}
		}
	default:
		_ = store.Close()
		return nil, nil, fmt.Errorf("%w: cache %q", ErrUnknownDriver, opts.CacheDriver)
	}

	return store, cache, nil
}

type closingStore struct {
	Store
	extra *redis.Client
}

func (s *closingStore) Close() error {
	err := s.Store.Close()
	if cerr := s.extra.Close(); err == nil {
		err = cerr
	}
	return err
}
