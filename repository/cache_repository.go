package repository

import "context"

type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (string, bool) { return "", false }

func (NoopCache) Set(context.Context, string, string) error { return nil }
