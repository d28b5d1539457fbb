// Package rediscache provides a Redis-backed fas.Cache, for sharing resolved
// usernames between processes.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fedora-infra/fasshim/fas"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// prefix string for all the Redis keys this cache uses
var redisCachePrefix string = "fas/"

// RedisCache stores resolved usernames in Redis, with an in-process TinyLFU
// cache (provided by the redis client library) in front for hot keys.
//
// Unlike the default in-process backend, entries expire after TTL, so
// previously resolved identities can miss again; the resolver re-searches on
// such misses. Read failures degrade to a miss and write failures are logged
// and dropped, so Redis trouble never fails a lookup.
type RedisCache struct {
	TTL time.Duration

	entries *cache.Cache
}

var _ fas.Cache = (*RedisCache)(nil)

// Creates a Redis-backed cache for a CachedResolver.
//
// `redisURL` contains all the redis connection config options. `ttl` bounds
// the lifetime of each entry and must be positive. `lruSize` is the size of
// the in-process cache; 10000 is a reasonable default.
func NewRedisCache(redisURL string, ttl time.Duration, lruSize int) (*RedisCache, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("redis account cache requires a positive TTL")
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("could not configure redis account cache: %w", err)
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	if _, err := rdb.Ping(context.TODO()).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis account cache: %w", err)
	}
	entries := cache.New(&cache.Options{
		Redis:      rdb,
		LocalCache: cache.NewTinyLFU(lruSize, ttl),
	})
	return &RedisCache{
		TTL:     ttl,
		entries: entries,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	var value string
	err := c.entries.Get(ctx, redisCachePrefix+key, &value)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			cacheReadErrors.Inc()
			slog.Error("account cache read failed", "key", key, "err", err)
		}
		return "", false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value string) {
	err := c.entries.Set(&cache.Item{
		Ctx:   ctx,
		Key:   redisCachePrefix + key,
		Value: value,
		TTL:   c.TTL,
	})
	if err != nil {
		cacheWriteErrors.Inc()
		slog.Error("account cache write failed", "key", key, "err", err)
	}
}
