package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"infinity_api/src/model"
)

const (
	// DefaultCacheTTL applies when the configured TTL is zero.
	DefaultCacheTTL = 10 * time.Minute

	// TombstoneTTL bounds how long an invalidated key refuses fills. It must
	// outlive any single store read.
	TombstoneTTL = time.Minute
)

var tombstone = []byte("\x00deleted")

// Cache is a read-through cache in front of the document store. Get reports
// a miss with false and a nil error.
//
// Fill stores value only when key holds nothing, and reports whether it did.
// Invalidate replaces key with a tombstone that Get reports as a miss and
// Fill never overwrites, so a read that raced a delete cannot write the
// deleted document back.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Fill(ctx context.Context, key string, value any) (bool, error)
	Invalidate(ctx context.Context, key string) error
	Close() error
}

// IsTombstone reports whether data is the marker left by Invalidate.
func IsTombstone(data []byte) bool {
	return bytes.Equal(data, tombstone)
}

// CacheKey builds the cache key of a document.
func CacheKey(collection, id string) string {
	return collection + ":" + id
}

// RedisCache stores JSON encoded documents in Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache parses cfg.URL, connects and pings Redis.
func NewRedisCache(ctx context.Context, cfg model.RedisConfig) (*RedisCache, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCacheWithClient(client, cfg.TTL), nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get cached document: %w", err)
	}
	if IsTombstone(data) {
		return false, nil
	}

	if err := sonic.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached document: %w", err)
	}
	return true, nil
}

func (r *RedisCache) Fill(ctx context.Context, key string, value any) (bool, error) {
	data, err := sonic.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal document: %w", err)
	}

	stored, err := r.client.SetNX(ctx, key, data, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to cache document: %w", err)
	}
	return stored, nil
}

func (r *RedisCache) Invalidate(ctx context.Context, key string) error {
	if err := r.client.Set(ctx, key, tombstone, TombstoneTTL).Err(); err != nil {
		return fmt.Errorf("failed to evict cached document: %w", err)
	}
	return nil
}

// TTL returns the remaining lifetime of key.
func (r *RedisCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get TTL: %w", err)
	}
	return ttl, nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error)  { return false, nil }
func (NopCache) Fill(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Invalidate(context.Context, string) error        { return nil }
func (NopCache) Close() error                                    { return nil }
