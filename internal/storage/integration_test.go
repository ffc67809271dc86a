//go:build integration

package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"infinity_api/src/model"
)

func startContainer(t *testing.T, image, port string, strategy wait.Strategy) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{port},
			WaitingFor:   strategy,
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, mapped.Port())
}

func TestMongoStoreIntegration(t *testing.T) {
	addr := startContainer(t, "mongo:7", "27017/tcp",
		wait.ForLog("Waiting for connections").WithStartupTimeout(2*time.Minute))

	ctx := context.Background()
	store, err := NewMongoStore(ctx, model.MongoConfig{
		URI:            "mongodb://" + addr,
		Database:       "rocketpy_test",
		ConnectTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.InsertOne(ctx, "docs", testDoc{DocID: "a", Name: "first", Count: 3}))

	var got testDoc
	require.NoError(t, store.FindOne(ctx, "docs", "doc_id", "a", &got))
	assert.Equal(t, "first", got.Name)

	n, err := store.DeleteOne(ctx, "docs", "doc_id", "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.ErrorIs(t, store.FindOne(ctx, "docs", "doc_id", "a", &got), ErrNotFound)

	require.NoError(t, store.InsertOne(ctx, "docs", map[string]any{"doc_id": "b", "count": "many"}))
	err = store.FindOne(ctx, "docs", "doc_id", "b", &got)
	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, IsDatabaseError(err))
}

func TestRedisCacheIntegration(t *testing.T) {
	addr := startContainer(t, "redis:7-alpine", "6379/tcp",
		wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute))

	ctx := context.Background()
	cache, err := NewRedisCache(ctx, model.RedisConfig{URL: "redis://" + addr, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	key := CacheKey("docs", "a")
	var got testDoc
	hit, err := cache.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	stored, err := cache.Fill(ctx, key, map[string]any{"DocID": "a", "Name": "cached"})
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = cache.Fill(ctx, key, map[string]any{"DocID": "a", "Name": "second"})
	require.NoError(t, err)
	assert.False(t, stored)

	hit, err = cache.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "cached", got.Name)

	ttl, err := cache.TTL(ctx, key)
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Invalidate(ctx, key))
	hit, err = cache.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	stored, err = cache.Fill(ctx, key, map[string]any{"DocID": "a", "Name": "stale"})
	require.NoError(t, err)
	assert.False(t, stored)

	ttl, err = cache.TTL(ctx, key)
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, TombstoneTTL)
}
