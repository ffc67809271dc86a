package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinity_api/internal/models"
	"infinity_api/internal/storage"
)

// countingStore records how often the store is read.
type countingStore struct {
	*storage.MemoryStore
	finds int
}

func (s *countingStore) FindOne(ctx context.Context, collection, key, id string, out any) error {
	s.finds++
	return s.MemoryStore.FindOne(ctx, collection, key, id, out)
}

// mapCache keeps tombstones apart from entries; Fill refuses both.
type mapCache struct {
	mu         sync.Mutex
	entries    map[string][]byte
	tombstones map[string]bool
	fail       error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte), tombstones: make(map[string]bool)}
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return false, c.fail
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, sonic.Unmarshal(data, dest)
}

func (c *mapCache) Fill(_ context.Context, key string, value any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return false, c.fail
	}
	if _, ok := c.entries[key]; ok || c.tombstones[key] {
		return false, nil
	}
	data, err := sonic.Marshal(value)
	if err != nil {
		return false, err
	}
	c.entries[key] = data
	return true, nil
}

func (c *mapCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.tombstones[key] = true
	delete(c.entries, key)
	return nil
}

// cached reports whether key holds a document rather than nothing or a tombstone.
func (c *mapCache) cached(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *mapCache) Close() error { return nil }

// racingStore runs afterRead once, right after the store served a document
// and before the repository fills the cache.
type racingStore struct {
	*storage.MemoryStore
	afterRead func()
}

func (s *racingStore) FindOne(ctx context.Context, collection, key, id string, out any) error {
	err := s.MemoryStore.FindOne(ctx, collection, key, id, out)
	if hook := s.afterRead; hook != nil {
		s.afterRead = nil
		hook()
	}
	return err
}

type failingStore struct {
	storage.MemoryStore
}

var errDown = &storage.Error{Op: "insert", Err: errors.New("server selection timeout")}

func (*failingStore) InsertOne(context.Context, string, any) error { return errDown }

func TestEnvironmentRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewEnvironmentRepository(storage.NewMemoryStore(), nil)

	env := models.DefaultEnv()
	env.Latitude = 32.99
	env.Longitude = -106.97
	env.Date = time.Date(2026, 6, 1, 12, 30, 0, 123456789, time.UTC)

	id, err := repo.Create(ctx, env)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, env.Normalized().Latitude, got.Latitude)
	assert.True(t, env.Normalized().Date.Equal(got.Date))

	gotID, err := got.ID()
	require.NoError(t, err)
	assert.Equal(t, id, gotID)

	n, err := repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRocketRepositoryStoresOptions(t *testing.T) {
	ctx := context.Background()
	repo := NewRocketRepository(storage.NewMemoryStore(), nil)

	rocket := models.DefaultRocket()
	rocket.Motor.Tanks = []models.MotorTank{{
		Name:     "oxidizer",
		TankKind: models.TankMassFlow,
		Geometry: []models.TankSection{{Start: -0.5, End: 0.5, Radius: 0.06}},
	}}

	id, err := repo.Create(ctx, rocket, models.RocketCustom, models.MotorHybrid)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.RocketCustom, got.RocketOption)
	assert.Equal(t, models.MotorHybrid, got.Motor.MotorKind)
	require.Len(t, got.Motor.Tanks, 1)
	assert.Equal(t, "oxidizer", got.Motor.Tanks[0].Name)
	assert.Equal(t, rocket.PowerOffDrag, got.PowerOffDrag)

	sameID, err := repo.Create(ctx, rocket, models.RocketCalisto, models.MotorHybrid)
	require.NoError(t, err)
	assert.NotEqual(t, id, sameID)
}

func TestFlightRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewFlightRepository(storage.NewMemoryStore(), nil)

	flight := models.DefaultFlight()
	id, err := repo.Create(ctx, flight, models.RocketCalisto, models.MotorSolid)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, flight.RailLength, got.RailLength)
	assert.Equal(t, flight.Rocket.Mass, got.Rocket.Mass)
	assert.Equal(t, models.AtmosphereStandard, got.Environment.AtmosphericModelType)

	n, err := repo.DeleteByID(ctx, "not-there")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReadThroughCache(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: storage.NewMemoryStore()}
	cache := newMapCache()
	repo := NewRocketRepository(store, cache)

	id, err := repo.Create(ctx, models.DefaultRocket(), models.RocketCalisto, models.MotorSolid)
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 1, store.finds)
	assert.Equal(t, first.Mass, second.Mass)
	assert.True(t, cache.cached(storage.CacheKey(storage.RocketsCollection, id)))

	_, err = repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, cache.cached(storage.CacheKey(storage.RocketsCollection, id)))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCacheFailuresDoNotFailReads(t *testing.T) {
	ctx := context.Background()
	cache := newMapCache()
	repo := NewEnvironmentRepository(storage.NewMemoryStore(), cache)

	id, err := repo.Create(ctx, models.DefaultEnv())
	require.NoError(t, err)

	cache.fail = errors.New("redis: connection refused")
	_, err = repo.GetByID(ctx, id)
	require.NoError(t, err)

	_, err = repo.DeleteByID(ctx, id)
	require.NoError(t, err)
}

func TestStoreFailureIsDatabaseError(t *testing.T) {
	repo := NewEnvironmentRepository(&failingStore{}, nil)

	_, err := repo.Create(context.Background(), models.DefaultEnv())
	require.Error(t, err)
	assert.True(t, storage.IsDatabaseError(err))
}

func TestDeleteDuringReadDoesNotRepopulateCache(t *testing.T) {
	ctx := context.Background()
	store := &racingStore{MemoryStore: storage.NewMemoryStore()}
	cache := newMapCache()
	repo := NewEnvironmentRepository(store, cache)

	id, err := repo.Create(ctx, models.DefaultEnv())
	require.NoError(t, err)

	store.afterRead = func() {
		n, err := repo.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	}

	_, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, cache.cached(storage.CacheKey(storage.EnvironmentsCollection, id)))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRecreatedDocumentIsReadFromStore(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: storage.NewMemoryStore()}
	repo := NewEnvironmentRepository(store, newMapCache())

	id, err := repo.Create(ctx, models.DefaultEnv())
	require.NoError(t, err)
	_, err = repo.DeleteByID(ctx, id)
	require.NoError(t, err)

	again, err := repo.Create(ctx, models.DefaultEnv())
	require.NoError(t, err)
	require.Equal(t, id, again)

	for range 2 {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultEnv().Latitude, got.Latitude)
	}
	assert.Equal(t, 2, store.finds)
}
