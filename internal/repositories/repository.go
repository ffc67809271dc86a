package repositories

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"infinity_api/internal/storage"
	"infinity_api/src/logger"
)

// repository wraps one collection of the document store behind an optional
// read-through cache. Cache failures are logged and never returned. Deletes
// invalidate the cache key even when nothing was removed.
type repository struct {
	store      storage.DocumentStore
	cache      storage.Cache
	collection string
	key        string
	log        zerolog.Logger
}

func newRepository(store storage.DocumentStore, cache storage.Cache, collection, key string) repository {
	if cache == nil {
		cache = storage.NopCache{}
	}
	return repository{
		store:      store,
		cache:      cache,
		collection: collection,
		key:        key,
		log:        logger.With("repositories." + collection),
	}
}

func (r *repository) insert(ctx context.Context, id string, doc any) error {
	if err := r.store.InsertOne(ctx, r.collection, doc); err != nil {
		return fmt.Errorf("failed to insert %s %s: %w", r.key, id, err)
	}
	r.log.Debug().Str(r.key, id).Msg("document created")
	return nil
}

func (r *repository) find(ctx context.Context, id string, out any) error {
	cacheKey := storage.CacheKey(r.collection, id)
	hit, err := r.cache.Get(ctx, cacheKey, out)
	if err != nil {
		r.log.Warn().Err(err).Str(r.key, id).Msg("cache read failed")
	}
	if hit {
		r.log.Debug().Str(r.key, id).Msg("cache hit")
		return nil
	}

	if err := r.store.FindOne(ctx, r.collection, r.key, id, out); err != nil {
		return fmt.Errorf("failed to read %s %s: %w", r.key, id, err)
	}

	stored, err := r.cache.Fill(ctx, cacheKey, out)
	if err != nil {
		r.log.Warn().Err(err).Str(r.key, id).Msg("cache write failed")
	} else if !stored {
		r.log.Debug().Str(r.key, id).Msg("cache fill skipped")
	}
	return nil
}

func (r *repository) delete(ctx context.Context, id string) (int64, error) {
	n, err := r.store.DeleteOne(ctx, r.collection, r.key, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s %s: %w", r.key, id, err)
	}
	if err := r.cache.Invalidate(ctx, storage.CacheKey(r.collection, id)); err != nil {
		r.log.Warn().Err(err).Str(r.key, id).Msg("cache eviction failed")
	}
	r.log.Debug().Str(r.key, id).Int64("deleted", n).Msg("document deleted")
	return n, nil
}
