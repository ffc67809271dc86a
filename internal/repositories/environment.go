package repositories

import (
	"context"

	"infinity_api/internal/models"
	"infinity_api/internal/storage"
)

type envDocument struct {
	EnvID      string `json:"env_id" bson:"env_id"`
	models.Env `bson:",inline"`
}

// EnvironmentRepository stores environments in the environments collection.
type EnvironmentRepository struct {
	repository
}

func NewEnvironmentRepository(store storage.DocumentStore, cache storage.Cache) *EnvironmentRepository {
	return &EnvironmentRepository{newRepository(store, cache, storage.EnvironmentsCollection, "env_id")}
}

// Create stores env under its content id and returns that id.
func (r *EnvironmentRepository) Create(ctx context.Context, env models.Env) (string, error) {
	env = env.Normalized()
	id, err := env.ID()
	if err != nil {
		return "", err
	}
	if err := r.insert(ctx, id, envDocument{EnvID: id, Env: env}); err != nil {
		return "", err
	}
	return id, nil
}

// GetByID returns storage.ErrNotFound when no environment has the id.
func (r *EnvironmentRepository) GetByID(ctx context.Context, id string) (models.Env, error) {
	var doc envDocument
	if err := r.find(ctx, id, &doc); err != nil {
		return models.Env{}, err
	}
	return doc.Env, nil
}

// DeleteByID returns the number of environments removed.
func (r *EnvironmentRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id)
}
