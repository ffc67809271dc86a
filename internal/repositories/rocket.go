package repositories

import (
	"context"

	"infinity_api/internal/models"
	"infinity_api/internal/storage"
)

type rocketDocument struct {
	RocketID      string `json:"rocket_id" bson:"rocket_id"`
	models.Rocket `bson:",inline"`
}

// RocketRepository stores rockets in the rockets collection.
type RocketRepository struct {
	repository
}

func NewRocketRepository(store storage.DocumentStore, cache storage.Cache) *RocketRepository {
	return &RocketRepository{newRepository(store, cache, storage.RocketsCollection, "rocket_id")}
}

// Create stamps the rocket option and motor kind onto rocket, stores it under
// its content id and returns that id.
func (r *RocketRepository) Create(ctx context.Context, rocket models.Rocket, option models.RocketOption, kind models.MotorKind) (string, error) {
	rocket = rocket.WithOptions(option, kind)
	id, err := rocket.ID()
	if err != nil {
		return "", err
	}
	if err := r.insert(ctx, id, rocketDocument{RocketID: id, Rocket: rocket}); err != nil {
		return "", err
	}
	return id, nil
}

func (r *RocketRepository) GetByID(ctx context.Context, id string) (models.Rocket, error) {
	var doc rocketDocument
	if err := r.find(ctx, id, &doc); err != nil {
		return models.Rocket{}, err
	}
	return doc.Rocket, nil
}

func (r *RocketRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id)
}
