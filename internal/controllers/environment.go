package controllers

import (
	"context"

	"infinity_api/internal/models"
	"infinity_api/internal/views"
)

// EnvironmentRepository persists environments.
type EnvironmentRepository interface {
	Create(ctx context.Context, env models.Env) (string, error)
	GetByID(ctx context.Context, id string) (models.Env, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// EnvironmentSimulator turns environments into simulation results.
type EnvironmentSimulator interface {
	Summary(ctx context.Context, env models.Env) (views.EnvSummary, error)
	Encode(ctx context.Context, env models.Env) (string, error)
}

type EnvController struct {
	controller
	repo EnvironmentRepository
	sim  EnvironmentSimulator
}

func NewEnvController(repo EnvironmentRepository, sim EnvironmentSimulator) *EnvController {
	return &EnvController{
		controller: newController("environment", "Environment not found"),
		repo:       repo,
		sim:        sim,
	}
}

func (c *EnvController) CreateEnv(ctx context.Context, env models.Env) (views.EnvCreated, error) {
	op := c.operation("create_env", "create", "in")
	id, err := c.repo.Create(ctx, env)
	defer op.done("env_id", id)
	if err != nil {
		return views.EnvCreated{}, op.fail(err)
	}
	return views.NewEnvCreated(id), nil
}

func (c *EnvController) GetEnvByID(ctx context.Context, id string) (models.Env, error) {
	op := c.operation("get_env_by_id", "read", "from")
	defer op.done("env_id", id)

	env, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return models.Env{}, op.fail(err)
	}
	return env, nil
}

// GetRocketpyEnvAsJSONPickle returns the serialized simulation environment.
func (c *EnvController) GetRocketpyEnvAsJSONPickle(ctx context.Context, id string) (views.EnvPickle, error) {
	op := c.operation("get_rocketpy_env_as_jsonpickle", "read", "from")
	defer op.done("env_id", id)

	env, err := c.GetEnvByID(ctx, id)
	if err != nil {
		return views.EnvPickle{}, op.fail(err)
	}
	encoded, err := c.sim.Encode(ctx, env)
	if err != nil {
		return views.EnvPickle{}, op.fail(err)
	}
	return views.EnvPickle{JSONPickleRocketpyEnv: encoded}, nil
}

// UpdateEnvByID stores env as a new record and removes the record at id.
func (c *EnvController) UpdateEnvByID(ctx context.Context, id string, env models.Env) (views.EnvUpdated, error) {
	op := c.operation("update_env", "update", "from")
	defer op.done("env_id", id)

	if _, err := c.repo.GetByID(ctx, id); err != nil {
		return views.EnvUpdated{}, op.fail(err)
	}
	newID, err := c.repo.Create(ctx, env)
	if err != nil {
		return views.EnvUpdated{}, op.fail(err)
	}
	if _, err := c.repo.DeleteByID(ctx, id); err != nil {
		return views.EnvUpdated{}, op.fail(err)
	}
	return views.NewEnvUpdated(newID), nil
}

func (c *EnvController) DeleteEnvByID(ctx context.Context, id string) (views.EnvDeleted, error) {
	op := c.operation("delete_env", "delete", "from")
	defer op.done("env_id", id)

	n, err := c.repo.DeleteByID(ctx, id)
	if err != nil {
		return views.EnvDeleted{}, op.fail(err)
	}
	if n == 0 {
		return views.EnvDeleted{}, op.notFoundError()
	}
	return views.NewEnvDeleted(id), nil
}

func (c *EnvController) SimulateEnv(ctx context.Context, id string) (views.EnvSummary, error) {
	op := c.operation("simulate", "simulate", "from")
	defer op.done("env_id", id)

	env, err := c.GetEnvByID(ctx, id)
	if err != nil {
		return nil, op.fail(err)
	}
	summary, err := c.sim.Summary(ctx, env)
	if err != nil {
		return nil, op.fail(err)
	}
	return summary, nil
}
