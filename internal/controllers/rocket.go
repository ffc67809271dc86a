package controllers

import (
	"context"

	"infinity_api/internal/models"
	"infinity_api/internal/views"
)

type RocketRepository interface {
	Create(ctx context.Context, rocket models.Rocket, option models.RocketOption, kind models.MotorKind) (string, error)
	GetByID(ctx context.Context, id string) (models.Rocket, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type RocketSimulator interface {
	Summary(ctx context.Context, rocket models.Rocket) (views.RocketSummary, error)
	Encode(ctx context.Context, rocket models.Rocket) (string, error)
}

type RocketController struct {
	controller
	repo RocketRepository
	sim  RocketSimulator
}

func NewRocketController(repo RocketRepository, sim RocketSimulator) *RocketController {
	return &RocketController{
		controller: newController("rocket", "Rocket not found"),
		repo:       repo,
		sim:        sim,
	}
}

// CreateRocket stores rocket with the given option and motor kind.
func (c *RocketController) CreateRocket(ctx context.Context, rocket models.Rocket, option models.RocketOption, kind models.MotorKind) (views.RocketCreated, error) {
	op := c.operation("create_rocket", "create", "in")
	id, err := c.repo.Create(ctx, rocket, option, kind)
	defer op.done("rocket_id", id)
	if err != nil {
		return views.RocketCreated{}, op.fail(err)
	}
	return views.NewRocketCreated(id), nil
}

func (c *RocketController) getRocket(ctx context.Context, op operation, id string) (models.Rocket, error) {
	rocket, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return models.Rocket{}, op.fail(err)
	}
	return rocket, nil
}

func (c *RocketController) GetRocketByID(ctx context.Context, id string) (views.RocketView, error) {
	op := c.operation("get_rocket_by_id", "read", "from")
	defer op.done("rocket_id", id)

	rocket, err := c.getRocket(ctx, op, id)
	if err != nil {
		return views.RocketView{}, err
	}
	return views.NewRocketView(rocket), nil
}

func (c *RocketController) GetRocketpyRocketAsJSONPickle(ctx context.Context, id string) (views.RocketPickle, error) {
	op := c.operation("get_rocketpy_rocket_as_jsonpickle", "read", "from")
	defer op.done("rocket_id", id)

	rocket, err := c.getRocket(ctx, op, id)
	if err != nil {
		return views.RocketPickle{}, err
	}
	encoded, err := c.sim.Encode(ctx, rocket)
	if err != nil {
		return views.RocketPickle{}, op.fail(err)
	}
	return views.RocketPickle{JSONPickleRocketpyRocket: encoded}, nil
}

func (c *RocketController) UpdateRocketByID(ctx context.Context, id string, rocket models.Rocket, option models.RocketOption, kind models.MotorKind) (views.RocketUpdated, error) {
	op := c.operation("update_rocket", "update", "from")
	defer op.done("rocket_id", id)

	if _, err := c.getRocket(ctx, op, id); err != nil {
		return views.RocketUpdated{}, err
	}
	newID, err := c.repo.Create(ctx, rocket, option, kind)
	if err != nil {
		return views.RocketUpdated{}, op.fail(err)
	}
	if _, err := c.repo.DeleteByID(ctx, id); err != nil {
		return views.RocketUpdated{}, op.fail(err)
	}
	return views.NewRocketUpdated(newID), nil
}

func (c *RocketController) DeleteRocketByID(ctx context.Context, id string) (views.RocketDeleted, error) {
	op := c.operation("delete_rocket", "delete", "from")
	defer op.done("rocket_id", id)

	n, err := c.repo.DeleteByID(ctx, id)
	if err != nil {
		return views.RocketDeleted{}, op.fail(err)
	}
	if n == 0 {
		return views.RocketDeleted{}, op.notFoundError()
	}
	return views.NewRocketDeleted(id), nil
}

func (c *RocketController) SimulateRocket(ctx context.Context, id string) (views.RocketSummary, error) {
	op := c.operation("simulate", "simulate", "from")
	defer op.done("rocket_id", id)

	rocket, err := c.getRocket(ctx, op, id)
	if err != nil {
		return nil, err
	}
	summary, err := c.sim.Summary(ctx, rocket)
	if err != nil {
		return nil, op.fail(err)
	}
	return summary, nil
}
