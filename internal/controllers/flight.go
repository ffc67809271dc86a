package controllers

import (
	"context"

	"infinity_api/internal/models"
	"infinity_api/internal/views"
)

type FlightRepository interface {
	Create(ctx context.Context, flight models.Flight, option models.RocketOption, kind models.MotorKind) (string, error)
	GetByID(ctx context.Context, id string) (models.Flight, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type FlightSimulator interface {
	Summary(ctx context.Context, flight models.Flight) (views.FlightSummary, error)
	Encode(ctx context.Context, flight models.Flight) (string, error)
}

type FlightController struct {
	controller
	repo FlightRepository
	sim  FlightSimulator
}

func NewFlightController(repo FlightRepository, sim FlightSimulator) *FlightController {
	return &FlightController{
		controller: newController("flight", "Flight not found"),
		repo:       repo,
		sim:        sim,
	}
}

func (c *FlightController) CreateFlight(ctx context.Context, flight models.Flight, option models.RocketOption, kind models.MotorKind) (views.FlightCreated, error) {
	op := c.operation("create_flight", "create", "in")
	id, err := c.repo.Create(ctx, flight, option, kind)
	defer op.done("flight_id", id)
	if err != nil {
		return views.FlightCreated{}, op.fail(err)
	}
	return views.NewFlightCreated(id), nil
}

func (c *FlightController) getFlight(ctx context.Context, op operation, id string) (models.Flight, error) {
	flight, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return models.Flight{}, op.fail(err)
	}
	return flight, nil
}

func (c *FlightController) GetFlightByID(ctx context.Context, id string) (views.FlightView, error) {
	op := c.operation("get_flight_by_id", "read", "from")
	defer op.done("flight_id", id)

	flight, err := c.getFlight(ctx, op, id)
	if err != nil {
		return views.FlightView{}, err
	}
	return views.NewFlightView(flight), nil
}

func (c *FlightController) GetRocketpyFlightAsJSONPickle(ctx context.Context, id string) (views.FlightPickle, error) {
	op := c.operation("get_rocketpy_flight_as_jsonpickle", "read", "from")
	defer op.done("flight_id", id)

	flight, err := c.getFlight(ctx, op, id)
	if err != nil {
		return views.FlightPickle{}, err
	}
	encoded, err := c.sim.Encode(ctx, flight)
	if err != nil {
		return views.FlightPickle{}, op.fail(err)
	}
	return views.FlightPickle{JSONPickleRocketpyFlight: encoded}, nil
}

// replace stores flight as a new record and removes the record at id.
func (c *FlightController) replace(ctx context.Context, op operation, id string, flight models.Flight, option models.RocketOption, kind models.MotorKind) (views.FlightUpdated, error) {
	newID, err := c.repo.Create(ctx, flight, option, kind)
	if err != nil {
		return views.FlightUpdated{}, op.fail(err)
	}
	if _, err := c.repo.DeleteByID(ctx, id); err != nil {
		return views.FlightUpdated{}, op.fail(err)
	}
	return views.NewFlightUpdated(newID), nil
}

func (c *FlightController) UpdateFlightByID(ctx context.Context, id string, flight models.Flight, option models.RocketOption, kind models.MotorKind) (views.FlightUpdated, error) {
	op := c.operation("update_flight", "update", "from")
	defer op.done("flight_id", id)

	if _, err := c.getFlight(ctx, op, id); err != nil {
		return views.FlightUpdated{}, err
	}
	return c.replace(ctx, op, id, flight, option, kind)
}

// UpdateEnvByFlightID swaps the environment of the flight at id. The
// embedded rocket keeps its stored options.
func (c *FlightController) UpdateEnvByFlightID(ctx context.Context, id string, env models.Env) (views.FlightUpdated, error) {
	op := c.operation("update_env", "update", "from")
	defer op.done("flight_id", id)

	flight, err := c.getFlight(ctx, op, id)
	if err != nil {
		return views.FlightUpdated{}, err
	}
	flight.Environment = env
	option, kind := storedOptions(flight.Rocket)
	return c.replace(ctx, op, id, flight, option, kind)
}

// UpdateRocketByFlightID swaps the rocket of the flight at id.
func (c *FlightController) UpdateRocketByFlightID(ctx context.Context, id string, rocket models.Rocket, option models.RocketOption, kind models.MotorKind) (views.FlightUpdated, error) {
	op := c.operation("update_rocket", "update", "from")
	defer op.done("flight_id", id)

	flight, err := c.getFlight(ctx, op, id)
	if err != nil {
		return views.FlightUpdated{}, err
	}
	flight.Rocket = rocket
	return c.replace(ctx, op, id, flight, option, kind)
}

func (c *FlightController) DeleteFlightByID(ctx context.Context, id string) (views.FlightDeleted, error) {
	op := c.operation("delete_flight", "delete", "from")
	defer op.done("flight_id", id)

	n, err := c.repo.DeleteByID(ctx, id)
	if err != nil {
		return views.FlightDeleted{}, op.fail(err)
	}
	if n == 0 {
		return views.FlightDeleted{}, op.notFoundError()
	}
	return views.NewFlightDeleted(id), nil
}

func (c *FlightController) SimulateFlight(ctx context.Context, id string) (views.FlightSummary, error) {
	op := c.operation("simulate", "simulate", "from")
	defer op.done("flight_id", id)

	flight, err := c.getFlight(ctx, op, id)
	if err != nil {
		return nil, err
	}
	summary, err := c.sim.Summary(ctx, flight)
	if err != nil {
		return nil, op.fail(err)
	}
	return summary, nil
}

func storedOptions(r models.Rocket) (models.RocketOption, models.MotorKind) {
	option, kind := r.RocketOption, r.Motor.MotorKind
	if option == "" {
		option = models.RocketCalisto
	}
	if kind == "" {
		kind = models.MotorSolid
	}
	return option, kind
}
