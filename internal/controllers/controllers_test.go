package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinity_api/internal/models"
	"infinity_api/internal/repositories"
	"infinity_api/internal/services"
	"infinity_api/internal/simulation"
	"infinity_api/internal/storage"
)

// downStore fails every operation like an unreachable database.
type downStore struct{}

func (downStore) InsertOne(context.Context, string, any) error {
	return &storage.Error{Op: "insert", Err: errors.New("connection refused")}
}

func (downStore) FindOne(context.Context, string, string, string, any) error {
	return &storage.Error{Op: "find", Err: errors.New("connection refused")}
}

func (downStore) DeleteOne(context.Context, string, string, string) (int64, error) {
	return 0, &storage.Error{Op: "delete", Err: errors.New("connection refused")}
}

func (downStore) Ping(context.Context) error  { return errors.New("connection refused") }
func (downStore) Close(context.Context) error { return nil }

type brokenEngine struct{}

func (brokenEngine) Summarize(context.Context, simulation.Object) (map[string]any, error) {
	return nil, errors.New("integration step diverged")
}

func (brokenEngine) Encode(context.Context, simulation.Object) (string, error) {
	return "", errors.New("object not serializable")
}

func requireHTTPError(t *testing.T, err error, status int, detail string) {
	t.Helper()
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, detail, httpErr.Detail)
}

func newEnvController(store storage.DocumentStore, engine simulation.Engine) *EnvController {
	return NewEnvController(
		repositories.NewEnvironmentRepository(store, nil),
		services.NewEnvironmentService(engine),
	)
}

func TestEnvControllerLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newEnvController(storage.NewMemoryStore(), simulation.NewLocal())

	created, err := c.CreateEnv(ctx, models.DefaultEnv())
	require.NoError(t, err)
	assert.Equal(t, "Environment successfully created", created.Message)

	env, err := c.GetEnvByID(ctx, created.EnvID)
	require.NoError(t, err)
	assert.Equal(t, 1400, env.Elevation)

	summary, err := c.SimulateEnv(ctx, created.EnvID)
	require.NoError(t, err)
	assert.Equal(t, 1400.0, summary["elevation"])

	pickle, err := c.GetRocketpyEnvAsJSONPickle(ctx, created.EnvID)
	require.NoError(t, err)
	assert.Contains(t, pickle.JSONPickleRocketpyEnv, `"py/object":"environment"`)

	changed := env
	changed.Elevation = 10
	updated, err := c.UpdateEnvByID(ctx, created.EnvID, changed)
	require.NoError(t, err)
	assert.NotEqual(t, created.EnvID, updated.NewEnvID)

	_, err = c.GetEnvByID(ctx, created.EnvID)
	requireHTTPError(t, err, http.StatusNotFound, "Environment not found")

	deleted, err := c.DeleteEnvByID(ctx, updated.NewEnvID)
	require.NoError(t, err)
	assert.Equal(t, updated.NewEnvID, deleted.DeletedEnvID)

	_, err = c.DeleteEnvByID(ctx, updated.NewEnvID)
	requireHTTPError(t, err, http.StatusNotFound, "Environment not found")
}

func TestEnvControllerUpdateWithSameContentKeepsRecord(t *testing.T) {
	ctx := context.Background()
	c := newEnvController(storage.NewMemoryStore(), simulation.NewLocal())

	env := models.DefaultEnv()
	created, err := c.CreateEnv(ctx, env)
	require.NoError(t, err)

	updated, err := c.UpdateEnvByID(ctx, created.EnvID, env)
	require.NoError(t, err)
	assert.Equal(t, created.EnvID, updated.NewEnvID)

	_, err = c.GetEnvByID(ctx, created.EnvID)
	assert.NoError(t, err)
}

func TestEnvControllerDatabaseDown(t *testing.T) {
	ctx := context.Background()
	c := newEnvController(downStore{}, simulation.NewLocal())

	_, err := c.CreateEnv(ctx, models.DefaultEnv())
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to create environment in db")

	_, err = c.GetEnvByID(ctx, "any")
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to read environment from db")

	_, err = c.UpdateEnvByID(ctx, "any", models.DefaultEnv())
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to update environment from db")

	_, err = c.DeleteEnvByID(ctx, "any")
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to delete environment from db")

	_, err = c.SimulateEnv(ctx, "any")
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to read environment from db")
}

func TestEnvControllerEngineFailure(t *testing.T) {
	ctx := context.Background()
	c := newEnvController(storage.NewMemoryStore(), brokenEngine{})

	created, err := c.CreateEnv(ctx, models.DefaultEnv())
	require.NoError(t, err)

	_, err = c.SimulateEnv(ctx, created.EnvID)
	requireHTTPError(t, err, http.StatusInternalServerError,
		"Failed to simulate environment: failed to summarize environment: integration step diverged")

	_, err = c.GetRocketpyEnvAsJSONPickle(ctx, created.EnvID)
	requireHTTPError(t, err, http.StatusInternalServerError,
		"Failed to read environment: object not serializable")
}

func newRocketController(store storage.DocumentStore, engine simulation.Engine) *RocketController {
	return NewRocketController(
		repositories.NewRocketRepository(store, nil),
		services.NewRocketService(engine),
	)
}

func TestRocketControllerLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newRocketController(storage.NewMemoryStore(), simulation.NewLocal())

	created, err := c.CreateRocket(ctx, models.DefaultRocket(), models.RocketCalisto, models.MotorSolid)
	require.NoError(t, err)
	assert.Equal(t, "Rocket successfully created", created.Message)

	view, err := c.GetRocketByID(ctx, created.RocketID)
	require.NoError(t, err)
	assert.Equal(t, models.RocketCalisto, view.RocketOption)
	assert.Equal(t, models.MotorSolid, view.Motor.MotorKind)

	summary, err := c.SimulateRocket(ctx, created.RocketID)
	require.NoError(t, err)
	assert.Equal(t, "Cesaroni_M1670", summary["thrust_source"])

	updated, err := c.UpdateRocketByID(ctx, created.RocketID, models.DefaultRocket(), models.RocketCustom, models.MotorSolid)
	require.NoError(t, err)
	assert.NotEqual(t, created.RocketID, updated.NewRocketID)

	_, err = c.GetRocketByID(ctx, created.RocketID)
	requireHTTPError(t, err, http.StatusNotFound, "Rocket not found")

	_, err = c.UpdateRocketByID(ctx, "missing", models.DefaultRocket(), models.RocketCalisto, models.MotorSolid)
	requireHTTPError(t, err, http.StatusNotFound, "Rocket not found")
}

func TestRocketControllerInvalidMotorFailsSimulation(t *testing.T) {
	ctx := context.Background()
	c := newRocketController(storage.NewMemoryStore(), simulation.NewLocal())

	created, err := c.CreateRocket(ctx, models.DefaultRocket(), models.RocketCustom, models.MotorLiquid)
	require.NoError(t, err)

	_, err = c.SimulateRocket(ctx, created.RocketID)
	requireHTTPError(t, err, http.StatusInternalServerError,
		"Failed to simulate rocket: invalid motor: liquid motor requires at least one tank")
}

func newFlightController(store storage.DocumentStore, engine simulation.Engine) *FlightController {
	return NewFlightController(
		repositories.NewFlightRepository(store, nil),
		services.NewFlightService(engine),
	)
}

func TestFlightControllerLifecycle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	c := newFlightController(store, simulation.NewLocal())

	created, err := c.CreateFlight(ctx, models.DefaultFlight(), models.RocketCustom, models.MotorSolid)
	require.NoError(t, err)
	assert.Equal(t, "Flight successfully created", created.Message)

	view, err := c.GetFlightByID(ctx, created.FlightID)
	require.NoError(t, err)
	assert.Equal(t, models.RocketCustom, view.Rocket.RocketOption)

	env := models.DefaultEnv()
	env.Latitude = -23.5
	envUpdated, err := c.UpdateEnvByFlightID(ctx, created.FlightID, env)
	require.NoError(t, err)
	assert.Equal(t, "Flight successfully updated", envUpdated.Message)

	view, err = c.GetFlightByID(ctx, envUpdated.FlightID)
	require.NoError(t, err)
	assert.Equal(t, -23.5, view.Environment.Latitude)
	assert.Equal(t, models.RocketCustom, view.Rocket.RocketOption)

	rocket := models.DefaultRocket()
	rocket.Mass = 20
	rocketUpdated, err := c.UpdateRocketByFlightID(ctx, envUpdated.FlightID, rocket, models.RocketCalisto, models.MotorSolid)
	require.NoError(t, err)

	view, err = c.GetFlightByID(ctx, rocketUpdated.FlightID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, view.Rocket.Mass)
	assert.Equal(t, 1, store.Count(storage.FlightsCollection))

	summary, err := c.SimulateFlight(ctx, rocketUpdated.FlightID)
	require.NoError(t, err)
	assert.Equal(t, -23.5, summary["latitude"])

	pickle, err := c.GetRocketpyFlightAsJSONPickle(ctx, rocketUpdated.FlightID)
	require.NoError(t, err)
	assert.Contains(t, pickle.JSONPickleRocketpyFlight, `"py/object":"flight"`)

	deleted, err := c.DeleteFlightByID(ctx, rocketUpdated.FlightID)
	require.NoError(t, err)
	assert.Equal(t, "Flight successfully deleted", deleted.Message)

	_, err = c.SimulateFlight(ctx, rocketUpdated.FlightID)
	requireHTTPError(t, err, http.StatusNotFound, "Flight not found")
}

func TestFlightControllerDatabaseDown(t *testing.T) {
	ctx := context.Background()
	c := newFlightController(downStore{}, simulation.NewLocal())

	_, err := c.CreateFlight(ctx, models.DefaultFlight(), models.RocketCalisto, models.MotorSolid)
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to create flight in db")

	_, err = c.UpdateEnvByFlightID(ctx, "any", models.DefaultEnv())
	requireHTTPError(t, err, http.StatusServiceUnavailable, "Failed to update flight from db")
}

func TestHTTPErrorPassesThrough(t *testing.T) {
	op := newController("rocket", "Rocket not found").operation("simulate", "simulate", "from")
	original := &HTTPError{Status: http.StatusTeapot, Detail: "short and stout"}

	err := op.fail(original)
	assert.Same(t, original, err)
}
