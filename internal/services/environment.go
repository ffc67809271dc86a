package services

import (
	"context"
	"fmt"

	"infinity_api/internal/models"
	"infinity_api/internal/simulation"
	"infinity_api/internal/views"
)

const (
	defaultDatum             = "SIRGAS2000"
	defaultTimezone          = "UTC"
	defaultMaxExpectedHeight = 80000
)

// FromEnvModel builds the simulation environment for env.
func FromEnvModel(env models.Env) (*simulation.Environment, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	out := &simulation.Environment{
		Latitude:             env.Latitude,
		Longitude:            env.Longitude,
		Elevation:            env.Elevation,
		Date:                 env.Date.UTC(),
		Datum:                defaultDatum,
		Timezone:             defaultTimezone,
		MaxExpectedHeight:    defaultMaxExpectedHeight,
		AtmosphericModelType: string(env.AtmosphericModelType),
	}
	if env.AtmosphericModelType != models.AtmosphereStandard {
		out.AtmosphericModelFile = env.AtmosphericModelFile
	}
	return out, nil
}

type EnvironmentService struct {
	engine simulation.Engine
}

func NewEnvironmentService(engine simulation.Engine) *EnvironmentService {
	return &EnvironmentService{engine: engine}
}

// Summary asks the engine for the attributes of env.
func (s *EnvironmentService) Summary(ctx context.Context, env models.Env) (views.EnvSummary, error) {
	obj, err := FromEnvModel(env)
	if err != nil {
		return nil, err
	}
	attrs, err := s.engine.Summarize(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize environment: %w", err)
	}
	return views.NewEnvSummary(attrs), nil
}

// Encode returns the serialized simulation environment.
func (s *EnvironmentService) Encode(ctx context.Context, env models.Env) (string, error) {
	obj, err := FromEnvModel(env)
	if err != nil {
		return "", err
	}
	return s.engine.Encode(ctx, obj)
}
