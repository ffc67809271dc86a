package services

import (
	"context"
	"fmt"

	"infinity_api/internal/models"
	"infinity_api/internal/simulation"
	"infinity_api/internal/views"
)

// FromFlightModel builds the simulation flight together with its
// environment and rocket.
func FromFlightModel(f models.Flight) (*simulation.Flight, error) {
	env, err := FromEnvModel(f.Environment)
	if err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	rocket, err := FromRocketModel(f.Rocket)
	if err != nil {
		return nil, fmt.Errorf("invalid rocket: %w", err)
	}
	f.Rocket = f.Rocket.WithOptions(rocket.RocketOption, rocket.Motor.MotorKind)
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &simulation.Flight{
		Environment:       env,
		Rocket:            rocket,
		Inclination:       f.Inclination,
		Heading:           f.Heading,
		RailLength:        f.RailLength,
		TerminateOnApogee: f.TerminateOnApogee,
		MaxTime:           f.MaxTime,
		MaxTimeStep:       f.MaxTimeStep,
		MinTimeStep:       f.MinTimeStep,
		Rtol:              f.Rtol,
		Atol:              f.Atol,
		TimeOvershoot:     f.TimeOvershoot,
	}, nil
}

type FlightService struct {
	engine simulation.Engine
}

func NewFlightService(engine simulation.Engine) *FlightService {
	return &FlightService{engine: engine}
}

func (s *FlightService) Summary(ctx context.Context, f models.Flight) (views.FlightSummary, error) {
	obj, err := FromFlightModel(f)
	if err != nil {
		return nil, err
	}
	attrs, err := s.engine.Summarize(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize flight: %w", err)
	}
	return views.NewFlightSummary(attrs), nil
}

func (s *FlightService) Encode(ctx context.Context, f models.Flight) (string, error) {
	obj, err := FromFlightModel(f)
	if err != nil {
		return "", err
	}
	return s.engine.Encode(ctx, obj)
}
