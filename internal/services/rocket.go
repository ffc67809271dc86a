package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"infinity_api/internal/models"
	"infinity_api/internal/simulation"
	"infinity_api/internal/views"
)

// FromRocketModel assembles the simulation rocket for r: the motor of its
// kind, its aerodynamic surfaces and its parachutes.
func FromRocketModel(r models.Rocket) (*simulation.Rocket, error) {
	if r.Motor.MotorKind == "" {
		r.Motor.MotorKind = models.MotorSolid
	}
	if r.RocketOption == "" {
		r.RocketOption = models.RocketCalisto
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	motor, err := fromMotorModel(r.Motor)
	if err != nil {
		return nil, err
	}
	parachutes, err := fromParachuteModels(r.Parachutes)
	if err != nil {
		return nil, err
	}

	return &simulation.Rocket{
		RocketOption:                r.RocketOption,
		Radius:                      r.Radius,
		Mass:                        r.Mass,
		Inertia:                     r.Inertia,
		CenterOfMassWithoutMotor:    r.CenterOfMassWithoutMotor,
		CoordinateSystemOrientation: r.CoordinateSystemOrientation,
		PowerOffDrag:                r.PowerOffDrag,
		PowerOnDrag:                 r.PowerOnDrag,
		Motor:                       motor,
		AerodynamicSurfaces:         surfaces(r),
		RailButtons:                 r.RailButtons,
		Parachutes:                  parachutes,
	}, nil
}

func fromMotorModel(m models.Motor) (simulation.Motor, error) {
	out := simulation.Motor{
		MotorKind:                   m.MotorKind,
		ThrustSource:                m.ThrustSource,
		BurnTime:                    m.BurnTime,
		NozzleRadius:                m.NozzleRadius,
		DryMass:                     m.DryMass,
		DryInertia:                  m.DryInertia,
		CenterOfDryMassPosition:     m.CenterOfDryMassPosition,
		InterpolationMethod:         m.InterpolationMethod,
		CoordinateSystemOrientation: m.CoordinateSystemOrientation,
	}

	if m.MotorKind == models.MotorSolid || m.MotorKind == models.MotorHybrid {
		out.ThroatRadius = m.ThroatRadius
		out.Grains = &simulation.Grains{
			Number:             m.GrainNumber,
			Density:            m.GrainDensity,
			OuterRadius:        m.GrainOuterRadius,
			InitialInnerRadius: m.GrainInitialInnerRadius,
			InitialHeight:      m.GrainInitialHeight,
			Separation:         m.GrainSeparation,
			CenterOfMass:       m.GrainsCenterOfMassPosition,
		}
	}

	if m.MotorKind == models.MotorLiquid || m.MotorKind == models.MotorHybrid {
		for _, tank := range m.Tanks {
			t, err := fromTankModel(tank)
			if err != nil {
				return simulation.Motor{}, err
			}
			out.Tanks = append(out.Tanks, t)
		}
	}
	return out, nil
}

// tankParams lists the parameters each tank kind is described by.
var tankParams = map[models.TankKind][]string{
	models.TankMassFlow: {
		"initial_liquid_mass", "initial_gas_mass",
		"liquid_mass_flow_rate_in", "gas_mass_flow_rate_in",
		"liquid_mass_flow_rate_out", "gas_mass_flow_rate_out",
	},
	models.TankMass:   {"liquid_mass", "gas_mass"},
	models.TankUllage: {"ullage"},
	models.TankLevel:  {"liquid_height"},
}

func fromTankModel(t models.MotorTank) (simulation.Tank, error) {
	required, ok := tankParams[t.TankKind]
	if !ok {
		return simulation.Tank{}, fmt.Errorf("tank %s has unknown tank_kind %q", t.Name, t.TankKind)
	}

	given := map[string]*float64{
		"initial_liquid_mass":       t.InitialLiquidMass,
		"initial_gas_mass":          t.InitialGasMass,
		"liquid_mass_flow_rate_in":  t.LiquidMassFlowRateIn,
		"gas_mass_flow_rate_in":     t.GasMassFlowRateIn,
		"liquid_mass_flow_rate_out": t.LiquidMassFlowRateOut,
		"gas_mass_flow_rate_out":    t.GasMassFlowRateOut,
		"ullage":                    t.Ullage,
		"liquid_height":             t.LiquidHeight,
		"liquid_mass":               t.LiquidMass,
		"gas_mass":                  t.GasMass,
	}
	params := make(map[string]float64, len(required))
	for _, name := range required {
		v := given[name]
		if v == nil {
			return simulation.Tank{}, fmt.Errorf("tank %s of kind %s requires %s", t.Name, t.TankKind, name)
		}
		params[name] = *v
	}

	return simulation.Tank{
		Name:     t.Name,
		Kind:     t.TankKind,
		Position: t.Position,
		Geometry: t.Geometry,
		FluxTime: t.FluxTime,
		Liquid:   t.Liquid,
		Gas:      t.Gas,
		Params:   params,
	}, nil
}

func surfaces(r models.Rocket) []simulation.Surface {
	return []simulation.Surface{
		{
			Kind:     "nose",
			Name:     "nose",
			Position: r.Nose.Position,
			Shape:    r.Nose.Kind,
			Params: map[string]float64{
				"length":        r.Nose.Length,
				"base_radius":   r.Nose.BaseRadius,
				"rocket_radius": r.Nose.RocketRadius,
			},
		},
		{
			Kind:     "trapezoidal_fins",
			Name:     "fins",
			Position: r.Fins.Position,
			Shape:    r.Fins.Airfoil,
			Params: map[string]float64{
				"n":          float64(r.Fins.N),
				"root_chord": r.Fins.RootChord,
				"tip_chord":  r.Fins.TipChord,
				"span":       r.Fins.Span,
				"cant_angle": r.Fins.CantAngle,
				"radius":     r.Fins.Radius,
			},
		},
		{
			Kind:     "tail",
			Name:     "tail",
			Position: r.Tail.Position,
			Params: map[string]float64{
				"top_radius":    r.Tail.TopRadius,
				"bottom_radius": r.Tail.BottomRadius,
				"length":        r.Tail.Length,
				"radius":        r.Tail.Radius,
			},
		},
	}
}

func fromParachuteModels(in []models.Parachute) ([]simulation.Parachute, error) {
	out := make([]simulation.Parachute, 0, len(in))
	for _, p := range in {
		trigger, err := parseTrigger(p.Trigger)
		if err != nil {
			return nil, fmt.Errorf("parachute %s: %w", p.Name, err)
		}
		out = append(out, simulation.Parachute{
			Name:         p.Name,
			CdS:          p.CdS,
			Trigger:      trigger,
			SamplingRate: p.SamplingRate,
			Lag:          p.Lag,
			Noise:        p.Noise,
		})
	}
	return out, nil
}

// parseTrigger accepts "apogee" or a deployment altitude in meters.
func parseTrigger(s string) (simulation.Trigger, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "apogee") {
		return simulation.Trigger{Apogee: true}, nil
	}
	altitude, err := strconv.ParseFloat(s, 64)
	if err != nil || altitude <= 0 {
		return simulation.Trigger{}, fmt.Errorf("invalid trigger %q", s)
	}
	return simulation.Trigger{Altitude: altitude}, nil
}

type RocketService struct {
	engine simulation.Engine
}

func NewRocketService(engine simulation.Engine) *RocketService {
	return &RocketService{engine: engine}
}

func (s *RocketService) Summary(ctx context.Context, r models.Rocket) (views.RocketSummary, error) {
	obj, err := FromRocketModel(r)
	if err != nil {
		return nil, err
	}
	attrs, err := s.engine.Summarize(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize rocket: %w", err)
	}
	return views.NewRocketSummary(attrs), nil
}

func (s *RocketService) Encode(ctx context.Context, r models.Rocket) (string, error) {
	obj, err := FromRocketModel(r)
	if err != nil {
		return "", err
	}
	return s.engine.Encode(ctx, obj)
}
