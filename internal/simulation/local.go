package simulation

import (
	"context"
	"fmt"
	"math"

	"github.com/bytedance/sonic"
)

// Local is an offline Engine. Its summaries report the configured attributes
// of an object and a few closed-form geometric quantities; it does not
// integrate trajectories, so trajectory attributes are left unset.
type Local struct{}

func NewLocal() *Local { return &Local{} }

func (l *Local) Summarize(_ context.Context, obj Object) (map[string]any, error) {
	switch o := obj.(type) {
	case *Environment:
		return attributes(o)
	case *Rocket:
		return rocketSummary(o)
	case *Flight:
		return flightSummary(o)
	default:
		return nil, fmt.Errorf("unsupported simulation object %T", obj)
	}
}

// envelope is the serialized form of an object: its kind and its state.
type envelope struct {
	Kind   Kind   `json:"py/object"`
	Object Object `json:"state"`
}

func (l *Local) Encode(_ context.Context, obj Object) (string, error) {
	if obj == nil {
		return "", fmt.Errorf("cannot encode nil simulation object")
	}
	out, err := sonic.MarshalString(envelope{Kind: obj.Kind(), Object: obj})
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", obj.Kind(), err)
	}
	return out, nil
}

// attributes flattens the JSON form of v into a map.
func attributes(v any) (map[string]any, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}
	attrs := make(map[string]any)
	if err := sonic.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}
	return attrs, nil
}

func rocketSummary(r *Rocket) (map[string]any, error) {
	attrs, err := attributes(r)
	if err != nil {
		return nil, err
	}
	motor, err := attributes(r.Motor)
	if err != nil {
		return nil, err
	}
	delete(attrs, "motor")
	for k, v := range motor {
		if k == "grains" {
			continue
		}
		attrs[k] = v
	}
	if g := r.Motor.Grains; g != nil {
		grains, err := attributes(g)
		if err != nil {
			return nil, err
		}
		for k, v := range grains {
			attrs[k] = v
		}
	}

	propellant := r.Motor.PropellantMass()
	attrs["area"] = math.Pi * r.Radius * r.Radius
	attrs["propellant_initial_mass"] = propellant
	attrs["total_mass"] = r.Mass + r.Motor.DryMass + propellant
	return attrs, nil
}

func flightSummary(f *Flight) (map[string]any, error) {
	if f.Environment == nil || f.Rocket == nil {
		return nil, fmt.Errorf("flight requires an environment and a rocket")
	}
	attrs, err := rocketSummary(f.Rocket)
	if err != nil {
		return nil, err
	}
	env, err := attributes(f.Environment)
	if err != nil {
		return nil, err
	}
	settings, err := attributes(f)
	if err != nil {
		return nil, err
	}
	delete(settings, "environment")
	delete(settings, "rocket")

	for _, src := range []map[string]any{env, settings} {
		for k, v := range src {
			attrs[k] = v
		}
	}
	attrs["t_initial"] = 0
	return attrs, nil
}

// PropellantMass is the initial mass of the grains, zero for motors
// without grains.
func (m Motor) PropellantMass() float64 {
	g := m.Grains
	if g == nil {
		return 0
	}
	section := math.Pi * (g.OuterRadius*g.OuterRadius - g.InitialInnerRadius*g.InitialInnerRadius)
	return float64(g.Number) * g.Density * section * g.InitialHeight
}
