package models

import "fmt"

// Flight couples an environment and a rocket with launch and integration
// settings. Both are embedded by value; a flight does not reference stored
// environments or rockets.
type Flight struct {
	Environment       Env      `json:"environment" bson:"environment"`
	Rocket            Rocket   `json:"rocket" bson:"rocket"`
	Inclination       float64  `json:"inclination" bson:"inclination"`
	Heading           float64  `json:"heading" bson:"heading"`
	RailLength        float64  `json:"rail_length" bson:"rail_length"`
	TerminateOnApogee bool     `json:"terminate_on_apogee" bson:"terminate_on_apogee"`
	MaxTime           float64  `json:"max_time" bson:"max_time"`
	MaxTimeStep       *float64 `json:"max_time_step,omitempty" bson:"max_time_step,omitempty"`
	MinTimeStep       float64  `json:"min_time_step" bson:"min_time_step"`
	Rtol              float64  `json:"rtol" bson:"rtol"`
	Atol              *float64 `json:"atol,omitempty" bson:"atol,omitempty"`
	TimeOvershoot     bool     `json:"time_overshoot" bson:"time_overshoot"`
}

// DefaultFlight launches Calisto from the default environment off a 5.2 m rail.
func DefaultFlight() Flight {
	return Flight{
		Environment:       DefaultEnv(),
		Rocket:            DefaultRocket(),
		Inclination:       85,
		Heading:           0,
		RailLength:        5.2,
		TerminateOnApogee: false,
		MaxTime:           600,
		MinTimeStep:       0,
		Rtol:              1e-6,
		TimeOvershoot:     true,
	}
}

// Normalized applies the environment normalization to the embedded environment.
func (f Flight) Normalized() Flight {
	f.Environment = f.Environment.Normalized()
	return f
}

// Validate checks the launch settings and both embedded entities.
func (f Flight) Validate() error {
	if f.Inclination < 0 || f.Inclination > 90 {
		return fmt.Errorf("inclination %g out of range [0, 90]", f.Inclination)
	}
	if f.Heading < 0 || f.Heading >= 360 {
		return fmt.Errorf("heading %g out of range [0, 360)", f.Heading)
	}
	if f.RailLength <= 0 {
		return fmt.Errorf("rail_length must be positive")
	}
	if err := f.Environment.Validate(); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if err := f.Rocket.Validate(); err != nil {
		return fmt.Errorf("invalid rocket: %w", err)
	}
	return nil
}

// ID is the content-derived identifier of the flight.
func (f Flight) ID() (string, error) {
	return ContentID("flight", f.Normalized())
}
