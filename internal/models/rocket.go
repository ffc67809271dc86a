package models

import (
	"fmt"
	"strings"
)

// RocketOption tells whether a rocket is the Calisto reference design or a
// user-supplied one.
type RocketOption string

const (
	RocketCalisto RocketOption = "CALISTO"
	RocketCustom  RocketOption = "CUSTOM"
)

// ParseRocketOption accepts a case-insensitive rocket option. The empty
// string selects CALISTO.
func ParseRocketOption(s string) (RocketOption, error) {
	if s == "" {
		return RocketCalisto, nil
	}
	switch o := RocketOption(strings.ToUpper(s)); o {
	case RocketCalisto, RocketCustom:
		return o, nil
	}
	return "", fmt.Errorf("unknown rocket_option %q", s)
}

// DragPoint is one (mach, drag coefficient) sample of a drag curve.
type DragPoint [2]float64

type Rocket struct {
	RailButtons                 RailButtons  `json:"rail_buttons" bson:"rail_buttons"`
	Motor                       Motor        `json:"motor" bson:"motor"`
	Nose                        NoseCone     `json:"nose" bson:"nose"`
	Fins                        Fins         `json:"fins" bson:"fins"`
	Tail                        Tail         `json:"tail" bson:"tail"`
	Parachutes                  []Parachute  `json:"parachutes" bson:"parachutes"`
	Inertia                     [3]float64   `json:"inertia" bson:"inertia"`
	CenterOfMassWithoutMotor    float64      `json:"center_of_mass_without_motor" bson:"center_of_mass_without_motor"`
	Radius                      float64      `json:"radius" bson:"radius"`
	Mass                        float64      `json:"mass" bson:"mass"`
	PowerOffDrag                []DragPoint  `json:"power_off_drag" bson:"power_off_drag"`
	PowerOnDrag                 []DragPoint  `json:"power_on_drag" bson:"power_on_drag"`
	CoordinateSystemOrientation string       `json:"coordinate_system_orientation" bson:"coordinate_system_orientation"`
	RocketOption                RocketOption `json:"rocket_option,omitempty" bson:"rocket_option,omitempty"`
}

// DefaultRocket returns Calisto, the reference rocket every omitted field
// falls back to.
func DefaultRocket() Rocket {
	return Rocket{
		RailButtons:                 defaultRailButtons(),
		Motor:                       DefaultMotor(),
		Nose:                        defaultNose(),
		Fins:                        defaultFins(),
		Tail:                        defaultTail(),
		Parachutes:                  defaultParachutes(),
		Inertia:                     [3]float64{6.321, 6.321, 0.0346},
		CenterOfMassWithoutMotor:    0,
		Radius:                      0.0632,
		Mass:                        16.235,
		PowerOffDrag:                calistoPowerOffDrag(),
		PowerOnDrag:                 calistoPowerOnDrag(),
		CoordinateSystemOrientation: "tail_to_nose",
		RocketOption:                RocketCalisto,
	}
}

// WithOptions stamps the creation-time choices onto the rocket.
func (r Rocket) WithOptions(option RocketOption, kind MotorKind) Rocket {
	r.RocketOption = option
	r.Motor.MotorKind = kind
	return r
}

// Validate checks the rocket geometry and its motor.
func (r Rocket) Validate() error {
	if r.Radius <= 0 {
		return fmt.Errorf("rocket radius must be positive")
	}
	if r.Mass <= 0 {
		return fmt.Errorf("rocket mass must be positive")
	}
	if len(r.PowerOffDrag) == 0 || len(r.PowerOnDrag) == 0 {
		return fmt.Errorf("rocket drag curves cannot be empty")
	}
	if err := r.ValidateParachutes(); err != nil {
		return err
	}
	if err := r.Motor.Validate(); err != nil {
		return fmt.Errorf("invalid motor: %w", err)
	}
	return nil
}

// ValidateParachutes checks every parachute of the rocket.
func (r Rocket) ValidateParachutes() error {
	for i, p := range r.Parachutes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("parachutes[%d]: %w", i, err)
		}
	}
	return nil
}

// ID is the content-derived identifier of the rocket.
func (r Rocket) ID() (string, error) {
	return ContentID("rocket", r)
}

func calistoPowerOffDrag() []DragPoint {
	return []DragPoint{
		{0.01, 0.333865758}, {0.02, 0.394981721}, {0.03, 0.407756063},
		{0.04, 0.410692705}, {0.05, 0.410540353}, {0.06, 0.409240293},
		{0.07, 0.407500874}, {0.08, 0.405617853}, {0.09, 0.403724114},
		{0.1, 0.401881596}, {0.2, 0.388213178}, {0.3, 0.381012864},
		{0.4, 0.378055011}, {0.5, 0.380188685}, {0.6, 0.388536549},
		{0.7, 0.405176433}, {0.8, 0.437210072}, {0.9, 0.509564357},
		{1.0, 0.595802487}, {1.1, 0.598282308}, {1.2, 0.586154017},
		{1.5, 0.553437148}, {2.0, 0.512022181},
	}
}

func calistoPowerOnDrag() []DragPoint {
	return []DragPoint{
		{0.01, 0.331137}, {0.02, 0.391841}, {0.03, 0.404584},
		{0.04, 0.407525}, {0.05, 0.407381}, {0.06, 0.406089},
		{0.07, 0.404356}, {0.08, 0.402478}, {0.09, 0.400587},
		{0.1, 0.398747}, {0.2, 0.385088}, {0.3, 0.377888},
		{0.4, 0.374929}, {0.5, 0.377058}, {0.6, 0.385399},
		{0.7, 0.402031}, {0.8, 0.434056}, {0.9, 0.506394},
		{1.0, 0.592616}, {1.1, 0.595093}, {1.2, 0.582960},
		{1.5, 0.550237}, {2.0, 0.508812},
	}
}
