package simulation

import (
	"time"

	"infinity_api/internal/models"
)

// Kind names the class of a simulation object.
type Kind string

const (
	KindEnvironment Kind = "environment"
	KindRocket      Kind = "rocket"
	KindFlight      Kind = "flight"
)

// Object is anything an Engine can summarize or encode.
type Object interface {
	Kind() Kind
}

// Environment is the launch site and atmosphere handed to the engine.
type Environment struct {
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Elevation            int       `json:"elevation"`
	Date                 time.Time `json:"date"`
	Datum                string    `json:"datum"`
	Timezone             string    `json:"timezone"`
	MaxExpectedHeight    float64   `json:"max_expected_height"`
	AtmosphericModelType string    `json:"atmospheric_model_type"`
	AtmosphericModelFile string    `json:"atmospheric_model_file,omitempty"`
}

func (*Environment) Kind() Kind { return KindEnvironment }

// Grains describes the solid propellant of SOLID and HYBRID motors.
type Grains struct {
	Number             int     `json:"grain_number"`
	Density            float64 `json:"grain_density"`
	OuterRadius        float64 `json:"grain_outer_radius"`
	InitialInnerRadius float64 `json:"grain_initial_inner_radius"`
	InitialHeight      float64 `json:"grain_initial_height"`
	Separation         float64 `json:"grain_separation"`
	CenterOfMass       float64 `json:"grains_center_of_mass_position"`
}

// Tank is a propellant tank placed on a LIQUID or HYBRID motor.
type Tank struct {
	Name     string               `json:"name"`
	Kind     models.TankKind      `json:"tank_kind"`
	Position float64              `json:"position"`
	Geometry []models.TankSection `json:"geometry"`
	FluxTime [2]float64           `json:"flux_time"`
	Liquid   models.Fluid         `json:"liquid"`
	Gas      models.Fluid         `json:"gas"`
	Params   map[string]float64   `json:"params,omitempty"`
}

// Motor is the propulsion object. Grains is set for SOLID and HYBRID motors,
// Tanks for LIQUID and HYBRID motors.
type Motor struct {
	MotorKind                   models.MotorKind `json:"motor_kind"`
	ThrustSource                string           `json:"thrust_source"`
	BurnTime                    float64          `json:"burn_time"`
	NozzleRadius                float64          `json:"nozzle_radius"`
	ThroatRadius                float64          `json:"throat_radius,omitempty"`
	DryMass                     float64          `json:"dry_mass"`
	DryInertia                  [3]float64       `json:"dry_inertia"`
	CenterOfDryMassPosition     float64          `json:"center_of_dry_mass_position"`
	InterpolationMethod         string           `json:"interpolation_method"`
	CoordinateSystemOrientation string           `json:"coordinate_system_orientation"`
	Grains                      *Grains          `json:"grains,omitempty"`
	Tanks                       []Tank           `json:"tanks,omitempty"`
}

// Surface is one aerodynamic surface attached to the rocket body.
type Surface struct {
	Kind     string             `json:"kind"`
	Name     string             `json:"name"`
	Position float64            `json:"position"`
	Params   map[string]float64 `json:"params"`
	Shape    string             `json:"shape,omitempty"`
}

// Trigger fires a parachute at apogee or, descending, below Altitude.
type Trigger struct {
	Apogee   bool    `json:"apogee,omitempty"`
	Altitude float64 `json:"altitude,omitempty"`
}

type Parachute struct {
	Name         string     `json:"name"`
	CdS          float64    `json:"cd_s"`
	Trigger      Trigger    `json:"trigger"`
	SamplingRate int        `json:"sampling_rate"`
	Lag          float64    `json:"lag"`
	Noise        [3]float64 `json:"noise"`
}

// Rocket is the assembled vehicle handed to the engine.
type Rocket struct {
	RocketOption                models.RocketOption `json:"rocket_option"`
	Radius                      float64             `json:"radius"`
	Mass                        float64             `json:"mass"`
	Inertia                     [3]float64          `json:"inertia"`
	CenterOfMassWithoutMotor    float64             `json:"center_of_mass_without_motor"`
	CoordinateSystemOrientation string              `json:"coordinate_system_orientation"`
	PowerOffDrag                []models.DragPoint  `json:"power_off_drag"`
	PowerOnDrag                 []models.DragPoint  `json:"power_on_drag"`
	Motor                       Motor               `json:"motor"`
	AerodynamicSurfaces         []Surface           `json:"aerodynamic_surfaces"`
	RailButtons                 models.RailButtons  `json:"rail_buttons"`
	Parachutes                  []Parachute         `json:"parachutes"`
}

func (*Rocket) Kind() Kind { return KindRocket }

// Flight is a launch of Rocket in Environment with integration settings.
type Flight struct {
	Environment       *Environment `json:"environment"`
	Rocket            *Rocket      `json:"rocket"`
	Inclination       float64      `json:"inclination"`
	Heading           float64      `json:"heading"`
	RailLength        float64      `json:"rail_length"`
	TerminateOnApogee bool         `json:"terminate_on_apogee"`
	MaxTime           float64      `json:"max_time"`
	MaxTimeStep       *float64     `json:"max_time_step,omitempty"`
	MinTimeStep       float64      `json:"min_time_step"`
	Rtol              float64      `json:"rtol"`
	Atol              *float64     `json:"atol,omitempty"`
	TimeOvershoot     bool         `json:"time_overshoot"`
}

func (*Flight) Kind() Kind { return KindFlight }
