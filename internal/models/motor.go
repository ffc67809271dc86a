package models

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// MotorKind selects the motor family the engine builds.
type MotorKind string

const (
	MotorSolid  MotorKind = "SOLID"
	MotorLiquid MotorKind = "LIQUID"
	MotorHybrid MotorKind = "HYBRID"
)

// ParseMotorKind accepts a case-insensitive motor kind. The empty string
// selects SOLID.
func ParseMotorKind(s string) (MotorKind, error) {
	if s == "" {
		return MotorSolid, nil
	}
	switch k := MotorKind(strings.ToUpper(s)); k {
	case MotorSolid, MotorLiquid, MotorHybrid:
		return k, nil
	}
	return "", fmt.Errorf("unknown motor_kind %q", s)
}

// TankKind selects how a tank's contents are described over time.
type TankKind string

const (
	TankMassFlow TankKind = "MASS_FLOW"
	TankMass     TankKind = "MASS"
	TankUllage   TankKind = "ULLAGE"
	TankLevel    TankKind = "LEVEL"
)

// Fluid is a propellant held in a tank.
type Fluid struct {
	Name    string  `json:"name" bson:"name"`
	Density float64 `json:"density" bson:"density"`
}

// TankSection is one cylindrical slice of a tank geometry, from Start to End
// along the tank axis.
type TankSection struct {
	Start  float64 `json:"start" bson:"start"`
	End    float64 `json:"end" bson:"end"`
	Radius float64 `json:"radius" bson:"radius"`
}

// MotorTank describes a liquid or hybrid propellant tank.
type MotorTank struct {
	Name       string        `json:"name" bson:"name"`
	TankKind   TankKind      `json:"tank_kind" bson:"tank_kind"`
	Geometry   []TankSection `json:"geometry" bson:"geometry"`
	Position   float64       `json:"position" bson:"position"`
	FluxTime   [2]float64    `json:"flux_time" bson:"flux_time"`
	Liquid     Fluid         `json:"liquid" bson:"liquid"`
	Gas        Fluid         `json:"gas" bson:"gas"`
	Discretize int           `json:"discretize" bson:"discretize"`

	// Set according to TankKind.
	InitialLiquidMass     *float64 `json:"initial_liquid_mass,omitempty" bson:"initial_liquid_mass,omitempty"`
	InitialGasMass        *float64 `json:"initial_gas_mass,omitempty" bson:"initial_gas_mass,omitempty"`
	LiquidMassFlowRateIn  *float64 `json:"liquid_mass_flow_rate_in,omitempty" bson:"liquid_mass_flow_rate_in,omitempty"`
	GasMassFlowRateIn     *float64 `json:"gas_mass_flow_rate_in,omitempty" bson:"gas_mass_flow_rate_in,omitempty"`
	LiquidMassFlowRateOut *float64 `json:"liquid_mass_flow_rate_out,omitempty" bson:"liquid_mass_flow_rate_out,omitempty"`
	GasMassFlowRateOut    *float64 `json:"gas_mass_flow_rate_out,omitempty" bson:"gas_mass_flow_rate_out,omitempty"`
	Ullage                *float64 `json:"ullage,omitempty" bson:"ullage,omitempty"`
	LiquidHeight          *float64 `json:"liquid_height,omitempty" bson:"liquid_height,omitempty"`
	LiquidMass            *float64 `json:"liquid_mass,omitempty" bson:"liquid_mass,omitempty"`
	GasMass               *float64 `json:"gas_mass,omitempty" bson:"gas_mass,omitempty"`
}

type motorTankFields MotorTank

// UnmarshalJSON decodes a tank from scratch, like Parachute.
func (t *MotorTank) UnmarshalJSON(data []byte) error {
	var fields motorTankFields
	if err := sonic.Unmarshal(data, &fields); err != nil {
		return err
	}
	*t = MotorTank(fields)
	return nil
}

// Motor describes the propulsion of a rocket. Grain parameters apply to SOLID
// and HYBRID motors, tanks to LIQUID and HYBRID motors.
type Motor struct {
	ThrustSource                string      `json:"thrust_source" bson:"thrust_source"`
	BurnTime                    float64     `json:"burn_time" bson:"burn_time"`
	NozzleRadius                float64     `json:"nozzle_radius" bson:"nozzle_radius"`
	DryMass                     float64     `json:"dry_mass" bson:"dry_mass"`
	DryInertia                  [3]float64  `json:"dry_inertia" bson:"dry_inertia"`
	CenterOfDryMassPosition     float64     `json:"center_of_dry_mass_position" bson:"center_of_dry_mass_position"`
	GrainNumber                 int         `json:"grain_number" bson:"grain_number"`
	GrainDensity                float64     `json:"grain_density" bson:"grain_density"`
	GrainOuterRadius            float64     `json:"grain_outer_radius" bson:"grain_outer_radius"`
	GrainInitialInnerRadius     float64     `json:"grain_initial_inner_radius" bson:"grain_initial_inner_radius"`
	GrainInitialHeight          float64     `json:"grain_initial_height" bson:"grain_initial_height"`
	GrainsCenterOfMassPosition  float64     `json:"grains_center_of_mass_position" bson:"grains_center_of_mass_position"`
	GrainSeparation             float64     `json:"grain_separation" bson:"grain_separation"`
	ThroatRadius                float64     `json:"throat_radius" bson:"throat_radius"`
	InterpolationMethod         string      `json:"interpolation_method" bson:"interpolation_method"`
	CoordinateSystemOrientation string      `json:"coordinate_system_orientation" bson:"coordinate_system_orientation"`
	Tanks                       []MotorTank `json:"tanks,omitempty" bson:"tanks,omitempty"`
	MotorKind                   MotorKind   `json:"motor_kind,omitempty" bson:"motor_kind,omitempty"`
}

// DefaultMotor returns the Cesaroni M1670 solid motor flown by Calisto.
func DefaultMotor() Motor {
	return Motor{
		ThrustSource:                "Cesaroni_M1670",
		BurnTime:                    3.9,
		NozzleRadius:                0.033,
		DryMass:                     1.815,
		DryInertia:                  [3]float64{0.125, 0.125, 0.002},
		CenterOfDryMassPosition:     0.317,
		GrainNumber:                 5,
		GrainDensity:                1815,
		GrainOuterRadius:            0.033,
		GrainInitialInnerRadius:     0.015,
		GrainInitialHeight:          0.12,
		GrainsCenterOfMassPosition:  -0.85704,
		GrainSeparation:             0.005,
		ThroatRadius:                0.011,
		InterpolationMethod:         "linear",
		CoordinateSystemOrientation: "nozzle_to_combustion_chamber",
		MotorKind:                   MotorSolid,
	}
}

// Validate checks that the motor carries what its kind needs.
func (m Motor) Validate() error {
	switch m.MotorKind {
	case MotorSolid:
		if m.GrainNumber <= 0 {
			return fmt.Errorf("solid motor requires at least one grain")
		}
	case MotorLiquid:
		if len(m.Tanks) == 0 {
			return fmt.Errorf("liquid motor requires at least one tank")
		}
	case MotorHybrid:
		if m.GrainNumber <= 0 || len(m.Tanks) == 0 {
			return fmt.Errorf("hybrid motor requires grains and at least one tank")
		}
	default:
		return fmt.Errorf("unknown motor_kind %q", m.MotorKind)
	}
	if m.BurnTime <= 0 {
		return fmt.Errorf("burn_time must be positive")
	}
	for i, tank := range m.Tanks {
		if len(tank.Geometry) == 0 {
			return fmt.Errorf("tank %d (%s) has no geometry", i, tank.Name)
		}
	}
	return nil
}
