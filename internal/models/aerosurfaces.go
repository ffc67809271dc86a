package models

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// RailButtons locates the launch rail guides on the rocket body.
type RailButtons struct {
	UpperButtonPosition float64 `json:"upper_button_position" bson:"upper_button_position"`
	LowerButtonPosition float64 `json:"lower_button_position" bson:"lower_button_position"`
	AngularPosition     float64 `json:"angular_position" bson:"angular_position"`
}

type NoseCone struct {
	Length       float64 `json:"length" bson:"length"`
	Kind         string  `json:"kind" bson:"kind"`
	Position     float64 `json:"position" bson:"position"`
	BaseRadius   float64 `json:"base_radius" bson:"base_radius"`
	RocketRadius float64 `json:"rocket_radius" bson:"rocket_radius"`
}

// Fins is a trapezoidal fin set.
type Fins struct {
	N         int     `json:"n" bson:"n"`
	RootChord float64 `json:"root_chord" bson:"root_chord"`
	TipChord  float64 `json:"tip_chord" bson:"tip_chord"`
	Span      float64 `json:"span" bson:"span"`
	Position  float64 `json:"position" bson:"position"`
	CantAngle float64 `json:"cant_angle" bson:"cant_angle"`
	Radius    float64 `json:"radius" bson:"radius"`
	Airfoil   string  `json:"airfoil,omitempty" bson:"airfoil,omitempty"`
}

type Tail struct {
	TopRadius    float64 `json:"top_radius" bson:"top_radius"`
	BottomRadius float64 `json:"bottom_radius" bson:"bottom_radius"`
	Length       float64 `json:"length" bson:"length"`
	Position     float64 `json:"position" bson:"position"`
	Radius       float64 `json:"radius" bson:"radius"`
}

// Parachute is one recovery device. Trigger is either "apogee" or an
// altitude in meters, evaluated by the simulation engine.
type Parachute struct {
	Name         string     `json:"name" bson:"name"`
	CdS          float64    `json:"cd_s" bson:"cd_s"`
	SamplingRate int        `json:"sampling_rate" bson:"sampling_rate"`
	Lag          float64    `json:"lag" bson:"lag"`
	Noise        [3]float64 `json:"noise" bson:"noise"`
	Trigger      string     `json:"trigger" bson:"trigger"`
}

type parachuteFields Parachute

// UnmarshalJSON decodes a parachute from scratch. Lists replace their
// defaults wholesale, so a submitted parachute never inherits the fields of
// the default one at the same index.
func (p *Parachute) UnmarshalJSON(data []byte) error {
	var fields parachuteFields
	if err := sonic.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Parachute(fields)
	return nil
}

// Validate checks the fields a parachute cannot be simulated without.
func (p Parachute) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("parachute name is required")
	}
	if p.CdS <= 0 {
		return fmt.Errorf("parachute %s: cd_s must be positive", p.Name)
	}
	if p.Trigger == "" {
		return fmt.Errorf("parachute %s: trigger is required", p.Name)
	}
	return nil
}

func defaultRailButtons() RailButtons {
	return RailButtons{
		UpperButtonPosition: -0.5,
		LowerButtonPosition: 0.2,
		AngularPosition:     45,
	}
}

func defaultNose() NoseCone {
	return NoseCone{
		Length:       0.55829,
		Kind:         "vonKarman",
		Position:     1.278,
		BaseRadius:   0.0635,
		RocketRadius: 0.0635,
	}
}

func defaultFins() Fins {
	return Fins{
		N:         4,
		RootChord: 0.12,
		TipChord:  0.04,
		Span:      0.1,
		Position:  -1.04956,
		CantAngle: 0,
		Radius:    0.0635,
	}
}

func defaultTail() Tail {
	return Tail{
		TopRadius:    0.0635,
		BottomRadius: 0.0435,
		Length:       0.06,
		Position:     -1.194656,
		Radius:       0.0635,
	}
}

func defaultParachutes() []Parachute {
	return []Parachute{
		{
			Name:         "Main",
			CdS:          10,
			SamplingRate: 105,
			Lag:          1.5,
			Noise:        [3]float64{0, 8.3, 0.5},
			Trigger:      "800",
		},
		{
			Name:         "Drogue",
			CdS:          1,
			SamplingRate: 105,
			Lag:          1.5,
			Noise:        [3]float64{0, 8.3, 0.5},
			Trigger:      "apogee",
		},
	}
}
