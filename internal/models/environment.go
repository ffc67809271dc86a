package models

import (
	"fmt"
	"time"
)

// AtmosphericModelType names the atmosphere source handed to the simulation engine.
type AtmosphericModelType string

const (
	AtmosphereStandard        AtmosphericModelType = "standard_atmosphere"
	AtmosphereCustom          AtmosphericModelType = "custom_atmosphere"
	AtmosphereWyomingSounding AtmosphericModelType = "wyoming_sounding"
	AtmosphereForecast        AtmosphericModelType = "forecast"
	AtmosphereReanalysis      AtmosphericModelType = "reanalysis"
	AtmosphereEnsemble        AtmosphericModelType = "ensemble"
)

// Valid reports whether t is a known atmospheric model.
func (t AtmosphericModelType) Valid() bool {
	switch t {
	case AtmosphereStandard, AtmosphereCustom, AtmosphereWyomingSounding,
		AtmosphereForecast, AtmosphereReanalysis, AtmosphereEnsemble:
		return true
	}
	return false
}

// Env describes the launch site and atmosphere of a simulation.
type Env struct {
	Latitude             float64              `json:"latitude" bson:"latitude"`
	Longitude            float64              `json:"longitude" bson:"longitude"`
	Elevation            int                  `json:"elevation" bson:"elevation"`
	AtmosphericModelType AtmosphericModelType `json:"atmospheric_model_type" bson:"atmospheric_model_type"`
	AtmosphericModelFile string               `json:"atmospheric_model_file" bson:"atmospheric_model_file"`
	Date                 time.Time            `json:"date" bson:"date"`
}

// DefaultEnv returns the environment used for every field a request omits.
// The launch date defaults to one day after now.
func DefaultEnv() Env {
	return Env{
		Latitude:             0,
		Longitude:            0,
		Elevation:            1400,
		AtmosphericModelType: AtmosphereStandard,
		AtmosphericModelFile: "GFS",
		Date:                 time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second),
	}
}

// Validate checks the field ranges the simulation engine cannot accept.
func (e Env) Validate() error {
	if e.Latitude < -90 || e.Latitude > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", e.Latitude)
	}
	if e.Longitude < -180 || e.Longitude > 360 {
		return fmt.Errorf("longitude %g out of range [-180, 360]", e.Longitude)
	}
	if !e.AtmosphericModelType.Valid() {
		return fmt.Errorf("unknown atmospheric_model_type %q", e.AtmosphericModelType)
	}
	return nil
}

// Normalized returns e with its date in UTC at millisecond precision, the
// resolution the document store keeps.
func (e Env) Normalized() Env {
	e.Date = e.Date.UTC().Truncate(time.Millisecond)
	return e
}

// ID is the content-derived identifier of the environment.
func (e Env) ID() (string, error) {
	return ContentID("env", e.Normalized())
}
