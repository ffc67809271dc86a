package models

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentIDIsDeterministic(t *testing.T) {
	env := DefaultEnv()

	first, err := env.ID()
	require.NoError(t, err)
	second, err := env.ID()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 36)
}

func TestContentIDChangesWithContent(t *testing.T) {
	base := DefaultRocket()
	baseID, err := base.ID()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(r *Rocket)
	}{
		{name: "mass", mutate: func(r *Rocket) { r.Mass += 1 }},
		{name: "motor burn time", mutate: func(r *Rocket) { r.Motor.BurnTime = 4.2 }},
		{name: "parachute trigger", mutate: func(r *Rocket) { r.Parachutes[0].Trigger = "500" }},
		{name: "rocket option", mutate: func(r *Rocket) { r.RocketOption = RocketCustom }},
		{name: "drag point", mutate: func(r *Rocket) { r.PowerOffDrag[0][1] = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := DefaultRocket()
			tt.mutate(&changed)

			id, err := changed.ID()
			require.NoError(t, err)
			assert.NotEqual(t, baseID, id)
		})
	}
}

func TestContentIDSeparatesKinds(t *testing.T) {
	a, err := ContentID("env", map[string]int{"x": 1})
	require.NoError(t, err)
	b, err := ContentID("rocket", map[string]int{"x": 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEnvIDIgnoresSubMillisecondDate(t *testing.T) {
	env := DefaultEnv()
	env.Date = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	withNanos := env
	withNanos.Date = env.Date.Add(300 * time.Nanosecond)

	a, err := env.ID()
	require.NoError(t, err)
	b, err := withNanos.ID()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodingOverDefaultsKeepsOmittedFields(t *testing.T) {
	rocket := DefaultRocket()
	require.NoError(t, sonic.Unmarshal([]byte(`{"mass": 20, "motor": {"burn_time": 5}}`), &rocket))

	assert.Equal(t, 20.0, rocket.Mass)
	assert.Equal(t, 5.0, rocket.Motor.BurnTime)
	assert.Equal(t, "Cesaroni_M1670", rocket.Motor.ThrustSource)
	assert.Equal(t, 0.0632, rocket.Radius)
	assert.Len(t, rocket.Parachutes, 2)
}

func TestDecodingReplacesDefaultLists(t *testing.T) {
	rocket := DefaultRocket()
	require.NoError(t, sonic.Unmarshal([]byte(`{"parachutes": [{"name": "Solo", "cd_s": 2}]}`), &rocket))

	require.Len(t, rocket.Parachutes, 1)
	assert.Equal(t, Parachute{Name: "Solo", CdS: 2}, rocket.Parachutes[0])
	assert.ErrorContains(t, rocket.ValidateParachutes(), "parachutes[0]: parachute Solo: trigger is required")

	rocket = DefaultRocket()
	rocket.Motor.Tanks = []MotorTank{{Name: "oxidizer", TankKind: TankMass, Discretize: 100}}
	require.NoError(t, sonic.Unmarshal([]byte(`{"motor": {"tanks": [{"name": "fuel"}]}}`), &rocket))

	require.Len(t, rocket.Motor.Tanks, 1)
	assert.Equal(t, MotorTank{Name: "fuel"}, rocket.Motor.Tanks[0])
}

func TestParachuteValidate(t *testing.T) {
	for _, p := range DefaultRocket().Parachutes {
		assert.NoError(t, p.Validate())
	}

	tests := []struct {
		name      string
		parachute Parachute
		want      string
	}{
		{name: "missing name", parachute: Parachute{CdS: 1, Trigger: "apogee"}, want: "name is required"},
		{name: "missing cd_s", parachute: Parachute{Name: "Drogue", Trigger: "apogee"}, want: "cd_s must be positive"},
		{name: "missing trigger", parachute: Parachute{Name: "Drogue", CdS: 1}, want: "trigger is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.parachute.Validate(), tt.want)
		})
	}
}

func TestParseOptions(t *testing.T) {
	option, err := ParseRocketOption("")
	require.NoError(t, err)
	assert.Equal(t, RocketCalisto, option)

	option, err = ParseRocketOption("custom")
	require.NoError(t, err)
	assert.Equal(t, RocketCustom, option)

	_, err = ParseRocketOption("saturn")
	assert.Error(t, err)

	kind, err := ParseMotorKind("")
	require.NoError(t, err)
	assert.Equal(t, MotorSolid, kind)

	kind, err = ParseMotorKind("Hybrid")
	require.NoError(t, err)
	assert.Equal(t, MotorHybrid, kind)

	_, err = ParseMotorKind("ion")
	assert.Error(t, err)
}

func TestMotorValidate(t *testing.T) {
	motor := DefaultMotor()
	assert.NoError(t, motor.Validate())

	liquid := motor
	liquid.MotorKind = MotorLiquid
	assert.ErrorContains(t, liquid.Validate(), "liquid motor requires")

	liquid.Tanks = []MotorTank{{Name: "oxidizer", TankKind: TankMassFlow, Geometry: []TankSection{{Start: 0, End: 0.5, Radius: 0.06}}}}
	assert.NoError(t, liquid.Validate())

	liquid.Tanks[0].Geometry = nil
	assert.ErrorContains(t, liquid.Validate(), "has no geometry")

	hybrid := motor
	hybrid.MotorKind = MotorHybrid
	assert.Error(t, hybrid.Validate())
}

func TestEnvValidate(t *testing.T) {
	env := DefaultEnv()
	assert.NoError(t, env.Validate())

	env.Latitude = 91
	assert.Error(t, env.Validate())

	env = DefaultEnv()
	env.AtmosphericModelType = "plasma"
	assert.Error(t, env.Validate())
}

func TestFlightValidate(t *testing.T) {
	flight := DefaultFlight()
	assert.NoError(t, flight.Validate())

	flight.Inclination = 120
	assert.Error(t, flight.Validate())

	flight = DefaultFlight()
	flight.Rocket.Motor.MotorKind = MotorLiquid
	assert.ErrorContains(t, flight.Validate(), "invalid rocket")
}
