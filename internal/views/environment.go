package views

import "infinity_api/internal/models"

const (
	EnvCreatedMessage = "Environment successfully created"
	EnvUpdatedMessage = "Environment successfully updated"
	EnvDeletedMessage = "Environment successfully deleted"
)

type EnvCreated struct {
	EnvID   string `json:"env_id"`
	Message string `json:"message"`
}

func NewEnvCreated(id string) EnvCreated {
	return EnvCreated{EnvID: id, Message: EnvCreatedMessage}
}

type EnvUpdated struct {
	NewEnvID string `json:"new_env_id"`
	Message  string `json:"message"`
}

func NewEnvUpdated(id string) EnvUpdated {
	return EnvUpdated{NewEnvID: id, Message: EnvUpdatedMessage}
}

type EnvDeleted struct {
	DeletedEnvID string `json:"deleted_env_id"`
	Message      string `json:"message"`
}

func NewEnvDeleted(id string) EnvDeleted {
	return EnvDeleted{DeletedEnvID: id, Message: EnvDeletedMessage}
}

// EnvPickle carries the serialized simulation environment.
type EnvPickle struct {
	JSONPickleRocketpyEnv string `json:"jsonpickle_rocketpy_env"`
}

// EnvView is the stored environment as returned by GET.
type EnvView = models.Env

// EnvSummary holds the environment attributes reported by the simulation
// engine. Every summary field is present; unknown attributes are dropped.
type EnvSummary map[string]any

var envSummaryFields = []string{
	"latitude",
	"longitude",
	"elevation",
	"atmospheric_model_type",
	"atmospheric_model_file",
	"date",
	"datum",
	"timezone",
	"local_date",
	"initial_utm_zone",
	"initial_utm_letter",
	"initial_north",
	"initial_east",
	"initial_hemisphere",
	"initial_ew",
	"max_expected_height",
	"gravity",
	"air_gas_constant",
	"standard_g",
	"earth_radius",
	"pressure",
	"temperature",
	"speed_of_sound",
	"density",
	"dynamic_viscosity",
	"wind_speed",
	"wind_direction",
	"wind_heading",
	"wind_velocity_x",
	"wind_velocity_y",
}

func NewEnvSummary(attrs map[string]any) EnvSummary {
	return EnvSummary(pick(attrs, envSummaryFields))
}

// pick returns a map holding exactly the given fields, nil where attrs lacks one.
func pick(attrs map[string]any, fields ...[]string) map[string]any {
	out := make(map[string]any)
	for _, set := range fields {
		for _, f := range set {
			out[f] = attrs[f]
		}
	}
	return out
}
