package views

import "infinity_api/internal/models"

const (
	RocketCreatedMessage = "Rocket successfully created"
	RocketUpdatedMessage = "Rocket successfully updated"
	RocketDeletedMessage = "Rocket successfully deleted"
)

type RocketCreated struct {
	RocketID string `json:"rocket_id"`
	Message  string `json:"message"`
}

func NewRocketCreated(id string) RocketCreated {
	return RocketCreated{RocketID: id, Message: RocketCreatedMessage}
}

type RocketUpdated struct {
	NewRocketID string `json:"new_rocket_id"`
	Message     string `json:"message"`
}

func NewRocketUpdated(id string) RocketUpdated {
	return RocketUpdated{NewRocketID: id, Message: RocketUpdatedMessage}
}

type RocketDeleted struct {
	DeletedRocketID string `json:"deleted_rocket_id"`
	Message         string `json:"message"`
}

func NewRocketDeleted(id string) RocketDeleted {
	return RocketDeleted{DeletedRocketID: id, Message: RocketDeletedMessage}
}

type RocketPickle struct {
	JSONPickleRocketpyRocket string `json:"jsonpickle_rocketpy_rocket"`
}

// MotorView is a stored motor with its kind always reported.
type MotorView struct {
	models.Motor
	MotorKind models.MotorKind `json:"motor_kind"`
}

// RocketView is a stored rocket together with the options chosen when it
// was created.
type RocketView struct {
	models.Rocket
	Motor        MotorView           `json:"motor"`
	RocketOption models.RocketOption `json:"rocket_option"`
}

// NewRocketView fills in the CALISTO and SOLID defaults for rockets stored
// without options.
func NewRocketView(r models.Rocket) RocketView {
	option := r.RocketOption
	if option == "" {
		option = models.RocketCalisto
	}
	kind := r.Motor.MotorKind
	if kind == "" {
		kind = models.MotorSolid
	}
	return RocketView{
		Rocket:       r,
		Motor:        MotorView{Motor: r.Motor, MotorKind: kind},
		RocketOption: option,
	}
}

// RocketSummary holds the rocket and motor attributes reported by the
// simulation engine.
type RocketSummary map[string]any

var rocketSummaryFields = []string{
	"rocket_option",
	"radius",
	"mass",
	"area",
	"inertia",
	"center_of_mass_without_motor",
	"center_of_dry_mass_position",
	"coordinate_system_orientation",
	"power_off_drag",
	"power_on_drag",
	"parachutes",
	"aerodynamic_surfaces",
	"rail_buttons",
	"cp_position",
	"static_margin",
	"total_mass",
	"dry_mass",
	"motor_kind",
	"thrust_source",
	"burn_time",
	"burn_out_time",
	"nozzle_radius",
	"throat_radius",
	"grain_number",
	"grain_density",
	"grain_outer_radius",
	"grain_initial_inner_radius",
	"grain_initial_height",
	"grain_separation",
	"propellant_initial_mass",
	"tanks",
	"interpolation_method",
}

func NewRocketSummary(attrs map[string]any) RocketSummary {
	return RocketSummary(pick(attrs, rocketSummaryFields))
}
