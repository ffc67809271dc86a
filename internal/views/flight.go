package views

import "infinity_api/internal/models"

const (
	FlightCreatedMessage = "Flight successfully created"
	FlightUpdatedMessage = "Flight successfully updated"
	FlightDeletedMessage = "Flight successfully deleted"
)

type FlightCreated struct {
	FlightID string `json:"flight_id"`
	Message  string `json:"message"`
}

func NewFlightCreated(id string) FlightCreated {
	return FlightCreated{FlightID: id, Message: FlightCreatedMessage}
}

type FlightUpdated struct {
	FlightID string `json:"flight_id"`
	Message  string `json:"message"`
}

func NewFlightUpdated(id string) FlightUpdated {
	return FlightUpdated{FlightID: id, Message: FlightUpdatedMessage}
}

type FlightDeleted struct {
	FlightID string `json:"flight_id"`
	Message  string `json:"message"`
}

func NewFlightDeleted(id string) FlightDeleted {
	return FlightDeleted{FlightID: id, Message: FlightDeletedMessage}
}

type FlightPickle struct {
	JSONPickleRocketpyFlight string `json:"jsonpickle_rocketpy_flight"`
}

// FlightView is a stored flight whose rocket is reported as a RocketView.
type FlightView struct {
	models.Flight
	Rocket RocketView `json:"rocket"`
}

func NewFlightView(f models.Flight) FlightView {
	return FlightView{Flight: f, Rocket: NewRocketView(f.Rocket)}
}

// FlightSummary holds the trajectory attributes reported by the simulation
// engine together with the rocket and environment summary fields.
type FlightSummary map[string]any

var flightSummaryFields = []string{
	"name",
	"max_time",
	"min_time_step",
	"max_time_step",
	"equations_of_motion",
	"heading",
	"inclination",
	"initial_solution",
	"effective_1rl",
	"effective_2rl",
	"out_of_rail_time",
	"out_of_rail_time_index",
	"parachute_cd_s",
	"rail_length",
	"rtol",
	"t",
	"t_final",
	"t_initial",
	"terminate_on_apogee",
	"time_overshoot",
	"latitude",
	"longitude",
	"M1",
	"M2",
	"M3",
	"R1",
	"R2",
	"R3",
	"acceleration",
	"aerodynamic_bending_moment",
	"aerodynamic_drag",
	"aerodynamic_lift",
	"aerodynamic_spin_moment",
	"alpha1",
	"alpha2",
	"alpha3",
	"altitude",
	"angle_of_attack",
	"apogee",
	"apogee_freestream_speed",
	"apogee_state",
	"apogee_time",
	"apogee_x",
	"apogee_y",
	"atol",
	"attitude_angle",
	"attitude_frequency_response",
	"attitude_vector_x",
	"attitude_vector_y",
	"attitude_vector_z",
	"ax",
	"ay",
	"az",
	"bearing",
	"drag_power",
	"drift",
	"dynamic_pressure",
	"e0",
	"e1",
	"e2",
	"e3",
	"free_stream_speed",
	"frontal_surface_wind",
	"function_evaluations",
	"function_evaluations_per_time_step",
	"horizontal_speed",
	"impact_state",
	"impact_velocity",
	"initial_stability_margin",
	"kinetic_energy",
	"lateral_attitude_angle",
	"lateral_surface_wind",
	"mach_number",
	"max_acceleration",
	"max_acceleration_power_off",
	"max_acceleration_power_off_time",
	"max_acceleration_power_on",
	"max_acceleration_power_on_time",
	"max_acceleration_time",
	"max_dynamic_pressure",
	"max_dynamic_pressure_time",
	"max_mach_number",
	"max_mach_number_time",
	"max_rail_button1_normal_force",
	"max_rail_button1_shear_force",
	"max_rail_button2_normal_force",
	"max_rail_button2_shear_force",
	"max_reynolds_number",
	"max_reynolds_number_time",
	"max_speed",
	"max_speed_time",
	"max_stability_margin",
	"max_stability_margin_time",
	"max_total_pressure",
	"max_total_pressure_time",
	"min_stability_margin",
	"min_stability_margin_time",
	"omega1_frequency_response",
	"omega2_frequency_response",
	"omega3_frequency_response",
	"out_of_rail_stability_margin",
	"out_of_rail_state",
	"out_of_rail_velocity",
	"parachute_events",
	"path_angle",
	"phi",
	"potential_energy",
	"psi",
	"rail_button1_normal_force",
	"rail_button1_shear_force",
	"rail_button2_normal_force",
	"rail_button2_shear_force",
	"reynolds_number",
	"rotational_energy",
	"solution",
	"solution_array",
	"speed",
	"stability_margin",
	"static_margin",
	"stream_velocity_x",
	"stream_velocity_y",
	"stream_velocity_z",
	"theta",
	"thrust_power",
	"time",
	"time_steps",
	"total_energy",
	"total_pressure",
	"translational_energy",
	"vx",
	"vy",
	"vz",
	"w1",
	"w2",
	"w3",
	"x",
	"x_impact",
	"y",
	"y_impact",
	"y_sol",
	"z",
	"z_impact",
	"flight_phases",
}

func NewFlightSummary(attrs map[string]any) FlightSummary {
	return FlightSummary(pick(attrs, rocketSummaryFields, envSummaryFields, flightSummaryFields))
}
