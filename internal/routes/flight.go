package routes

import (
	"net/http"

	"infinity_api/internal/controllers"
)

type flightHandler struct {
	c *controllers.FlightController
}

func (h flightHandler) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /flights", h.create)
	mux.HandleFunc("POST /flights/{$}", h.create)
	mux.HandleFunc("GET /flights/{id}", h.get)
	mux.HandleFunc("PUT /flights/{id}", h.update)
	mux.HandleFunc("PUT /flights/{id}/env", h.updateEnv)
	mux.HandleFunc("PUT /flights/{id}/rocket", h.updateRocket)
	mux.HandleFunc("DELETE /flights/{id}", h.delete)
	mux.HandleFunc("GET /flights/{id}/simulate", h.simulate)
	mux.HandleFunc("GET /flights/{id}/rocketpy", h.rocketpy)
}

func (h flightHandler) create(w http.ResponseWriter, r *http.Request) {
	option, kind, err := rocketOptions(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	flight, err := decodeFlight(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	out, err := h.c.CreateFlight(r.Context(), flight, option, kind)
	respond(w, out, err)
}

func (h flightHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.GetFlightByID(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h flightHandler) update(w http.ResponseWriter, r *http.Request) {
	option, kind, err := rocketOptions(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	flight, err := decodeFlight(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	out, err := h.c.UpdateFlightByID(r.Context(), r.PathValue("id"), flight, option, kind)
	respond(w, out, err)
}

func (h flightHandler) updateEnv(w http.ResponseWriter, r *http.Request) {
	env, err := decodeEnv(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	out, err := h.c.UpdateEnvByFlightID(r.Context(), r.PathValue("id"), env)
	respond(w, out, err)
}

func (h flightHandler) updateRocket(w http.ResponseWriter, r *http.Request) {
	option, kind, err := rocketOptions(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	rocket, err := decodeRocket(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	out, err := h.c.UpdateRocketByFlightID(r.Context(), r.PathValue("id"), rocket, option, kind)
	respond(w, out, err)
}

func (h flightHandler) delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.DeleteFlightByID(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h flightHandler) simulate(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.SimulateFlight(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h flightHandler) rocketpy(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.GetRocketpyFlightAsJSONPickle(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}
