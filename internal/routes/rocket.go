package routes

import (
	"net/http"

	"infinity_api/internal/controllers"
)

type rocketHandler struct {
	c *controllers.RocketController
}

func (h rocketHandler) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /rockets", h.create)
	mux.HandleFunc("POST /rockets/{$}", h.create)
	mux.HandleFunc("GET /rockets/{id}", h.get)
	mux.HandleFunc("PUT /rockets/{id}", h.update)
	mux.HandleFunc("DELETE /rockets/{id}", h.delete)
	mux.HandleFunc("GET /rockets/{id}/simulate", h.simulate)
	mux.HandleFunc("GET /rockets/{id}/rocketpy", h.rocketpy)
}

func (h rocketHandler) create(w http.ResponseWriter, r *http.Request) {
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
	out, err := h.c.CreateRocket(r.Context(), rocket, option, kind)
	respond(w, out, err)
}

func (h rocketHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.GetRocketByID(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h rocketHandler) update(w http.ResponseWriter, r *http.Request) {
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
	out, err := h.c.UpdateRocketByID(r.Context(), r.PathValue("id"), rocket, option, kind)
	respond(w, out, err)
}

func (h rocketHandler) delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.DeleteRocketByID(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h rocketHandler) simulate(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.SimulateRocket(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h rocketHandler) rocketpy(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.GetRocketpyRocketAsJSONPickle(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}
