package routes

import (
	"net/http"

	"infinity_api/internal/controllers"
)

type envHandler struct {
	c *controllers.EnvController
}

func (h envHandler) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /environments", h.create)
	mux.HandleFunc("POST /environments/{$}", h.create)
	mux.HandleFunc("GET /environments/{id}", h.get)
	mux.HandleFunc("PUT /environments/{id}", h.update)
	mux.HandleFunc("DELETE /environments/{id}", h.delete)
	mux.HandleFunc("GET /environments/{id}/simulate", h.simulate)
	mux.HandleFunc("GET /environments/{id}/rocketpy", h.rocketpy)
}

func (h envHandler) create(w http.ResponseWriter, r *http.Request) {
	env, err := decodeEnv(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	out, err := h.c.CreateEnv(r.Context(), env)
	respond(w, out, err)
}

func (h envHandler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.GetEnvByID(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h envHandler) update(w http.ResponseWriter, r *http.Request) {
	env, err := decodeEnv(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	out, err := h.c.UpdateEnvByID(r.Context(), r.PathValue("id"), env)
	respond(w, out, err)
}

func (h envHandler) delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.DeleteEnvByID(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h envHandler) simulate(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.SimulateEnv(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}

func (h envHandler) rocketpy(w http.ResponseWriter, r *http.Request) {
	out, err := h.c.GetRocketpyEnvAsJSONPickle(r.Context(), r.PathValue("id"))
	respond(w, out, err)
}
