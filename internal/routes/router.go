// Package routes exposes the controllers over HTTP.
package routes

import (
	"context"
	"net/http"

	"infinity_api/internal/controllers"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Environments *controllers.EnvController
	Rockets      *controllers.RocketController
	Flights      *controllers.FlightController
	Store        Pinger
	Metrics      *Metrics
}

// NewRouter registers every endpoint and wraps the mux in the request
// middleware.
func NewRouter(opts Options) http.Handler {
	mux := http.NewServeMux()

	envHandler{c: opts.Environments}.register(mux)
	rocketHandler{c: opts.Rockets}.register(mux)
	flightHandler{c: opts.Flights}.register(mux)

	mux.HandleFunc("GET /health", healthHandler(opts.Store))
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics.Handler())
	}

	return instrument(recoverPanics(mux), opts.Metrics)
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
