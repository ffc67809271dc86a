package routes

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"infinity_api/internal/controllers"
	"infinity_api/internal/models"
	"infinity_api/src/logger"
)

// maxBodyBytes caps request bodies; rockets with long drag tables stay well
// below it.
const maxBodyBytes = 4 << 20

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"failed to encode response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

// respond writes payload with 200, or the translated controller error.
func respond(w http.ResponseWriter, payload any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, payload)
		return
	}
	var httpErr *controllers.HTTPError
	if errors.As(err, &httpErr) {
		writeError(w, httpErr.Status, httpErr.Detail)
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// decodeBody decodes the JSON request body over dest, so fields the client
// omits keep the values dest already holds.
func decodeBody(r *http.Request, dest any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) > maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	if len(data) == 0 {
		return fmt.Errorf("request body is required")
	}
	if err := sonic.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// rocketOptions reads the rocket_option and motor_kind query parameters.
func rocketOptions(r *http.Request) (models.RocketOption, models.MotorKind, error) {
	q := r.URL.Query()
	option, err := models.ParseRocketOption(q.Get("rocket_option"))
	if err != nil {
		return "", "", err
	}
	kind, err := models.ParseMotorKind(q.Get("motor_kind"))
	if err != nil {
		return "", "", err
	}
	return option, kind, nil
}

func decodeEnv(r *http.Request) (models.Env, error) {
	env := models.DefaultEnv()
	if err := decodeBody(r, &env); err != nil {
		return models.Env{}, err
	}
	if err := env.Validate(); err != nil {
		return models.Env{}, err
	}
	return env, nil
}

func decodeRocket(r *http.Request) (models.Rocket, error) {
	rocket := models.DefaultRocket()
	if err := decodeBody(r, &rocket); err != nil {
		return models.Rocket{}, err
	}
	if err := rocket.ValidateParachutes(); err != nil {
		return models.Rocket{}, err
	}
	return rocket, nil
}

func decodeFlight(r *http.Request) (models.Flight, error) {
	flight := models.DefaultFlight()
	if err := decodeBody(r, &flight); err != nil {
		return models.Flight{}, err
	}
	if err := flight.Environment.Validate(); err != nil {
		return models.Flight{}, fmt.Errorf("environment: %w", err)
	}
	if err := flight.Rocket.ValidateParachutes(); err != nil {
		return models.Flight{}, fmt.Errorf("rocket: %w", err)
	}
	return flight, nil
}
