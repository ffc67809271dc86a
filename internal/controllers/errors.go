package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"infinity_api/internal/storage"
	"infinity_api/src/logger"
)

// HTTPError is a failure already translated into an HTTP status and the
// detail returned to the client.
type HTTPError struct {
	Status int
	Detail string
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Detail, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Detail)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// controller holds what every entity controller shares.
type controller struct {
	entity   string
	notFound string
	log      zerolog.Logger
}

func newController(entity, notFound string) controller {
	return controller{
		entity:   entity,
		notFound: notFound,
		log:      logger.With("controllers." + entity),
	}
}

// operation names one controller call and the details its failures map to.
type operation struct {
	name     string
	dbDetail string
	detail   string
	notFound string
	log      zerolog.Logger
}

// operation builds the call descriptor for name. verb and prep produce
// details such as "Failed to create rocket in db".
func (c controller) operation(name, verb, prep string) operation {
	return operation{
		name:     "controllers." + c.entity + "." + name,
		dbDetail: fmt.Sprintf("Failed to %s %s %s db", verb, c.entity, prep),
		detail:   fmt.Sprintf("Failed to %s %s", verb, c.entity),
		notFound: c.notFound,
		log:      c.log,
	}
}

func (o operation) notFoundError() *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Detail: o.notFound}
}

// fail logs err and translates it. Errors that are already HTTPErrors pass
// through unchanged.
func (o operation) fail(err error) error {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, storage.ErrNotFound) {
		o.log.Warn().Err(err).Str("op", o.name).Msg("not found")
		return &HTTPError{Status: http.StatusNotFound, Detail: o.notFound, Err: err}
	}

	if storage.IsDatabaseError(err) {
		o.log.Error().Err(err).Str("op", o.name).Msg("database error")
		return &HTTPError{Status: http.StatusServiceUnavailable, Detail: o.dbDetail, Err: err}
	}

	o.log.Error().Err(err).Str("op", o.name).Msg("operation failed")
	return &HTTPError{
		Status: http.StatusInternalServerError,
		Detail: fmt.Sprintf("%s: %v", o.detail, err),
		Err:    err,
	}
}

// done logs completion of the call.
func (o operation) done(key, id string) {
	o.log.Info().Str(key, id).Msgf("Call to %s completed", o.name)
}
