package storage

import (
	"context"
	"errors"
	"fmt"
)

// Collection names, one per entity.
const (
	EnvironmentsCollection = "environments"
	RocketsCollection      = "rockets"
	FlightsCollection      = "flights"
)

var (
	// ErrNotFound is returned when no document matches a lookup.
	ErrNotFound = errors.New("document not found")

	// ErrDecode wraps a stored document that does not fit the requested type.
	// It is not a database error.
	ErrDecode = errors.New("failed to decode document")
)

// Error wraps a failure of the underlying database. Callers treat it as the
// store being unavailable.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsDatabaseError reports whether err came from the document store driver.
func IsDatabaseError(err error) bool {
	var dbErr *Error
	return errors.As(err, &dbErr)
}

// DocumentStore persists flat documents keyed by a string field.
type DocumentStore interface {
	InsertOne(ctx context.Context, collection string, doc any) error
	// FindOne decodes the first document whose key equals id into out, or
	// returns ErrNotFound.
	FindOne(ctx context.Context, collection, key, id string, out any) error
	// DeleteOne removes the first document whose key equals id and returns
	// how many were removed.
	DeleteOne(ctx context.Context, collection, key, id string) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
