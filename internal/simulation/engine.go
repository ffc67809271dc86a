// Package simulation talks to the rocket flight simulation engine. The
// engine is an external collaborator; this package only builds the objects
// it consumes and carries its answers back.
package simulation

import "context"

// Engine summarizes and serializes simulation objects.
type Engine interface {
	// Summarize returns the attributes the engine reports for obj, keyed by
	// attribute name.
	Summarize(ctx context.Context, obj Object) (map[string]any, error)
	// Encode returns a serialized form of obj that the engine can restore.
	Encode(ctx context.Context, obj Object) (string, error)
}
