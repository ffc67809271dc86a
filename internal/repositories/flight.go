package repositories

import (
	"context"

	"infinity_api/internal/models"
	"infinity_api/internal/storage"
)

type flightDocument struct {
	FlightID      string `json:"flight_id" bson:"flight_id"`
	models.Flight `bson:",inline"`
}

// FlightRepository stores flights, with their embedded environment and
// rocket, in the flights collection.
type FlightRepository struct {
	repository
}

func NewFlightRepository(store storage.DocumentStore, cache storage.Cache) *FlightRepository {
	return &FlightRepository{newRepository(store, cache, storage.FlightsCollection, "flight_id")}
}

// Create stamps the rocket option and motor kind onto the embedded rocket,
// stores the flight under its content id and returns that id.
func (r *FlightRepository) Create(ctx context.Context, flight models.Flight, option models.RocketOption, kind models.MotorKind) (string, error) {
	flight.Rocket = flight.Rocket.WithOptions(option, kind)
	flight = flight.Normalized()
	id, err := flight.ID()
	if err != nil {
		return "", err
	}
	if err := r.insert(ctx, id, flightDocument{FlightID: id, Flight: flight}); err != nil {
		return "", err
	}
	return id, nil
}

func (r *FlightRepository) GetByID(ctx context.Context, id string) (models.Flight, error) {
	var doc flightDocument
	if err := r.find(ctx, id, &doc); err != nil {
		return models.Flight{}, err
	}
	return doc.Flight, nil
}

func (r *FlightRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return r.delete(ctx, id)
}
