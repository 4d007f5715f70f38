package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations.
// The Update* methods are conditional: they apply only when the trip is
// still in the expected state and report whether a row changed. A false
// return with a nil error means a concurrent writer won.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/blincar/blincar/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Trip, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	ListAll(ctx context.Context) ([]*models.Trip, error)

	AcceptTrip(ctx context.Context, tripID, driverID uuid.UUID) (bool, error)
	StartTrip(ctx context.Context, tripID uuid.UUID) (bool, error)
	CompleteTrip(ctx context.Context, tripID uuid.UUID, actualPrice *float64) (bool, error)
	CancelTrip(ctx context.Context, tripID uuid.UUID, cancelledBy, reason string) (bool, error)
}
