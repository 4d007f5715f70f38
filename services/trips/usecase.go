package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/blincar/blincar/services/trips TripUC
type TripUC interface {
	RequestTrip(ctx context.Context, passengerID uuid.UUID, req *models.TripRequest) (*models.Trip, error)
	AcceptTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error)
	NotifyDriverArrived(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error)
	StartTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, tripID, driverID uuid.UUID, actualPrice *float64) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID, actorID uuid.UUID, actorRole, reason string) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID, actorID uuid.UUID, actorRole string) (*models.Trip, error)
	ListTrips(ctx context.Context, actorID uuid.UUID, actorRole string) ([]*models.Trip, error)
}
