package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// TripAccess exposes the slice of the trips ledger the route change
// flow needs: loading a trip and bumping its route change counter.
// go:generate mockgen -destination=mocks/mock_tripaccess.go -package=mocks github.com/blincar/blincar/services/routes TripAccess
type TripAccess interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	IncrementRouteChangeCount(ctx context.Context, tripID uuid.UUID) error
}

// Notifier fans a domain event out to its recipients
// go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/blincar/blincar/services/routes Notifier
type Notifier interface {
	Dispatch(ctx context.Context, event models.DomainEvent) (*models.DispatchResult, error)
}

// Presence offers best-effort delivery of ephemeral events to live
// connections. No record is kept for these.
// go:generate mockgen -destination=mocks/mock_presence.go -package=mocks github.com/blincar/blincar/services/routes Presence
type Presence interface {
	NotifyUser(userID uuid.UUID, event string, data interface{}) bool
}
