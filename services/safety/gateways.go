package safety

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// TripAccess exposes the slice of the trips ledger the panic flow needs
// go:generate mockgen -destination=mocks/mock_tripaccess.go -package=mocks github.com/blincar/blincar/services/safety TripAccess
type TripAccess interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
}

// UserGetter loads user profiles for emergency contact checks
// go:generate mockgen -destination=mocks/mock_usergetter.go -package=mocks github.com/blincar/blincar/services/safety UserGetter
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// Notifier fans a domain event out to its recipients
// go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/blincar/blincar/services/safety Notifier
type Notifier interface {
	Dispatch(ctx context.Context, event models.DomainEvent) (*models.DispatchResult, error)
}

// EventPublisher emits domain events for downstream consumers. Alert
// resolution has no recipient fan-out but is still announced.
// go:generate mockgen -destination=mocks/mock_eventpublisher.go -package=mocks github.com/blincar/blincar/services/safety EventPublisher
type EventPublisher interface {
	PublishEvent(ctx context.Context, subject string, event models.DomainEvent) error
}
