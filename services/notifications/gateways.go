package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// TripGetter loads trips so the dispatcher can resolve participants
// go:generate mockgen -destination=mocks/mock_tripgetter.go -package=mocks github.com/blincar/blincar/services/notifications TripGetter
type TripGetter interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
}

// RecipientResolver answers the audience queries the dispatch table
// needs. Resolution is a pure function of current store state, never of
// anything cached in-process.
// go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks github.com/blincar/blincar/services/notifications RecipientResolver
type RecipientResolver interface {
	AdminIDs(ctx context.Context) ([]uuid.UUID, error)
	AvailableDriverIDs(ctx context.Context) ([]uuid.UUID, error)
}

// TokenRegistry resolves and retires push device tokens
// go:generate mockgen -destination=mocks/mock_tokens.go -package=mocks github.com/blincar/blincar/services/notifications TokenRegistry
type TokenRegistry interface {
	ActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	DeactivateToken(ctx context.Context, token string) error
}

// PushGateway delivers a rendered message to a set of device tokens and
// reports per-token outcomes
// go:generate mockgen -destination=mocks/mock_push.go -package=mocks github.com/blincar/blincar/services/notifications PushGateway
type PushGateway interface {
	Send(ctx context.Context, tokens []string, msg models.Message) (*models.PushResult, error)
}

// EventPublisher emits domain events for downstream consumers
// go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/blincar/blincar/services/notifications EventPublisher
type EventPublisher interface {
	PublishEvent(ctx context.Context, subject string, event models.DomainEvent) error
}

// Presence offers best-effort delivery to live connections. It is never
// authoritative: a false return only means the push channel is the sole
// route to the user.
// go:generate mockgen -destination=mocks/mock_presence.go -package=mocks github.com/blincar/blincar/services/notifications Presence
type Presence interface {
	NotifyUser(userID uuid.UUID, event string, data interface{}) bool
}
