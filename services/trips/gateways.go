package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// Notifier fans a domain event out to its recipients. Delivery outcomes
// are aggregated, never returned as errors; the error covers only the
// dispatch machinery itself.
// go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks github.com/blincar/blincar/services/trips Notifier
type Notifier interface {
	Dispatch(ctx context.Context, event models.DomainEvent) (*models.DispatchResult, error)
}

// UserGetter resolves user accounts for actor validation
// go:generate mockgen -destination=mocks/mock_usergetter.go -package=mocks github.com/blincar/blincar/services/trips UserGetter
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
