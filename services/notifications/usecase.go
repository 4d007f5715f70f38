package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// DispatcherUC resolves a domain event's audience, records one durable
// notification per recipient and delivers through the live and push
// channels independently. Partial delivery failures are aggregated into
// the result, never returned as errors.
// go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks github.com/blincar/blincar/services/notifications DispatcherUC
type DispatcherUC interface {
	Dispatch(ctx context.Context, event models.DomainEvent) (*models.DispatchResult, error)
}

// NotificationUC defines the interface for notification feed operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/blincar/blincar/services/notifications NotificationUC
type NotificationUC interface {
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, page, limit int, unreadOnly bool) (*models.NotificationPage, error)
}
