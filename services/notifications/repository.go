package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// NotificationRepo defines the interface for notification record access.
// MarkRead reports false when no record with that ID belongs to the
// user; re-reading an already-read record reports true.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/blincar/blincar/services/notifications NotificationRepo
type NotificationRepo interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	MarkPushSent(ctx context.Context, notificationID uuid.UUID) error
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]*models.Notification, int, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}
