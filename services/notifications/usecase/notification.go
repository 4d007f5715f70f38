package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/notifications"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// notificationUC implements the notifications.NotificationUC interface
type notificationUC struct {
	repo notifications.NotificationRepo
}

// NewNotificationUC creates a new notification feed use case
func NewNotificationUC(repo notifications.NotificationRepo) notifications.NotificationUC {
	return &notificationUC{
		repo: repo,
	}
}

// MarkRead marks one of the user's notifications as read. Repeated
// calls succeed; a record owned by someone else looks like a missing
// one.
func (uc *notificationUC) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	found, err := uc.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were affected
func (uc *notificationUC) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	return uc.repo.MarkAllRead(ctx, userID)
}

// List returns one page of the user's feed, newest first
func (uc *notificationUC) List(ctx context.Context, userID uuid.UUID, page, limit int, unreadOnly bool) (*models.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := (page - 1) * limit

	items, total, err := uc.repo.ListByUser(ctx, userID, limit, offset, unreadOnly)
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationPage{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
		Page:          page,
		Limit:         limit,
	}, nil
}
