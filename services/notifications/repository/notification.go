package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/models"
)

// NotificationRepo provides access to the notification ledger
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *NotificationRepo) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(r.cfg.Database.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, apperrors.ErrStorageUnavailable)
}

const notificationColumns = `
	id, user_id, type, title, body, trip_id, data,
	is_read, is_push_sent, push_sent_at, created_at
`

// CreateNotification inserts a durable notification record
func (r *NotificationRepo) CreateNotification(ctx context.Context, n *models.Notification) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO notifications (
			id, user_id, type, title, body, trip_id, data,
			is_read, is_push_sent, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, FALSE, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		n.ID,
		n.UserID,
		n.Type,
		n.Title,
		n.Body,
		n.TripID,
		n.Data,
		n.CreatedAt,
	)
	if err != nil {
		return storageErr("create notification", err)
	}

	return nil
}

// MarkPushSent records a successful push delivery on the record
func (r *NotificationRepo) MarkPushSent(ctx context.Context, notificationID uuid.UUID) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `UPDATE notifications SET is_push_sent = TRUE, push_sent_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, notificationID); err != nil {
		return storageErr("mark push sent", err)
	}
	return nil
}

// MarkRead marks a notification as read for its owner. It reports false
// when the record does not exist or belongs to another user.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return false, storageErr("mark notification read", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("rows affected", err)
	}
	return affected > 0, nil
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, storageErr("mark all notifications read", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr("rows affected", err)
	}
	return int(affected), nil
}

// ListByUser returns one page of the user's notifications, newest
// first, along with the total matching count
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]*models.Notification, int, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	filter := `WHERE user_id = $1`
	if unreadOnly {
		filter += ` AND is_read = FALSE`
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM notifications ` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, storageErr("count notifications", err)
	}

	listQuery := `SELECT ` + notificationColumns + ` FROM notifications ` + filter +
		` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	items := []*models.Notification{}
	if err := r.db.SelectContext(ctx, &items, listQuery, userID, limit, offset); err != nil {
		return nil, 0, storageErr("list notifications", err)
	}
	return items, total, nil
}

// CountUnread returns how many of the user's notifications are unread
func (r *NotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, storageErr("count unread notifications", err)
	}
	return count, nil
}
