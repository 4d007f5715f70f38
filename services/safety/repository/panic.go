package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/models"
)

// PanicRepo provides access to the panic alert ledger
type PanicRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPanicRepository creates a new panic alert repository
func NewPanicRepository(cfg *models.Config, db *sqlx.DB) *PanicRepo {
	return &PanicRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *PanicRepo) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(r.cfg.Database.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, apperrors.ErrStorageUnavailable)
}

const panicColumns = `
	id, trip_id, user_id, alert_type, location, is_resolved,
	resolved_by, resolved_at, admin_notes, emergency_contact_notified, created_at
`

// CreatePanicAlert inserts a new alert and bumps the parent trip's
// panic counter in the same transaction.
func (r *PanicRepo) CreatePanicAlert(ctx context.Context, alert *models.PanicAlert) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin create panic alert", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO panic_alerts (
			id, trip_id, user_id, alert_type, location, is_resolved,
			emergency_contact_notified, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(
		ctx,
		insertQuery,
		alert.ID,
		alert.TripID,
		alert.UserID,
		alert.AlertType,
		alert.Location,
		alert.IsResolved,
		alert.EmergencyContactNotified,
		alert.CreatedAt,
	)
	if err != nil {
		return storageErr("create panic alert", err)
	}

	counterQuery := `UPDATE trips SET panic_alert_count = panic_alert_count + 1, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, counterQuery, alert.TripID); err != nil {
		return storageErr("increment panic alert count", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit create panic alert", err)
	}
	return nil
}

// GetPanicAlert retrieves an alert by ID
func (r *PanicRepo) GetPanicAlert(ctx context.Context, alertID uuid.UUID) (*models.PanicAlert, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + panicColumns + ` FROM panic_alerts WHERE id = $1`

	alert := &models.PanicAlert{}
	err := r.db.GetContext(ctx, alert, query, alertID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("panic alert %s: %w", alertID, apperrors.ErrNotFound)
		}
		return nil, storageErr("get panic alert", err)
	}

	return alert, nil
}

// ResolvePanicAlert conditionally closes a still-open alert. It reports
// false when the alert was already resolved.
func (r *PanicRepo) ResolvePanicAlert(ctx context.Context, alertID, adminID uuid.UUID, notes string) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE panic_alerts
		SET is_resolved = TRUE, resolved_by = $1, resolved_at = NOW(), admin_notes = $2
		WHERE id = $3 AND is_resolved = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, adminID, notes, alertID)
	if err != nil {
		return false, storageErr("resolve panic alert", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("rows affected", err)
	}
	return affected > 0, nil
}

// ListActive returns unresolved alerts, newest first
func (r *PanicRepo) ListActive(ctx context.Context) ([]*models.PanicAlert, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + panicColumns + ` FROM panic_alerts WHERE is_resolved = FALSE ORDER BY created_at DESC`

	alerts := []*models.PanicAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query); err != nil {
		return nil, storageErr("list active panic alerts", err)
	}
	return alerts, nil
}
