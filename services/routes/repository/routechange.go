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

// RouteChangeRepo provides access to the route change ledger
type RouteChangeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRouteChangeRepository creates a new route change repository
func NewRouteChangeRepository(cfg *models.Config, db *sqlx.DB) *RouteChangeRepo {
	return &RouteChangeRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *RouteChangeRepo) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(r.cfg.Database.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, apperrors.ErrStorageUnavailable)
}

const routeChangeColumns = `
	id, trip_id, driver_id, original_route, new_route, reason,
	approval_status, admin_notified, responded_at, created_at
`

// CreateRouteChange inserts a new pending route change request
func (r *RouteChangeRepo) CreateRouteChange(ctx context.Context, rc *models.RouteChangeRequest) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO route_change_requests (
			id, trip_id, driver_id, original_route, new_route, reason,
			approval_status, admin_notified, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		rc.ID,
		rc.TripID,
		rc.DriverID,
		rc.OriginalRoute,
		rc.NewRoute,
		rc.Reason,
		rc.ApprovalStatus,
		rc.AdminNotified,
		rc.CreatedAt,
	)
	if err != nil {
		return storageErr("create route change", err)
	}

	return nil
}

// GetRouteChange retrieves a route change request by ID
func (r *RouteChangeRepo) GetRouteChange(ctx context.Context, changeID uuid.UUID) (*models.RouteChangeRequest, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + routeChangeColumns + ` FROM route_change_requests WHERE id = $1`

	rc := &models.RouteChangeRequest{}
	err := r.db.GetContext(ctx, rc, query, changeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("route change %s: %w", changeID, apperrors.ErrNotFound)
		}
		return nil, storageErr("get route change", err)
	}

	return rc, nil
}

// ResolveRouteChange conditionally records the passenger's verdict on a
// still-pending request. It reports false when the request was already
// resolved.
func (r *RouteChangeRepo) ResolveRouteChange(ctx context.Context, changeID uuid.UUID, status models.ApprovalStatus, adminNotified bool) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE route_change_requests
		SET approval_status = $1, admin_notified = $2, responded_at = NOW()
		WHERE id = $3 AND approval_status = $4
	`

	result, err := r.db.ExecContext(ctx, query, status, adminNotified, changeID, models.ApprovalStatusPending)
	if err != nil {
		return false, storageErr("resolve route change", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("rows affected", err)
	}
	return affected > 0, nil
}

// ListRejected returns rejected route change requests, newest first
func (r *RouteChangeRepo) ListRejected(ctx context.Context) ([]*models.RouteChangeRequest, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + routeChangeColumns + ` FROM route_change_requests WHERE approval_status = $1 ORDER BY created_at DESC`

	rcs := []*models.RouteChangeRequest{}
	if err := r.db.SelectContext(ctx, &rcs, query, models.ApprovalStatusRejected); err != nil {
		return nil, storageErr("list rejected route changes", err)
	}
	return rcs, nil
}
