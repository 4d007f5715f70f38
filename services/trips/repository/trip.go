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

// TripRepo provides access to the trips ledger
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// queryCtx bounds a single statement with the configured query timeout
func (r *TripRepo) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(r.cfg.Database.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// storageErr maps a driver error onto the storage sentinel, preserving
// the underlying message for logs
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, apperrors.ErrStorageUnavailable)
}

// CreateTrip inserts a new trip into the ledger
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO trips (
			id, passenger_id, status,
			origin_address, destination_address,
			origin_coordinates, destination_coordinates,
			estimated_price, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.PassengerID,
		trip.Status,
		trip.OriginAddress,
		trip.DestinationAddress,
		trip.OriginCoordinates,
		trip.DestinationCoordinates,
		trip.EstimatedPrice,
		trip.RequestedAt,
	)
	if err != nil {
		return storageErr("create trip", err)
	}

	return nil
}

const tripColumns = `
	id, passenger_id, driver_id, status,
	origin_address, destination_address,
	origin_coordinates, destination_coordinates,
	estimated_price, actual_price,
	requested_at, accepted_at, started_at, completed_at, cancelled_at,
	cancelled_by, cancel_reason, route_change_count, panic_alert_count
`

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, query, tripID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip %s: %w", tripID, apperrors.ErrNotFound)
		}
		return nil, storageErr("get trip", err)
	}

	return trip, nil
}

// ListByPassenger returns the passenger's trips, newest first
func (r *TripRepo) ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Trip, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM trips WHERE passenger_id = $1 ORDER BY requested_at DESC`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, passengerID); err != nil {
		return nil, storageErr("list trips by passenger", err)
	}
	return trips, nil
}

// ListByDriver returns the driver's trips, newest first
func (r *TripRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY requested_at DESC`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, driverID); err != nil {
		return nil, storageErr("list trips by driver", err)
	}
	return trips, nil
}

// ListAll returns every trip, newest first
func (r *TripRepo) ListAll(ctx context.Context) ([]*models.Trip, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY requested_at DESC`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query); err != nil {
		return nil, storageErr("list all trips", err)
	}
	return trips, nil
}

// AcceptTrip conditionally assigns a driver to a requested trip. It
// reports false when the trip left the requested state first.
func (r *TripRepo) AcceptTrip(ctx context.Context, tripID, driverID uuid.UUID) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE trips
		SET driver_id = $1, status = $2, accepted_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, driverID, models.TripStatusAccepted, tripID, models.TripStatusRequested)
	if err != nil {
		return false, storageErr("accept trip", err)
	}

	return rowChanged(result)
}

// StartTrip conditionally moves an accepted trip to in_progress
func (r *TripRepo) StartTrip(ctx context.Context, tripID uuid.UUID) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE trips
		SET status = $1, started_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStatusInProgress, tripID, models.TripStatusAccepted)
	if err != nil {
		return false, storageErr("start trip", err)
	}

	return rowChanged(result)
}

// CompleteTrip conditionally finishes an in-progress trip
func (r *TripRepo) CompleteTrip(ctx context.Context, tripID uuid.UUID, actualPrice *float64) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE trips
		SET status = $1, actual_price = $2, completed_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.TripStatusCompleted, actualPrice, tripID, models.TripStatusInProgress)
	if err != nil {
		return false, storageErr("complete trip", err)
	}

	return rowChanged(result)
}

// CancelTrip conditionally aborts a trip from any non-terminal state
func (r *TripRepo) CancelTrip(ctx context.Context, tripID uuid.UUID, cancelledBy, reason string) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE trips
		SET status = $1, cancelled_at = NOW(), cancelled_by = $2, cancel_reason = $3
		WHERE id = $4 AND status NOT IN ($5, $6)
	`

	result, err := r.db.ExecContext(
		ctx, query,
		models.TripStatusCancelled, cancelledBy, reason,
		tripID, models.TripStatusCompleted, models.TripStatusCancelled,
	)
	if err != nil {
		return false, storageErr("cancel trip", err)
	}

	return rowChanged(result)
}

// IncrementRouteChangeCount bumps the trip's route change counter
func (r *TripRepo) IncrementRouteChangeCount(ctx context.Context, tripID uuid.UUID) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `UPDATE trips SET route_change_count = route_change_count + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, tripID); err != nil {
		return storageErr("increment route change count", err)
	}
	return nil
}

func rowChanged(result sql.Result) (bool, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return false, storageErr("rows affected", err)
	}
	return affected > 0, nil
}
