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

// UserRepo provides read access to user profiles and the audience
// queries the dispatcher needs. Audience resolution always reads the
// store, never a process-local cache, so it stays correct across
// instances.
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *UserRepo) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(r.cfg.Database.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, apperrors.ErrStorageUnavailable)
}

const userColumns = `
	id, email, phone, first_name, last_name, role, status, driver_status,
	emergency_contact_name, emergency_contact_phone, created_at, updated_at
`

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, storageErr("get user", err)
	}

	return user, nil
}

// AdminIDs returns the IDs of every active admin
func (r *UserRepo) AdminIDs(ctx context.Context) ([]uuid.UUID, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT id FROM users WHERE role = $1 AND status = $2`

	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids, query, models.RoleAdmin, models.UserStatusActive); err != nil {
		return nil, storageErr("list admin ids", err)
	}
	return ids, nil
}

// AvailableDriverIDs returns the IDs of every active driver currently
// marked available. Proximity filtering is a future refinement; today
// the whole available set is notified.
func (r *UserRepo) AvailableDriverIDs(ctx context.Context) ([]uuid.UUID, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT id FROM users WHERE role = $1 AND status = $2 AND driver_status = $3`

	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids, query, models.RoleDriver, models.UserStatusActive, models.DriverStatusAvailable); err != nil {
		return nil, storageErr("list available driver ids", err)
	}
	return ids, nil
}
