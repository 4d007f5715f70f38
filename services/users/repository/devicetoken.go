package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/database"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
)

const tokenCacheTTL = 10 * time.Minute

// DeviceTokenRepo is the push token registry. Reads go through a Redis
// cache; the store stays authoritative and retirement invalidates the
// cache entry.
type DeviceTokenRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewDeviceTokenRepository creates a new device token repository
func NewDeviceTokenRepository(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *DeviceTokenRepo {
	return &DeviceTokenRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

func (r *DeviceTokenRepo) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(r.cfg.Database.QueryTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// ActiveTokensByUser returns the user's active push tokens. A cache
// miss or error falls through to the store.
func (r *DeviceTokenRepo) ActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	cacheKey := fmt.Sprintf(constants.KeyDeviceTokens, userID)

	if cached, err := r.cache.Get(ctx, cacheKey); err == nil {
		var tokens []string
		if err := json.Unmarshal([]byte(cached), &tokens); err == nil {
			return tokens, nil
		}
	}

	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `SELECT token FROM device_tokens WHERE user_id = $1 AND is_active = TRUE`

	tokens := []string{}
	if err := r.db.SelectContext(qctx, &tokens, query, userID); err != nil {
		return nil, storageErr("list device tokens", err)
	}

	if encoded, err := json.Marshal(tokens); err == nil {
		if err := r.cache.Set(ctx, cacheKey, encoded, tokenCacheTTL); err != nil {
			logger.Debug("Failed to cache device tokens",
				logger.String("user_id", userID.String()),
				logger.Err(err))
		}
	}

	return tokens, nil
}

// DeactivateToken retires a token the push provider reported invalid
// and drops the owner's cache entry
func (r *DeviceTokenRepo) DeactivateToken(ctx context.Context, token string) error {
	qctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var userID uuid.UUID
	query := `UPDATE device_tokens SET is_active = FALSE WHERE token = $1 RETURNING user_id`
	if err := r.db.GetContext(qctx, &userID, query, token); err != nil {
		if err == sql.ErrNoRows {
			return nil // already gone
		}
		return storageErr("deactivate device token", err)
	}

	cacheKey := fmt.Sprintf(constants.KeyDeviceTokens, userID)
	if err := r.cache.Delete(ctx, cacheKey); err != nil {
		logger.Debug("Failed to invalidate device token cache",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
	return nil
}
