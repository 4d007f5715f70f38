package safety

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// PanicRepo defines the interface for panic alert data access.
// CreatePanicAlert bumps the parent trip's panic counter in the same
// transaction as the insert. ResolvePanicAlert is conditional on the
// alert still being open; a false return with a nil error means it was
// already resolved.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/blincar/blincar/services/safety PanicRepo
type PanicRepo interface {
	CreatePanicAlert(ctx context.Context, alert *models.PanicAlert) error
	GetPanicAlert(ctx context.Context, alertID uuid.UUID) (*models.PanicAlert, error)
	ResolvePanicAlert(ctx context.Context, alertID, adminID uuid.UUID, notes string) (bool, error)
	ListActive(ctx context.Context) ([]*models.PanicAlert, error)
}
