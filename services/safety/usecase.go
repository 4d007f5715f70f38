package safety

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// PanicUC defines the interface for panic alert business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/blincar/blincar/services/safety PanicUC
type PanicUC interface {
	RaisePanicAlert(ctx context.Context, userID uuid.UUID, alertType models.PanicAlertType, req *models.PanicAlertCreate) (*models.PanicAlert, error)
	ResolvePanicAlert(ctx context.Context, alertID, adminID uuid.UUID, actorRole string, notes string) (*models.PanicAlert, error)
	ListActive(ctx context.Context, actorRole string) ([]*models.PanicAlert, error)
}
