package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// RouteChangeUC defines the interface for route change business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/blincar/blincar/services/routes RouteChangeUC
type RouteChangeUC interface {
	RequestRouteChange(ctx context.Context, driverID uuid.UUID, req *models.RouteChangeCreate) (*models.RouteChangeRequest, error)
	RespondToRouteChange(ctx context.Context, changeID, passengerID uuid.UUID, approved bool) (*models.RouteChangeRequest, error)
	ListRejected(ctx context.Context, actorRole string) ([]*models.RouteChangeRequest, error)
}
