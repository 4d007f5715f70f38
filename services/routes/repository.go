package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/models"
)

// RouteChangeRepo defines the interface for route change data access.
// ResolveRouteChange is conditional on the request still being pending;
// a false return with a nil error means another writer resolved it.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/blincar/blincar/services/routes RouteChangeRepo
type RouteChangeRepo interface {
	CreateRouteChange(ctx context.Context, rc *models.RouteChangeRequest) error
	GetRouteChange(ctx context.Context, changeID uuid.UUID) (*models.RouteChangeRequest, error)
	ResolveRouteChange(ctx context.Context, changeID uuid.UUID, status models.ApprovalStatus, adminNotified bool) (bool, error)
	ListRejected(ctx context.Context) ([]*models.RouteChangeRequest, error)
}
