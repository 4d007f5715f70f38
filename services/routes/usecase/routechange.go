package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/routes"
)

// routeChangeUC implements the routes.RouteChangeUC interface
type routeChangeUC struct {
	cfg      *models.Config
	rcRepo   routes.RouteChangeRepo
	tripGW   routes.TripAccess
	notifier routes.Notifier
	presence routes.Presence
}

// NewRouteChangeUC creates a new route change use case
func NewRouteChangeUC(
	cfg *models.Config,
	rcRepo routes.RouteChangeRepo,
	tripGW routes.TripAccess,
	notifier routes.Notifier,
	presence routes.Presence,
) routes.RouteChangeUC {
	return &routeChangeUC{
		cfg:      cfg,
		rcRepo:   rcRepo,
		tripGW:   tripGW,
		notifier: notifier,
		presence: presence,
	}
}

// RequestRouteChange records a driver's proposed route modification on
// an in-progress trip and asks the passenger for consent.
func (uc *routeChangeUC) RequestRouteChange(ctx context.Context, driverID uuid.UUID, req *models.RouteChangeCreate) (*models.RouteChangeRequest, error) {
	if req.NewRoute == "" || req.Reason == "" {
		return nil, fmt.Errorf("new route and reason are required: %w", apperrors.ErrValidation)
	}

	trip, err := uc.tripGW.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if !trip.DriverID.Valid || trip.DriverID.UUID != driverID {
		return nil, fmt.Errorf("user %s is not the assigned driver: %w", driverID, apperrors.ErrUnauthorized)
	}
	if trip.Status != models.TripStatusInProgress {
		return nil, fmt.Errorf("trip %s is %s, not in_progress: %w", trip.ID, trip.Status, apperrors.ErrInvalidTransition)
	}

	rc := &models.RouteChangeRequest{
		ID:             uuid.New(),
		TripID:         trip.ID,
		DriverID:       driverID,
		OriginalRoute:  req.OriginalRoute,
		NewRoute:       req.NewRoute,
		Reason:         req.Reason,
		ApprovalStatus: models.ApprovalStatusPending,
		CreatedAt:      time.Now(),
	}

	if err := uc.rcRepo.CreateRouteChange(ctx, rc); err != nil {
		return nil, fmt.Errorf("failed to create route change request: %w", err)
	}

	// Advisory counter, a failed bump never unwinds the request
	if err := uc.tripGW.IncrementRouteChangeCount(ctx, trip.ID); err != nil {
		logger.Warn("Failed to increment route change counter",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	uc.dispatch(ctx, models.NotificationRouteChangeRequest, trip.ID, driverID, models.NotificationData{
		"route_change_id": rc.ID.String(),
		"new_route":       rc.NewRoute,
		"reason":          rc.Reason,
	})

	return rc, nil
}

// RespondToRouteChange records the passenger's verdict. A rejection
// flags the request for admin review and fans out to every admin.
func (uc *routeChangeUC) RespondToRouteChange(ctx context.Context, changeID, passengerID uuid.UUID, approved bool) (*models.RouteChangeRequest, error) {
	rc, err := uc.rcRepo.GetRouteChange(ctx, changeID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripGW.GetTrip(ctx, rc.TripID)
	if err != nil {
		return nil, err
	}
	if trip.PassengerID != passengerID {
		return nil, fmt.Errorf("user %s is not the trip's passenger: %w", passengerID, apperrors.ErrUnauthorized)
	}
	if rc.ApprovalStatus != models.ApprovalStatusPending {
		return nil, fmt.Errorf("route change %s is already %s: %w", changeID, rc.ApprovalStatus, apperrors.ErrInvalidTransition)
	}

	status := models.ApprovalStatusApproved
	adminNotified := false
	if !approved {
		status = models.ApprovalStatusRejected
		adminNotified = true
	}

	applied, err := uc.rcRepo.ResolveRouteChange(ctx, changeID, status, adminNotified)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("route change %s was resolved concurrently: %w", changeID, apperrors.ErrConflict)
	}

	rc, err = uc.rcRepo.GetRouteChange(ctx, changeID)
	if err != nil {
		return nil, err
	}

	if !approved {
		uc.dispatch(ctx, models.NotificationRouteChangeReject, trip.ID, passengerID, models.NotificationData{
			"route_change_id": rc.ID.String(),
			"new_route":       rc.NewRoute,
			"reason":          rc.Reason,
		})
	}

	// Ephemeral signal to the driver's live connections; the durable
	// channel is not used for the verdict itself
	uc.presence.NotifyUser(rc.DriverID, constants.EventRouteChangeResponse, map[string]interface{}{
		"route_change_id": rc.ID.String(),
		"trip_id":         rc.TripID.String(),
		"approved":        approved,
	})

	return rc, nil
}

// ListRejected returns rejected route changes awaiting admin review
func (uc *routeChangeUC) ListRejected(ctx context.Context, actorRole string) ([]*models.RouteChangeRequest, error) {
	if actorRole != models.RoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", apperrors.ErrUnauthorized)
	}
	return uc.rcRepo.ListRejected(ctx)
}

func (uc *routeChangeUC) dispatch(ctx context.Context, eventType models.NotificationType, tripID, actorID uuid.UUID, data models.NotificationData) {
	event := models.DomainEvent{
		Type:       eventType,
		TripID:     tripID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
		Data:       data,
	}

	result, err := uc.notifier.Dispatch(ctx, event)
	if err != nil {
		logger.Warn("Notification dispatch failed",
			logger.String("event_type", string(eventType)),
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
		return
	}
	if result.FailureCount > 0 {
		logger.Warn("Notification dispatch degraded",
			logger.String("event_type", string(eventType)),
			logger.String("trip_id", tripID.String()),
			logger.Int("success_count", result.SuccessCount),
			logger.Int("failure_count", result.FailureCount))
	}
}
