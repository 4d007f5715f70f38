package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	userGW   trips.UserGetter
	notifier trips.Notifier
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	userGW trips.UserGetter,
	notifier trips.Notifier,
) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		userGW:   userGW,
		notifier: notifier,
	}
}

// RequestTrip creates a new trip in the requested state and notifies
// available drivers.
func (uc *tripUC) RequestTrip(ctx context.Context, passengerID uuid.UUID, req *models.TripRequest) (*models.Trip, error) {
	if req.OriginAddress == "" || req.DestinationAddress == "" {
		return nil, fmt.Errorf("origin and destination addresses are required: %w", apperrors.ErrValidation)
	}

	trip := &models.Trip{
		ID:                     uuid.New(),
		PassengerID:            passengerID,
		Status:                 models.TripStatusRequested,
		OriginAddress:          req.OriginAddress,
		DestinationAddress:     req.DestinationAddress,
		OriginCoordinates:      req.OriginCoordinates,
		DestinationCoordinates: req.DestinationCoordinates,
		EstimatedPrice:         req.EstimatedPrice,
		RequestedAt:            time.Now(),
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	uc.dispatch(ctx, models.NotificationTripRequest, trip, passengerID, models.NotificationData{
		"origin":          trip.OriginAddress,
		"destination":     trip.DestinationAddress,
		"estimated_price": trip.EstimatedPrice,
	})

	return trip, nil
}

// AcceptTrip assigns an available driver to a requested trip
func (uc *tripUC) AcceptTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error) {
	driver, err := uc.userGW.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver: %w", err)
	}
	if driver.Role != models.RoleDriver || driver.Status != models.UserStatusActive {
		return nil, fmt.Errorf("user %s cannot accept trips: %w", driverID, apperrors.ErrUnauthorized)
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusRequested {
		return nil, fmt.Errorf("trip %s is %s, not requested: %w", tripID, trip.Status, apperrors.ErrInvalidTransition)
	}

	applied, err := uc.tripRepo.AcceptTrip(ctx, tripID, driverID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("trip %s was modified concurrently: %w", tripID, apperrors.ErrConflict)
	}

	trip, err = uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, models.NotificationTripAccepted, trip, driverID, models.NotificationData{
		"driver_name": driver.DisplayName(),
	})

	return trip, nil
}

// NotifyDriverArrived signals the passenger that the assigned driver is
// waiting at the pickup point. The trip state does not change.
func (uc *tripUC) NotifyDriverArrived(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.DriverID.Valid || trip.DriverID.UUID != driverID {
		return nil, fmt.Errorf("user %s is not the assigned driver: %w", driverID, apperrors.ErrUnauthorized)
	}
	if trip.Status != models.TripStatusAccepted {
		return nil, fmt.Errorf("trip %s is %s, not accepted: %w", tripID, trip.Status, apperrors.ErrInvalidTransition)
	}

	uc.dispatch(ctx, models.NotificationDriverArrived, trip, driverID, nil)

	return trip, nil
}

// StartTrip moves an accepted trip to in_progress
func (uc *tripUC) StartTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.DriverID.Valid || trip.DriverID.UUID != driverID {
		return nil, fmt.Errorf("user %s is not the assigned driver: %w", driverID, apperrors.ErrUnauthorized)
	}
	if trip.Status != models.TripStatusAccepted {
		return nil, fmt.Errorf("trip %s is %s, not accepted: %w", tripID, trip.Status, apperrors.ErrInvalidTransition)
	}

	applied, err := uc.tripRepo.StartTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("trip %s was modified concurrently: %w", tripID, apperrors.ErrConflict)
	}

	trip, err = uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, models.NotificationTripStarted, trip, driverID, nil)

	return trip, nil
}

// CompleteTrip finishes an in-progress trip. When no actual price is
// supplied the estimate becomes the final price.
func (uc *tripUC) CompleteTrip(ctx context.Context, tripID, driverID uuid.UUID, actualPrice *float64) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.DriverID.Valid || trip.DriverID.UUID != driverID {
		return nil, fmt.Errorf("user %s is not the assigned driver: %w", driverID, apperrors.ErrUnauthorized)
	}
	if trip.Status != models.TripStatusInProgress {
		return nil, fmt.Errorf("trip %s is %s, not in_progress: %w", tripID, trip.Status, apperrors.ErrInvalidTransition)
	}

	price := trip.EstimatedPrice
	if actualPrice != nil {
		price = *actualPrice
	}

	applied, err := uc.tripRepo.CompleteTrip(ctx, tripID, &price)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("trip %s was modified concurrently: %w", tripID, apperrors.ErrConflict)
	}

	trip, err = uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, models.NotificationTripCompleted, trip, driverID, models.NotificationData{
		"actual_price": price,
	})

	return trip, nil
}

// CancelTrip aborts a trip from any non-terminal state. Passengers and
// assigned drivers may cancel their own trips; admins may cancel any.
func (uc *tripUC) CancelTrip(ctx context.Context, tripID, actorID uuid.UUID, actorRole, reason string) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if actorRole != models.RoleAdmin && !trip.IsParticipant(actorID) {
		return nil, fmt.Errorf("user %s may not cancel trip %s: %w", actorID, tripID, apperrors.ErrUnauthorized)
	}
	if trip.Status.Terminal() {
		return nil, fmt.Errorf("trip %s is already %s: %w", tripID, trip.Status, apperrors.ErrInvalidTransition)
	}

	applied, err := uc.tripRepo.CancelTrip(ctx, tripID, actorRole, reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("trip %s was modified concurrently: %w", tripID, apperrors.ErrConflict)
	}

	trip, err = uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.dispatch(ctx, models.NotificationTripCancelled, trip, actorID, models.NotificationData{
		"cancelled_by": actorRole,
		"reason":       reason,
	})

	return trip, nil
}

// GetTrip returns a trip visible to its participants and admins
func (uc *tripUC) GetTrip(ctx context.Context, tripID, actorID uuid.UUID, actorRole string) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if actorRole != models.RoleAdmin && !trip.IsParticipant(actorID) {
		return nil, fmt.Errorf("user %s may not view trip %s: %w", actorID, tripID, apperrors.ErrUnauthorized)
	}
	return trip, nil
}

// ListTrips returns the actor's trips, newest first. Admins see all trips.
func (uc *tripUC) ListTrips(ctx context.Context, actorID uuid.UUID, actorRole string) ([]*models.Trip, error) {
	switch actorRole {
	case models.RoleDriver:
		return uc.tripRepo.ListByDriver(ctx, actorID)
	case models.RoleAdmin:
		return uc.tripRepo.ListAll(ctx)
	default:
		return uc.tripRepo.ListByPassenger(ctx, actorID)
	}
}

// dispatch hands the event to the notification dispatcher. Delivery is
// best-effort from the trip engine's point of view: a degraded dispatch
// never fails the state transition that triggered it.
func (uc *tripUC) dispatch(ctx context.Context, eventType models.NotificationType, trip *models.Trip, actorID uuid.UUID, data models.NotificationData) {
	event := models.DomainEvent{
		Type:       eventType,
		TripID:     trip.ID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
		Data:       data,
	}

	result, err := uc.notifier.Dispatch(ctx, event)
	if err != nil {
		logger.Warn("Notification dispatch failed",
			logger.String("event_type", string(eventType)),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
		return
	}
	if result.FailureCount > 0 {
		logger.Warn("Notification dispatch degraded",
			logger.String("event_type", string(eventType)),
			logger.String("trip_id", trip.ID.String()),
			logger.Int("success_count", result.SuccessCount),
			logger.Int("failure_count", result.FailureCount))
	}
}
