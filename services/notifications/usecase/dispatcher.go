package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/notifications"
)

// dispatcherUC implements the notifications.DispatcherUC interface
type dispatcherUC struct {
	cfg       *models.Config
	repo      notifications.NotificationRepo
	tripGW    notifications.TripGetter
	resolver  notifications.RecipientResolver
	tokens    notifications.TokenRegistry
	push      notifications.PushGateway
	publisher notifications.EventPublisher
	presence  notifications.Presence
}

// NewDispatcherUC creates a new notification dispatcher
func NewDispatcherUC(
	cfg *models.Config,
	repo notifications.NotificationRepo,
	tripGW notifications.TripGetter,
	resolver notifications.RecipientResolver,
	tokens notifications.TokenRegistry,
	push notifications.PushGateway,
	publisher notifications.EventPublisher,
	presence notifications.Presence,
) notifications.DispatcherUC {
	return &dispatcherUC{
		cfg:       cfg,
		repo:      repo,
		tripGW:    tripGW,
		resolver:  resolver,
		tokens:    tokens,
		push:      push,
		publisher: publisher,
		presence:  presence,
	}
}

// Dispatch resolves the event's audience and delivers to every
// recipient independently, with bounded parallelism. A recipient counts
// as failed when its durable record cannot be written or both delivery
// channels come up empty; one recipient's failure never affects
// another's delivery.
func (uc *dispatcherUC) Dispatch(ctx context.Context, event models.DomainEvent) (*models.DispatchResult, error) {
	trip, err := uc.tripGW.GetTrip(ctx, event.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip for dispatch: %w", err)
	}

	recipients, err := uc.resolveRecipients(ctx, event, trip)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}

	maxConcurrent := uc.cfg.Dispatch.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 16
	}
	sem := make(chan struct{}, maxConcurrent)

	var (
		wg       sync.WaitGroup
		failures int32
	)
	for _, recipientID := range recipients {
		wg.Add(1)
		sem <- struct{}{}
		go func(recipientID uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := uc.deliverTo(ctx, recipientID, event, trip); err != nil {
				atomic.AddInt32(&failures, 1)
				logger.Warn("Delivery failed for recipient",
					logger.String("event_type", string(event.Type)),
					logger.String("recipient_id", recipientID.String()),
					logger.Err(err))
			}
		}(recipientID)
	}
	wg.Wait()

	// Downstream consumers hear about the event regardless of delivery
	// outcomes
	if err := uc.publisher.PublishEvent(ctx, subjectFor(event.Type), event); err != nil {
		logger.Warn("Failed to publish domain event",
			logger.String("event_type", string(event.Type)),
			logger.String("trip_id", event.TripID.String()),
			logger.Err(err))
	}

	failed := int(atomic.LoadInt32(&failures))
	return &models.DispatchResult{
		Recipients:   len(recipients),
		SuccessCount: len(recipients) - failed,
		FailureCount: failed,
	}, nil
}

// resolveRecipients maps an event type to its audience
func (uc *dispatcherUC) resolveRecipients(ctx context.Context, event models.DomainEvent, trip *models.Trip) ([]uuid.UUID, error) {
	switch event.Type {
	case models.NotificationTripRequest:
		return uc.resolver.AvailableDriverIDs(ctx)

	case models.NotificationTripAccepted, models.NotificationDriverArrived,
		models.NotificationTripStarted, models.NotificationRouteChangeRequest:
		return []uuid.UUID{trip.PassengerID}, nil

	case models.NotificationTripCompleted:
		recipients := []uuid.UUID{trip.PassengerID}
		if trip.DriverID.Valid {
			recipients = append(recipients, trip.DriverID.UUID)
		}
		return recipients, nil

	case models.NotificationTripCancelled:
		// The counterparty of whoever cancelled; an admin cancel
		// notifies both participants
		var recipients []uuid.UUID
		if event.ActorID != trip.PassengerID {
			recipients = append(recipients, trip.PassengerID)
		}
		if trip.DriverID.Valid && event.ActorID != trip.DriverID.UUID {
			recipients = append(recipients, trip.DriverID.UUID)
		}
		return recipients, nil

	case models.NotificationRouteChangeReject, models.NotificationPanicAlert:
		return uc.resolver.AdminIDs(ctx)

	default:
		return nil, fmt.Errorf("unknown event type %q", event.Type)
	}
}

// deliverTo runs the per-recipient protocol: durable record first, then
// the live and push channels. Socket absence is expected and silent.
func (uc *dispatcherUC) deliverTo(ctx context.Context, recipientID uuid.UUID, event models.DomainEvent, trip *models.Trip) error {
	msg := renderMessage(event, trip, recipientID)

	record := &models.Notification{
		ID:        uuid.New(),
		UserID:    recipientID,
		Type:      event.Type,
		Title:     msg.Title,
		Body:      msg.Body,
		TripID:    uuid.NullUUID{UUID: trip.ID, Valid: true},
		Data:      msg.Data,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateNotification(ctx, record); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	delivered := uc.presence.NotifyUser(recipientID, constants.EventNotification, models.NotificationFrame{
		RecordID:  record.ID,
		Type:      record.Type,
		Title:     record.Title,
		Body:      record.Body,
		Data:      record.Data,
		Timestamp: record.CreatedAt,
	})
	if !delivered {
		logger.Debug("Recipient has no live connection, push only",
			logger.String("recipient_id", recipientID.String()),
			logger.String("event_type", string(event.Type)))
	}

	if err := uc.pushTo(ctx, recipientID, record, msg); err != nil {
		// The live socket already carried the frame; the recipient is
		// only degraded when both channels failed
		if delivered {
			logger.Warn("Push delivery failed for connected recipient",
				logger.String("recipient_id", recipientID.String()),
				logger.String("event_type", string(event.Type)),
				logger.Err(err))
			return nil
		}
		return err
	}
	return nil
}

// pushTo attempts push delivery and settles the record's push state
func (uc *dispatcherUC) pushTo(ctx context.Context, recipientID uuid.UUID, record *models.Notification, msg models.Message) error {
	deviceTokens, err := uc.tokens.ActiveTokensByUser(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("failed to resolve device tokens: %w", err)
	}
	if len(deviceTokens) == 0 {
		return nil
	}

	result, err := uc.push.Send(ctx, deviceTokens, msg)
	if err != nil {
		return fmt.Errorf("push gateway: %w", err)
	}

	for _, token := range result.InvalidTokens {
		if err := uc.tokens.DeactivateToken(ctx, token); err != nil {
			logger.Warn("Failed to retire invalid device token",
				logger.String("user_id", recipientID.String()),
				logger.Err(err))
		}
	}

	if result.SuccessCount > 0 {
		if err := uc.repo.MarkPushSent(ctx, record.ID); err != nil {
			logger.Warn("Failed to mark notification as pushed",
				logger.String("notification_id", record.ID.String()),
				logger.Err(err))
		}
	}
	return nil
}

// renderMessage builds the per-recipient title and body for an event
func renderMessage(event models.DomainEvent, trip *models.Trip, recipientID uuid.UUID) models.Message {
	data := models.NotificationData{"trip_id": trip.ID.String()}
	for k, v := range event.Data {
		data[k] = v
	}

	var title, body string
	switch event.Type {
	case models.NotificationTripRequest:
		title = "New trip request"
		body = fmt.Sprintf("Pickup at %s, heading to %s", trip.OriginAddress, trip.DestinationAddress)

	case models.NotificationTripAccepted:
		title = "Trip accepted"
		body = "Your driver is on the way"
		if name, ok := event.Data["driver_name"].(string); ok && name != "" {
			body = fmt.Sprintf("%s is on the way", name)
		}

	case models.NotificationDriverArrived:
		title = "Driver arrived"
		body = "Your driver is waiting at the pickup point"

	case models.NotificationTripStarted:
		title = "Trip started"
		body = "Your trip is now in progress"

	case models.NotificationTripCompleted:
		title = "Trip completed"
		if trip.DriverID.Valid && recipientID == trip.DriverID.UUID {
			body = "The trip has been completed"
		} else {
			body = "You have arrived at your destination"
		}
		if price, ok := event.Data["actual_price"].(float64); ok {
			body = fmt.Sprintf("%s. Final fare: %.2f", body, price)
		}

	case models.NotificationTripCancelled:
		title = "Trip cancelled"
		body = "The trip has been cancelled"
		if by, ok := event.Data["cancelled_by"].(string); ok && by != "" {
			body = fmt.Sprintf("The trip has been cancelled by the %s", by)
		}
		if reason, ok := event.Data["reason"].(string); ok && reason != "" {
			body = fmt.Sprintf("%s: %s", body, reason)
		}

	case models.NotificationRouteChangeRequest:
		title = "Route change requested"
		body = "Your driver proposes a different route"
		if route, ok := event.Data["new_route"].(string); ok && route != "" {
			body = fmt.Sprintf("Your driver proposes a new route: %s", route)
		}

	case models.NotificationRouteChangeReject:
		title = "Route change rejected"
		body = "A passenger rejected a route change and the trip needs review"

	case models.NotificationPanicAlert:
		title = "Panic alert"
		body = fmt.Sprintf("A panic alert was raised on trip %s", trip.ID)

	default:
		title = string(event.Type)
		body = fmt.Sprintf("Update on trip %s", trip.ID)
	}

	return models.Message{Title: title, Body: body, Data: data}
}

// subjectFor maps an event type to its messaging subject
func subjectFor(t models.NotificationType) string {
	switch t {
	case models.NotificationTripRequest:
		return constants.SubjectTripRequested
	case models.NotificationTripAccepted:
		return constants.SubjectTripAccepted
	case models.NotificationDriverArrived:
		return constants.SubjectTripArrived
	case models.NotificationTripStarted:
		return constants.SubjectTripStarted
	case models.NotificationTripCompleted:
		return constants.SubjectTripCompleted
	case models.NotificationTripCancelled:
		return constants.SubjectTripCancelled
	case models.NotificationRouteChangeRequest:
		return constants.SubjectRouteChangeRequested
	case models.NotificationRouteChangeReject:
		return constants.SubjectRouteChangeResolved
	case models.NotificationPanicAlert:
		return constants.SubjectPanicRaised
	default:
		return "notification." + string(t)
	}
}
