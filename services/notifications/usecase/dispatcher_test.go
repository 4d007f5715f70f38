package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/notifications/mocks"
)

type dispatcherTestDeps struct {
	repo      *mocks.MockNotificationRepo
	tripGW    *mocks.MockTripGetter
	resolver  *mocks.MockRecipientResolver
	tokens    *mocks.MockTokenRegistry
	push      *mocks.MockPushGateway
	publisher *mocks.MockEventPublisher
	presence  *mocks.MockPresence
}

func setupDispatcherTest(t *testing.T) (*dispatcherUC, dispatcherTestDeps, func()) {
	ctrl := gomock.NewController(t)
	deps := dispatcherTestDeps{
		repo:      mocks.NewMockNotificationRepo(ctrl),
		tripGW:    mocks.NewMockTripGetter(ctrl),
		resolver:  mocks.NewMockRecipientResolver(ctrl),
		tokens:    mocks.NewMockTokenRegistry(ctrl),
		push:      mocks.NewMockPushGateway(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		presence:  mocks.NewMockPresence(ctrl),
	}
	uc := NewDispatcherUC(&models.Config{}, deps.repo, deps.tripGW, deps.resolver,
		deps.tokens, deps.push, deps.publisher, deps.presence).(*dispatcherUC)
	return uc, deps, ctrl.Finish
}

func tripForDispatch() *models.Trip {
	return &models.Trip{
		ID:                 uuid.New(),
		PassengerID:        uuid.New(),
		DriverID:           uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Status:             models.TripStatusInProgress,
		OriginAddress:      "Jl. Sudirman 1",
		DestinationAddress: "Jl. Thamrin 10",
	}
}

func TestDispatch_TripRequestFansOutToAvailableDrivers(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	driverA := uuid.New()
	driverB := uuid.New()
	event := models.DomainEvent{
		Type:    models.NotificationTripRequest,
		TripID:  trip.ID,
		ActorID: trip.PassengerID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.resolver.EXPECT().AvailableDriverIDs(gomock.Any()).Return([]uuid.UUID{driverA, driverB}, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	deps.presence.EXPECT().NotifyUser(gomock.Any(), constants.EventNotification, gomock.Any()).Return(true).Times(2)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripRequested, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
}

func TestDispatch_RecordWrittenBeforePush(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationDriverArrived,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}
	tokens := []string{"tok-1"}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	var recordID uuid.UUID
	gomock.InOrder(
		deps.repo.EXPECT().
			CreateNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *models.Notification) error {
				recordID = n.ID
				assert.Equal(t, trip.PassengerID, n.UserID)
				assert.Equal(t, trip.ID, n.TripID.UUID)
				return nil
			}),
		deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return(tokens, nil),
		deps.push.EXPECT().
			Send(gomock.Any(), tokens, gomock.Any()).
			Return(&models.PushResult{SuccessCount: 1}, nil),
		deps.repo.EXPECT().
			MarkPushSent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) error {
				assert.Equal(t, recordID, id)
				return nil
			}),
	)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(true)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripArrived, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestDispatch_OfflineRecipientStillRecordedAndPushed(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripStarted,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}
	tokens := []string{"tok-1"}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(false)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return(tokens, nil)
	deps.push.EXPECT().Send(gomock.Any(), tokens, gomock.Any()).Return(&models.PushResult{SuccessCount: 1}, nil)
	deps.repo.EXPECT().MarkPushSent(gomock.Any(), gomock.Any()).Return(nil)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripStarted, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 0, result.FailureCount)
}

func TestDispatch_NoDeviceTokensIsNotAFailure(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripAccepted,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(true)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return([]string{}, nil)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripAccepted, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
}

func TestDispatch_OfflineRecipientPushErrorCountsAsFailure(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripStarted,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(false)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return([]string{"tok-1"}, nil)
	deps.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripStarted, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	// Both channels came up empty, so the recipient degrades the result,
	// but the dispatch itself never fails
	require.NoError(t, err)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, 0, result.SuccessCount)
}

func TestDispatch_ConnectedRecipientPushErrorIsNotAFailure(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripStarted,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(true)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return([]string{"tok-1"}, nil)
	deps.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripStarted, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	// The live socket carried the frame, so the failed push alone does
	// not degrade the recipient
	require.NoError(t, err)
	assert.Equal(t, 0, result.FailureCount)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestDispatch_InvalidTokensAreRetired(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationDriverArrived,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(true)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return([]string{"tok-live", "tok-stale"}, nil)
	deps.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.PushResult{
		SuccessCount:  1,
		FailureCount:  1,
		InvalidTokens: []string{"tok-stale"},
	}, nil)
	deps.tokens.EXPECT().DeactivateToken(gomock.Any(), "tok-stale").Return(nil)
	deps.repo.EXPECT().MarkPushSent(gomock.Any(), gomock.Any()).Return(nil)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripArrived, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestDispatch_CancelledByPassengerNotifiesDriverOnly(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripCancelled,
		TripID:  trip.ID,
		ActorID: trip.PassengerID,
		Data:    models.NotificationData{"cancelled_by": "passenger"},
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, trip.DriverID.UUID, n.UserID)
			return nil
		})
	deps.presence.EXPECT().NotifyUser(trip.DriverID.UUID, constants.EventNotification, gomock.Any()).Return(true)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.DriverID.UUID).Return(nil, nil)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripCancelled, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
}

func TestDispatch_AdminCancelNotifiesBothParticipants(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripCancelled,
		TripID:  trip.ID,
		ActorID: uuid.New(),
		Data:    models.NotificationData{"cancelled_by": "admin"},
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	deps.presence.EXPECT().NotifyUser(gomock.Any(), constants.EventNotification, gomock.Any()).Return(true).Times(2)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripCancelled, event).Return(nil)

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
}

func TestDispatch_PanicAlertGoesToAdmins(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	adminID := uuid.New()
	event := models.DomainEvent{
		Type:    models.NotificationPanicAlert,
		TripID:  trip.ID,
		ActorID: trip.PassengerID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.resolver.EXPECT().AdminIDs(gomock.Any()).Return([]uuid.UUID{adminID}, nil)
	deps.repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, adminID, n.UserID)
			return nil
		})
	deps.presence.EXPECT().NotifyUser(adminID, constants.EventNotification, gomock.Any()).Return(true)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), adminID).Return(nil, nil)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectPanicRaised, event).Return(nil)

	_, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
}

func TestDispatch_PublishFailureDoesNotFailDispatch(t *testing.T) {
	uc, deps, cleanup := setupDispatcherTest(t)
	defer cleanup()

	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:    models.NotificationTripStarted,
		TripID:  trip.ID,
		ActorID: trip.DriverID.UUID,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	deps.presence.EXPECT().NotifyUser(trip.PassengerID, constants.EventNotification, gomock.Any()).Return(true)
	deps.tokens.EXPECT().ActiveTokensByUser(gomock.Any(), trip.PassengerID).Return(nil, nil)
	deps.publisher.EXPECT().PublishEvent(gomock.Any(), constants.SubjectTripStarted, event).Return(errors.New("broker unavailable"))

	result, err := uc.Dispatch(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, 0, result.FailureCount)
}

func TestRenderMessage_TripCompletedPerRecipient(t *testing.T) {
	trip := tripForDispatch()
	event := models.DomainEvent{
		Type:   models.NotificationTripCompleted,
		TripID: trip.ID,
		Data:   models.NotificationData{"actual_price": 95.50},
	}

	passengerMsg := renderMessage(event, trip, trip.PassengerID)
	driverMsg := renderMessage(event, trip, trip.DriverID.UUID)

	assert.Equal(t, "You have arrived at your destination. Final fare: 95.50", passengerMsg.Body)
	assert.Equal(t, "The trip has been completed. Final fare: 95.50", driverMsg.Body)
	assert.Equal(t, trip.ID.String(), passengerMsg.Data["trip_id"])
}

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, constants.SubjectTripRequested, subjectFor(models.NotificationTripRequest))
	assert.Equal(t, constants.SubjectRouteChangeResolved, subjectFor(models.NotificationRouteChangeReject))
	assert.Equal(t, constants.SubjectPanicRaised, subjectFor(models.NotificationPanicAlert))
	assert.Equal(t, "notification.unknown_type", subjectFor(models.NotificationType("unknown_type")))
}
