package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/routes/mocks"
)

type routeChangeTestDeps struct {
	rcRepo   *mocks.MockRouteChangeRepo
	tripGW   *mocks.MockTripAccess
	notifier *mocks.MockNotifier
	presence *mocks.MockPresence
}

func setupRouteChangeTest(t *testing.T) (*routeChangeUC, routeChangeTestDeps, func()) {
	ctrl := gomock.NewController(t)
	deps := routeChangeTestDeps{
		rcRepo:   mocks.NewMockRouteChangeRepo(ctrl),
		tripGW:   mocks.NewMockTripAccess(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		presence: mocks.NewMockPresence(ctrl),
	}
	uc := NewRouteChangeUC(&models.Config{}, deps.rcRepo, deps.tripGW, deps.notifier, deps.presence).(*routeChangeUC)
	return uc, deps, ctrl.Finish
}

func inProgressTrip(driverID uuid.UUID) *models.Trip {
	return &models.Trip{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		DriverID:    uuid.NullUUID{UUID: driverID, Valid: true},
		Status:      models.TripStatusInProgress,
	}
}

func TestRequestRouteChange_Success(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	driverID := uuid.New()
	trip := inProgressTrip(driverID)
	req := &models.RouteChangeCreate{
		TripID:        trip.ID,
		OriginalRoute: "via Gatot Subroto",
		NewRoute:      "via Kuningan",
		Reason:        "road closure",
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.rcRepo.EXPECT().
		CreateRouteChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc *models.RouteChangeRequest) error {
			assert.Equal(t, models.ApprovalStatusPending, rc.ApprovalStatus)
			assert.Equal(t, driverID, rc.DriverID)
			return nil
		})
	deps.tripGW.EXPECT().IncrementRouteChangeCount(gomock.Any(), trip.ID).Return(nil)
	deps.notifier.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DomainEvent) (*models.DispatchResult, error) {
			assert.Equal(t, models.NotificationRouteChangeRequest, event.Type)
			return &models.DispatchResult{Recipients: 1, SuccessCount: 1}, nil
		})

	rc, err := uc.RequestRouteChange(context.Background(), driverID, req)

	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, rc.ApprovalStatus)
}

func TestRequestRouteChange_TripNotInProgress(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	driverID := uuid.New()
	trip := inProgressTrip(driverID)
	trip.Status = models.TripStatusAccepted

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.RequestRouteChange(context.Background(), driverID, &models.RouteChangeCreate{
		TripID:   trip.ID,
		NewRoute: "via Kuningan",
		Reason:   "road closure",
	})

	// No request row is created for an ineligible trip
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRequestRouteChange_NotAssignedDriver(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	trip := inProgressTrip(uuid.New())
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.RequestRouteChange(context.Background(), uuid.New(), &models.RouteChangeCreate{
		TripID:   trip.ID,
		NewRoute: "via Kuningan",
		Reason:   "road closure",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRequestRouteChange_MissingFields(t *testing.T) {
	uc, _, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	_, err := uc.RequestRouteChange(context.Background(), uuid.New(), &models.RouteChangeCreate{
		TripID:   uuid.New(),
		NewRoute: "via Kuningan",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRespondToRouteChange_Approve(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	driverID := uuid.New()
	trip := inProgressTrip(driverID)
	rc := &models.RouteChangeRequest{
		ID:             uuid.New(),
		TripID:         trip.ID,
		DriverID:       driverID,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	resolved := *rc
	resolved.ApprovalStatus = models.ApprovalStatusApproved

	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(rc, nil)
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.rcRepo.EXPECT().
		ResolveRouteChange(gomock.Any(), rc.ID, models.ApprovalStatusApproved, false).
		Return(true, nil)
	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(&resolved, nil)
	deps.presence.EXPECT().
		NotifyUser(driverID, constants.EventRouteChangeResponse, gomock.Any()).
		Return(true)

	got, err := uc.RespondToRouteChange(context.Background(), rc.ID, trip.PassengerID, true)

	assert.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
}

func TestRespondToRouteChange_RejectNotifiesAdmins(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	driverID := uuid.New()
	trip := inProgressTrip(driverID)
	rc := &models.RouteChangeRequest{
		ID:             uuid.New(),
		TripID:         trip.ID,
		DriverID:       driverID,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	resolved := *rc
	resolved.ApprovalStatus = models.ApprovalStatusRejected
	resolved.AdminNotified = true

	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(rc, nil)
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.rcRepo.EXPECT().
		ResolveRouteChange(gomock.Any(), rc.ID, models.ApprovalStatusRejected, true).
		Return(true, nil)
	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(&resolved, nil)
	deps.notifier.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DomainEvent) (*models.DispatchResult, error) {
			assert.Equal(t, models.NotificationRouteChangeReject, event.Type)
			return &models.DispatchResult{Recipients: 2, SuccessCount: 2}, nil
		})
	deps.presence.EXPECT().
		NotifyUser(driverID, constants.EventRouteChangeResponse, gomock.Any()).
		Return(false)

	got, err := uc.RespondToRouteChange(context.Background(), rc.ID, trip.PassengerID, false)

	assert.NoError(t, err)
	assert.True(t, got.AdminNotified)
}

func TestRespondToRouteChange_NotPassenger(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	trip := inProgressTrip(uuid.New())
	rc := &models.RouteChangeRequest{ID: uuid.New(), TripID: trip.ID, ApprovalStatus: models.ApprovalStatusPending}

	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(rc, nil)
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.RespondToRouteChange(context.Background(), rc.ID, uuid.New(), true)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRespondToRouteChange_AlreadyResolved(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	trip := inProgressTrip(uuid.New())
	rc := &models.RouteChangeRequest{ID: uuid.New(), TripID: trip.ID, ApprovalStatus: models.ApprovalStatusApproved}

	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(rc, nil)
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.RespondToRouteChange(context.Background(), rc.ID, trip.PassengerID, true)

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRespondToRouteChange_ConcurrentResolution(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	trip := inProgressTrip(uuid.New())
	rc := &models.RouteChangeRequest{ID: uuid.New(), TripID: trip.ID, ApprovalStatus: models.ApprovalStatusPending}

	deps.rcRepo.EXPECT().GetRouteChange(gomock.Any(), rc.ID).Return(rc, nil)
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.rcRepo.EXPECT().
		ResolveRouteChange(gomock.Any(), rc.ID, models.ApprovalStatusApproved, false).
		Return(false, nil)

	_, err := uc.RespondToRouteChange(context.Background(), rc.ID, trip.PassengerID, true)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestListRejected_AdminOnly(t *testing.T) {
	uc, deps, cleanup := setupRouteChangeTest(t)
	defer cleanup()

	deps.rcRepo.EXPECT().ListRejected(gomock.Any()).Return([]*models.RouteChangeRequest{}, nil)

	_, err := uc.ListRejected(context.Background(), models.RoleAdmin)
	assert.NoError(t, err)

	_, err = uc.ListRejected(context.Background(), models.RoleDriver)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
