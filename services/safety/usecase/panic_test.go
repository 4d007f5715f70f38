package usecase

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/safety/mocks"
)

type panicTestDeps struct {
	panicRepo *mocks.MockPanicRepo
	tripGW    *mocks.MockTripAccess
	userGW    *mocks.MockUserGetter
	notifier  *mocks.MockNotifier
	publisher *mocks.MockEventPublisher
}

func setupPanicTest(t *testing.T) (*panicUC, panicTestDeps, func()) {
	ctrl := gomock.NewController(t)
	deps := panicTestDeps{
		panicRepo: mocks.NewMockPanicRepo(ctrl),
		tripGW:    mocks.NewMockTripAccess(ctrl),
		userGW:    mocks.NewMockUserGetter(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	uc := NewPanicUC(&models.Config{}, deps.panicRepo, deps.tripGW, deps.userGW, deps.notifier, deps.publisher).(*panicUC)
	return uc, deps, ctrl.Finish
}

func TestRaisePanicAlert_VolumeButton(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	passengerID := uuid.New()
	trip := &models.Trip{
		ID:          uuid.New(),
		PassengerID: passengerID,
		Status:      models.TripStatusInProgress,
	}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.panicRepo.EXPECT().
		CreatePanicAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.PanicAlert) error {
			assert.Equal(t, models.PanicTypeVolumeButton, alert.AlertType)
			assert.False(t, alert.EmergencyContactNotified)
			assert.False(t, alert.IsResolved)
			return nil
		})
	deps.notifier.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DomainEvent) (*models.DispatchResult, error) {
			assert.Equal(t, models.NotificationPanicAlert, event.Type)
			assert.Equal(t, passengerID, event.ActorID)
			return &models.DispatchResult{Recipients: 1, SuccessCount: 1}, nil
		})

	alert, err := uc.RaisePanicAlert(context.Background(), passengerID, models.PanicTypeVolumeButton, &models.PanicAlertCreate{
		TripID:   trip.ID,
		Location: &models.Coordinates{Latitude: -6.2, Longitude: 106.8},
	})

	assert.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestRaisePanicAlert_AppButtonRequiresEmergencyContact(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	passengerID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), PassengerID: passengerID, Status: models.TripStatusInProgress}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.userGW.EXPECT().GetByID(gomock.Any(), passengerID).
		Return(&models.User{ID: passengerID, Role: models.RolePassenger}, nil)

	_, err := uc.RaisePanicAlert(context.Background(), passengerID, models.PanicTypeAppButton, &models.PanicAlertCreate{
		TripID: trip.ID,
	})

	// Nothing is written when the profile has no emergency contact
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRaisePanicAlert_AppButtonMarksContactNotified(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	passengerID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), PassengerID: passengerID, Status: models.TripStatusInProgress}

	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	deps.userGW.EXPECT().GetByID(gomock.Any(), passengerID).Return(&models.User{
		ID:                    passengerID,
		Role:                  models.RolePassenger,
		EmergencyContactPhone: sql.NullString{String: "+628111234567", Valid: true},
	}, nil)
	deps.panicRepo.EXPECT().
		CreatePanicAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.PanicAlert) error {
			assert.True(t, alert.EmergencyContactNotified)
			return nil
		})
	deps.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Return(&models.DispatchResult{Recipients: 1, SuccessCount: 1}, nil)

	alert, err := uc.RaisePanicAlert(context.Background(), passengerID, models.PanicTypeAppButton, &models.PanicAlertCreate{
		TripID: trip.ID,
	})

	assert.NoError(t, err)
	assert.True(t, alert.EmergencyContactNotified)
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*********4567", maskPhone("+628111234567"))
	assert.Equal(t, "****5678", maskPhone("12345678"))
	assert.Equal(t, "4567", maskPhone("4567"))
	assert.Equal(t, "", maskPhone(""))
}

func TestRaisePanicAlert_NonParticipant(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	trip := &models.Trip{ID: uuid.New(), PassengerID: uuid.New(), Status: models.TripStatusInProgress}
	deps.tripGW.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.RaisePanicAlert(context.Background(), uuid.New(), models.PanicTypeVolumeButton, &models.PanicAlertCreate{
		TripID: trip.ID,
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestResolvePanicAlert_Success(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	adminID := uuid.New()
	alert := &models.PanicAlert{ID: uuid.New(), TripID: uuid.New(), UserID: uuid.New()}
	resolved := *alert
	resolved.IsResolved = true
	resolved.ResolvedBy = uuid.NullUUID{UUID: adminID, Valid: true}

	gomock.InOrder(
		deps.panicRepo.EXPECT().GetPanicAlert(gomock.Any(), alert.ID).Return(alert, nil),
		deps.panicRepo.EXPECT().ResolvePanicAlert(gomock.Any(), alert.ID, adminID, "driver confirmed safe").Return(true, nil),
		deps.panicRepo.EXPECT().GetPanicAlert(gomock.Any(), alert.ID).Return(&resolved, nil),
	)
	deps.publisher.EXPECT().
		PublishEvent(gomock.Any(), constants.SubjectPanicResolved, gomock.Any()).
		Return(nil)

	got, err := uc.ResolvePanicAlert(context.Background(), alert.ID, adminID, models.RoleAdmin, "driver confirmed safe")

	assert.NoError(t, err)
	assert.True(t, got.IsResolved)
}

func TestResolvePanicAlert_AlreadyResolved(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	alert := &models.PanicAlert{ID: uuid.New(), IsResolved: true}
	deps.panicRepo.EXPECT().GetPanicAlert(gomock.Any(), alert.ID).Return(alert, nil)

	_, err := uc.ResolvePanicAlert(context.Background(), alert.ID, uuid.New(), models.RoleAdmin, "")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestResolvePanicAlert_ConcurrentResolution(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	adminID := uuid.New()
	alert := &models.PanicAlert{ID: uuid.New()}

	deps.panicRepo.EXPECT().GetPanicAlert(gomock.Any(), alert.ID).Return(alert, nil)
	deps.panicRepo.EXPECT().ResolvePanicAlert(gomock.Any(), alert.ID, adminID, "").Return(false, nil)

	_, err := uc.ResolvePanicAlert(context.Background(), alert.ID, adminID, models.RoleAdmin, "")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestResolvePanicAlert_AdminOnly(t *testing.T) {
	uc, _, cleanup := setupPanicTest(t)
	defer cleanup()

	_, err := uc.ResolvePanicAlert(context.Background(), uuid.New(), uuid.New(), models.RoleDriver, "")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestResolvePanicAlert_PublishFailureDoesNotFailResolution(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	adminID := uuid.New()
	alert := &models.PanicAlert{ID: uuid.New()}
	resolved := *alert
	resolved.IsResolved = true

	deps.panicRepo.EXPECT().GetPanicAlert(gomock.Any(), alert.ID).Return(alert, nil)
	deps.panicRepo.EXPECT().ResolvePanicAlert(gomock.Any(), alert.ID, adminID, "").Return(true, nil)
	deps.panicRepo.EXPECT().GetPanicAlert(gomock.Any(), alert.ID).Return(&resolved, nil)
	deps.publisher.EXPECT().
		PublishEvent(gomock.Any(), constants.SubjectPanicResolved, gomock.Any()).
		Return(assert.AnError)

	_, err := uc.ResolvePanicAlert(context.Background(), alert.ID, adminID, models.RoleAdmin, "")

	assert.NoError(t, err)
}

func TestListActive_AdminOnly(t *testing.T) {
	uc, deps, cleanup := setupPanicTest(t)
	defer cleanup()

	deps.panicRepo.EXPECT().ListActive(gomock.Any()).Return([]*models.PanicAlert{}, nil)

	_, err := uc.ListActive(context.Background(), models.RoleAdmin)
	assert.NoError(t, err)

	_, err = uc.ListActive(context.Background(), models.RolePassenger)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
