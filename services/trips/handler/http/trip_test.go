package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/trips/mocks"
)

func newTripTestContext(method, path, body string, actorID uuid.UUID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", actorID)
	c.Set("user_role", role)
	return c, rec
}

func TestRequestTripHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	h := NewTripHandler(mockUC)

	passengerID := uuid.New()
	body := `{"origin_address":"Jl. Sudirman 1","destination_address":"Jl. Thamrin 10","estimated_price":120}`
	c, rec := newTripTestContext(http.MethodPost, "/api/trips", body, passengerID, models.RolePassenger)

	mockUC.EXPECT().
		RequestTrip(gomock.Any(), passengerID, gomock.Any()).
		Return(&models.Trip{ID: uuid.New(), PassengerID: passengerID, Status: models.TripStatusRequested}, nil)

	err := h.RequestTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequestTripHandler_NonPassengerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripHandler(mocks.NewMockTripUC(ctrl))
	c, rec := newTripTestContext(http.MethodPost, "/api/trips", "", uuid.New(), models.RoleDriver)

	err := h.RequestTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestTripHandler_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripHandler(mocks.NewMockTripUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.RequestTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAcceptTripHandler_DomainErrorMapping(t *testing.T) {
	driverID := uuid.New()
	tripID := uuid.New()

	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "conflict", ucErr: fmt.Errorf("taken: %w", apperrors.ErrConflict), wantStatus: http.StatusConflict},
		{name: "invalid transition", ucErr: fmt.Errorf("bad state: %w", apperrors.ErrInvalidTransition), wantStatus: http.StatusUnprocessableEntity},
		{name: "not found", ucErr: fmt.Errorf("missing: %w", apperrors.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "unauthorized actor", ucErr: fmt.Errorf("not a driver: %w", apperrors.ErrUnauthorized), wantStatus: http.StatusForbidden},
		{name: "storage down", ucErr: fmt.Errorf("db: %w", apperrors.ErrStorageUnavailable), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockTripUC(ctrl)
			h := NewTripHandler(mockUC)

			c, rec := newTripTestContext(http.MethodPatch, "/api/trips/"+tripID.String()+"/accept", "", driverID, models.RoleDriver)
			c.SetParamNames("id")
			c.SetParamValues(tripID.String())

			mockUC.EXPECT().AcceptTrip(gomock.Any(), tripID, driverID).Return(nil, tt.ucErr)

			err := h.AcceptTrip(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAcceptTripHandler_InvalidTripID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripHandler(mocks.NewMockTripUC(ctrl))
	c, rec := newTripTestContext(http.MethodPatch, "/api/trips/not-a-uuid/accept", "", uuid.New(), models.RoleDriver)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.AcceptTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteTripHandler_PassesActualPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	h := NewTripHandler(mockUC)

	driverID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripTestContext(http.MethodPatch, "/api/trips/"+tripID.String()+"/complete",
		`{"actual_price":95.5}`, driverID, models.RoleDriver)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockUC.EXPECT().
		CompleteTrip(gomock.Any(), tripID, driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, price *float64) (*models.Trip, error) {
			assert.NotNil(t, price)
			assert.Equal(t, 95.5, *price)
			return &models.Trip{ID: tripID, Status: models.TripStatusCompleted}, nil
		})

	err := h.CompleteTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelTripHandler_ForwardsRoleAndReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	h := NewTripHandler(mockUC)

	adminID := uuid.New()
	tripID := uuid.New()
	c, rec := newTripTestContext(http.MethodPatch, "/api/trips/"+tripID.String()+"/cancel",
		`{"reason":"fraud review"}`, adminID, models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockUC.EXPECT().
		CancelTrip(gomock.Any(), tripID, adminID, models.RoleAdmin, "fraud review").
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCancelled}, nil)

	err := h.CancelTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTripsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	h := NewTripHandler(mockUC)

	actorID := uuid.New()
	c, rec := newTripTestContext(http.MethodGet, "/api/trips", "", actorID, models.RolePassenger)

	mockUC.EXPECT().ListTrips(gomock.Any(), actorID, models.RolePassenger).Return([]*models.Trip{}, nil)

	err := h.ListTrips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
