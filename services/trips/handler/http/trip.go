package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	nrpkg "github.com/blincar/blincar/internal/pkg/newrelic"
	"github.com/blincar/blincar/internal/utils"
	"github.com/blincar/blincar/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// actorFrom extracts the authenticated caller from the Echo context
func actorFrom(c echo.Context) (uuid.UUID, string, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	role, _ := c.Get("user_role").(string)
	return userID, role, true
}

// RequestTrip handles POST /api/trips
func (h *TripHandler) RequestTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.RequestTrip")

	actorID, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if role != models.RolePassenger {
		return utils.ForbiddenResponse(c, "Only passengers can request trips")
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.RequestTrip(c.Request().Context(), actorID, &req)
	if err != nil {
		logger.Error("Failed to request trip",
			logger.String("passenger_id", actorID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip requested successfully", trip)
}

// AcceptTrip handles PATCH /api/trips/:id/accept
func (h *TripHandler) AcceptTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.AcceptTrip")

	actorID, _, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.AcceptTrip(c.Request().Context(), tripID, actorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip accepted successfully", trip)
}

// DriverArrived handles PATCH /api/trips/:id/arrive
func (h *TripHandler) DriverArrived(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.DriverArrived")

	actorID, _, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.NotifyDriverArrived(c.Request().Context(), tripID, actorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Arrival notified successfully", trip)
}

// StartTrip handles PATCH /api/trips/:id/start
func (h *TripHandler) StartTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.StartTrip")

	actorID, _, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.StartTrip(c.Request().Context(), tripID, actorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started successfully", trip)
}

// CompleteTrip handles PATCH /api/trips/:id/complete
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CompleteTrip")

	actorID, _, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req struct {
		ActualPrice *float64 `json:"actual_price"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), tripID, actorID, req.ActualPrice)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", trip)
}

// CancelTrip handles PATCH /api/trips/:id/cancel
func (h *TripHandler) CancelTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.CancelTrip")

	actorID, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), tripID, actorID, role, req.Reason)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", trip)
}

// GetTrip handles GET /api/trips/:id
func (h *TripHandler) GetTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.GetTrip")

	actorID, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID, actorID, role)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// ListTrips handles GET /api/trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.ListTrips")

	actorID, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.tripUC.ListTrips(c.Request().Context(), actorID, role)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}
