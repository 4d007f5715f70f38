package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	nrpkg "github.com/blincar/blincar/internal/pkg/newrelic"
	"github.com/blincar/blincar/internal/utils"
	"github.com/blincar/blincar/services/routes"
)

// RouteChangeHandler handles HTTP requests for route change operations
type RouteChangeHandler struct {
	rcUC routes.RouteChangeUC
}

// NewRouteChangeHandler creates a new route change HTTP handler
func NewRouteChangeHandler(rcUC routes.RouteChangeUC) *RouteChangeHandler {
	return &RouteChangeHandler{
		rcUC: rcUC,
	}
}

func actorFrom(c echo.Context) (uuid.UUID, string, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	role, _ := c.Get("user_role").(string)
	return userID, role, true
}

// RequestRouteChange handles POST /api/routes/changes
func (h *RouteChangeHandler) RequestRouteChange(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.RequestRouteChange")

	actorID, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if role != models.RoleDriver {
		return utils.ForbiddenResponse(c, "Only drivers can request route changes")
	}

	var req models.RouteChangeCreate
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rc, err := h.rcUC.RequestRouteChange(c.Request().Context(), actorID, &req)
	if err != nil {
		logger.Error("Failed to request route change",
			logger.String("driver_id", actorID.String()),
			logger.String("trip_id", req.TripID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Route change requested successfully", rc)
}

// RespondToRouteChange handles PATCH /api/routes/changes/:id/respond
func (h *RouteChangeHandler) RespondToRouteChange(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.RespondToRouteChange")

	actorID, _, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	changeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route change ID")
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Approved == nil {
		return utils.BadRequestResponse(c, "Field 'approved' is required")
	}

	rc, err := h.rcUC.RespondToRouteChange(c.Request().Context(), changeID, actorID, *req.Approved)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route change response recorded", rc)
}

// ListRejected handles GET /api/routes/changes/rejected
func (h *RouteChangeHandler) ListRejected(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Routes.ListRejected")

	_, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rcs, err := h.rcUC.ListRejected(c.Request().Context(), role)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", rcs)
}
