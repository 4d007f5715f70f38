package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	nrpkg "github.com/blincar/blincar/internal/pkg/newrelic"
	"github.com/blincar/blincar/internal/utils"
	"github.com/blincar/blincar/services/safety"
)

// PanicHandler handles HTTP requests for panic alert operations
type PanicHandler struct {
	panicUC safety.PanicUC
}

// NewPanicHandler creates a new panic alert HTTP handler
func NewPanicHandler(panicUC safety.PanicUC) *PanicHandler {
	return &PanicHandler{
		panicUC: panicUC,
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

// RaiseVolumePanic handles POST /api/panic/volume
func (h *PanicHandler) RaiseVolumePanic(c echo.Context) error {
	return h.raise(c, models.PanicTypeVolumeButton, "Safety.RaiseVolumePanic")
}

// RaiseAppPanic handles POST /api/panic/app
func (h *PanicHandler) RaiseAppPanic(c echo.Context) error {
	return h.raise(c, models.PanicTypeAppButton, "Safety.RaiseAppPanic")
}

func (h *PanicHandler) raise(c echo.Context, alertType models.PanicAlertType, txnName string) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	actorID, _, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PanicAlertCreate
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.panicUC.RaisePanicAlert(c.Request().Context(), actorID, alertType, &req)
	if err != nil {
		logger.Error("Failed to raise panic alert",
			logger.String("user_id", actorID.String()),
			logger.String("trip_id", req.TripID.String()),
			logger.String("alert_type", string(alertType)),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Panic alert raised", alert)
}

// ResolvePanic handles PATCH /api/panic/:id/resolve
func (h *PanicHandler) ResolvePanic(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Safety.ResolvePanic")

	actorID, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid panic alert ID")
	}

	var req models.PanicResolve
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.panicUC.ResolvePanicAlert(c.Request().Context(), alertID, actorID, role, req.AdminNotes)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Panic alert resolved", alert)
}

// ListActive handles GET /api/panic/active
func (h *PanicHandler) ListActive(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Safety.ListActive")

	_, role, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	alerts, err := h.panicUC.ListActive(c.Request().Context(), role)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", alerts)
}
