package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	nrpkg "github.com/blincar/blincar/internal/pkg/newrelic"
	"github.com/blincar/blincar/internal/utils"
	"github.com/blincar/blincar/services/notifications"
)

// NotificationHandler handles HTTP requests for the notification feed
type NotificationHandler struct {
	notifUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notifUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notifUC: notifUC,
	}
}

func actorFrom(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}

// List handles GET /api/notifications
func (h *NotificationHandler) List(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.List")

	actorID, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread_only"))

	result, err := h.notifUC.List(c.Request().Context(), actorID, page, limit, unreadOnly)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.MarkRead")

	actorID, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.notifUC.MarkRead(c.Request().Context(), notificationID, actorID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles PATCH /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Notifications.MarkAllRead")

	actorID, ok := actorFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	count, err := h.notifUC.MarkAllRead(c.Request().Context(), actorID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", map[string]int{
		"updated_count": count,
	})
}
