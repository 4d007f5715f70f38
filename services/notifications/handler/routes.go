package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/middleware"
	"github.com/blincar/blincar/internal/pkg/models"
	ws "github.com/blincar/blincar/internal/pkg/websocket"
	"github.com/blincar/blincar/services/notifications"
	httpHandler "github.com/blincar/blincar/services/notifications/handler/http"
	wsHandler "github.com/blincar/blincar/services/notifications/handler/websocket"
)

// Handler combines all handlers for the notifications service
type Handler struct {
	notifHTTP *httpHandler.NotificationHandler
	wsHandler *wsHandler.WebSocketHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(notifUC notifications.NotificationUC, manager *ws.Manager, cfg *models.Config) *Handler {
	return &Handler{
		notifHTTP: httpHandler.NewNotificationHandler(notifUC),
		wsHandler: wsHandler.NewWebSocketHandler(manager),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	notifGroup := api.Group("/notifications")
	notifGroup.GET("", h.notifHTTP.List)
	notifGroup.PATCH("/read-all", h.notifHTTP.MarkAllRead)
	notifGroup.PATCH("/:id/read", h.notifHTTP.MarkRead)

	// The socket carries its own bearer credential
	e.GET("/ws", h.wsHandler.HandleWebSocket)
}
