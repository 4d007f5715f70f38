package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/middleware"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/routes"
	httpHandler "github.com/blincar/blincar/services/routes/handler/http"
)

// Handler combines all handlers for the routes service
type Handler struct {
	rcHTTP *httpHandler.RouteChangeHandler
	cfg    *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rcUC routes.RouteChangeUC, cfg *models.Config) *Handler {
	return &Handler{
		rcHTTP: httpHandler.NewRouteChangeHandler(rcUC),
		cfg:    cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	changeGroup := api.Group("/routes/changes")
	changeGroup.POST("", h.rcHTTP.RequestRouteChange)
	changeGroup.GET("/rejected", h.rcHTTP.ListRejected)
	changeGroup.PATCH("/:id/respond", h.rcHTTP.RespondToRouteChange)
}
