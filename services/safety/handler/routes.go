package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/middleware"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/safety"
	httpHandler "github.com/blincar/blincar/services/safety/handler/http"
)

// Handler combines all handlers for the safety service
type Handler struct {
	panicHTTP *httpHandler.PanicHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(panicUC safety.PanicUC, cfg *models.Config) *Handler {
	return &Handler{
		panicHTTP: httpHandler.NewPanicHandler(panicUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	panicGroup := api.Group("/panic")
	panicGroup.POST("/volume", h.panicHTTP.RaiseVolumePanic)
	panicGroup.POST("/app", h.panicHTTP.RaiseAppPanic)
	panicGroup.GET("/active", h.panicHTTP.ListActive)
	panicGroup.PATCH("/:id/resolve", h.panicHTTP.ResolvePanic)
}
