package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/middleware"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/trips"
	httpHandler "github.com/blincar/blincar/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))

	tripGroup := api.Group("/trips")
	tripGroup.POST("", h.tripHTTP.RequestTrip)
	tripGroup.GET("", h.tripHTTP.ListTrips)
	tripGroup.GET("/:id", h.tripHTTP.GetTrip)
	tripGroup.PATCH("/:id/accept", h.tripHTTP.AcceptTrip)
	tripGroup.PATCH("/:id/arrive", h.tripHTTP.DriverArrived)
	tripGroup.PATCH("/:id/start", h.tripHTTP.StartTrip)
	tripGroup.PATCH("/:id/complete", h.tripHTTP.CompleteTrip)
	tripGroup.PATCH("/:id/cancel", h.tripHTTP.CancelTrip)
}
