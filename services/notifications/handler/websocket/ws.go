package websocket

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blincar/blincar/internal/pkg/constants"
	"github.com/blincar/blincar/internal/pkg/logger"
	"github.com/blincar/blincar/internal/pkg/models"
	ws "github.com/blincar/blincar/internal/pkg/websocket"
)

// WebSocketHandler owns the live connection endpoint. Presence
// registration and notification delivery ride on the shared manager;
// this handler only drives the inbound read loop.
type WebSocketHandler struct {
	manager *ws.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
	}
}

// HandleWebSocket handles GET /ws
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient reads inbound events until the connection drops
func (h *WebSocketHandler) handleClient(client *ws.Client) error {
	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID.String()),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket client disconnected",
				logger.String("user_id", client.UserID.String()),
				logger.Err(err))
			return nil
		}

		if err := h.routeMessage(client, msg); err != nil {
			logger.Warn("Failed to handle WebSocket message",
				logger.String("user_id", client.UserID.String()),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *WebSocketHandler) routeMessage(client *ws.Client, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client.Conn, constants.EventPong, map[string]interface{}{
			"timestamp": time.Now().Unix(),
		})

	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)

	default:
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat,
			"Unknown event: "+msg.Event)
	}
}

// handleLocationUpdate relays a driver position report to every
// connected admin. The report is ephemeral; nothing is recorded.
func (h *WebSocketHandler) handleLocationUpdate(client *ws.Client, data json.RawMessage) error {
	if client.Role != models.RoleDriver {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorUnauthorized,
			"Only drivers report positions")
	}

	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat,
			"Invalid location update payload")
	}
	if update.TripID == uuid.Nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorValidationFailed,
			"trip_id is required")
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now()
	}

	h.manager.BroadcastRole(models.RoleAdmin, constants.EventLocationUpdate, map[string]interface{}{
		"driver_id": client.UserID.String(),
		"trip_id":   update.TripID.String(),
		"location":  update.Location,
		"timestamp": update.Timestamp,
	})
	return nil
}
