package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NotificationFrame is the live-channel rendering of a notification record
type NotificationFrame struct {
	RecordID  uuid.UUID        `json:"record_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Data      NotificationData `json:"data,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// LocationUpdate is an inbound driver position report relayed to admins
type LocationUpdate struct {
	TripID    uuid.UUID   `json:"trip_id"`
	Location  Coordinates `json:"location"`
	Timestamp time.Time   `json:"timestamp"`
}
