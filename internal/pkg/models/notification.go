package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of dispatched event types
type NotificationType string

const (
	NotificationTripRequest        NotificationType = "trip_request"
	NotificationTripAccepted       NotificationType = "trip_accepted"
	NotificationDriverArrived      NotificationType = "driver_arrived"
	NotificationTripStarted        NotificationType = "trip_started"
	NotificationTripCompleted      NotificationType = "trip_completed"
	NotificationTripCancelled      NotificationType = "trip_cancelled"
	NotificationRouteChangeRequest NotificationType = "route_change_request"
	NotificationRouteChangeReject  NotificationType = "route_change_rejected"
	NotificationPanicAlert         NotificationType = "panic_alert"
)

// NotificationData is the free-form payload attached to a notification,
// stored as JSONB
type NotificationData map[string]interface{}

// Value implements driver.Valuer for JSONB columns
func (d NotificationData) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB columns
func (d *NotificationData) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into NotificationData", src)
	}
}

// Notification is the durable per-recipient record of a dispatched event.
// The record exists before any delivery attempt is made.
type Notification struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	UserID     uuid.UUID        `json:"user_id" db:"user_id"`
	Type       NotificationType `json:"type" db:"type"`
	Title      string           `json:"title" db:"title"`
	Body       string           `json:"body" db:"body"`
	TripID     uuid.NullUUID    `json:"trip_id,omitempty" db:"trip_id"`
	Data       NotificationData `json:"data,omitempty" db:"data"`
	IsRead     bool             `json:"is_read" db:"is_read"`
	IsPushSent bool             `json:"is_push_sent" db:"is_push_sent"`
	PushSentAt sql.NullTime     `json:"push_sent_at,omitempty" db:"push_sent_at"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

// Message carries the rendered title/body for one recipient
type Message struct {
	Title string
	Body  string
	Data  NotificationData
}

// DomainEvent is one lifecycle occurrence handed to the dispatcher
type DomainEvent struct {
	Type       NotificationType `json:"type"`
	TripID     uuid.UUID        `json:"trip_id"`
	ActorID    uuid.UUID        `json:"actor_id"`
	OccurredAt time.Time        `json:"occurred_at"`
	Data       NotificationData `json:"data,omitempty"`
}

// DispatchResult aggregates one dispatch fan-out. Failed deliveries are
// counted, never surfaced as errors.
type DispatchResult struct {
	Recipients   int `json:"recipients"`
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
}

// PushResult is the push provider's per-send outcome
type PushResult struct {
	SuccessCount  int      `json:"success_count"`
	FailureCount  int      `json:"failure_count"`
	InvalidTokens []string `json:"invalid_tokens,omitempty"`
}

// NotificationPage is one page of a user's notification feed
type NotificationPage struct {
	Notifications []*Notification `json:"notifications"`
	Total         int             `json:"total"`
	UnreadCount   int             `json:"unread_count"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
}
