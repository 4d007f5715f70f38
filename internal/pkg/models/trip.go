package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusRequested  TripStatus = "requested"
	TripStatusAccepted   TripStatus = "accepted"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// Terminal reports whether no further transition is accepted from s.
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Coordinates is a WGS84 point, stored as JSONB in the ledger
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Value implements driver.Valuer for JSONB columns
func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB columns
func (c *Coordinates) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Coordinates", src)
	}
}

// Trip represents one ride from request to terminal state
type Trip struct {
	ID                     uuid.UUID       `json:"id" db:"id"`
	PassengerID            uuid.UUID       `json:"passenger_id" db:"passenger_id"`
	DriverID               uuid.NullUUID   `json:"driver_id,omitempty" db:"driver_id"`
	Status                 TripStatus      `json:"status" db:"status"`
	OriginAddress          string          `json:"origin_address" db:"origin_address"`
	DestinationAddress     string          `json:"destination_address" db:"destination_address"`
	OriginCoordinates      Coordinates     `json:"origin_coordinates" db:"origin_coordinates"`
	DestinationCoordinates Coordinates     `json:"destination_coordinates" db:"destination_coordinates"`
	EstimatedPrice         float64         `json:"estimated_price" db:"estimated_price"`
	ActualPrice            sql.NullFloat64 `json:"actual_price,omitempty" db:"actual_price"`
	RequestedAt            time.Time       `json:"requested_at" db:"requested_at"`
	AcceptedAt             sql.NullTime    `json:"accepted_at,omitempty" db:"accepted_at"`
	StartedAt              sql.NullTime    `json:"started_at,omitempty" db:"started_at"`
	CompletedAt            sql.NullTime    `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt            sql.NullTime    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CancelledBy            sql.NullString  `json:"cancelled_by,omitempty" db:"cancelled_by"`
	CancelReason           sql.NullString  `json:"cancel_reason,omitempty" db:"cancel_reason"`
	RouteChangeCount       int             `json:"route_change_count" db:"route_change_count"`
	PanicAlertCount        int             `json:"panic_alert_count" db:"panic_alert_count"`
}

// IsParticipant reports whether userID is the trip's passenger or its
// assigned driver.
func (t *Trip) IsParticipant(userID uuid.UUID) bool {
	if t.PassengerID == userID {
		return true
	}
	return t.DriverID.Valid && t.DriverID.UUID == userID
}

// TripRequest carries the passenger input for a new trip
type TripRequest struct {
	OriginAddress          string      `json:"origin_address" validate:"required"`
	DestinationAddress     string      `json:"destination_address" validate:"required"`
	OriginCoordinates      Coordinates `json:"origin_coordinates"`
	DestinationCoordinates Coordinates `json:"destination_coordinates"`
	EstimatedPrice         float64     `json:"estimated_price"`
}
