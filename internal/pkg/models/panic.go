package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PanicAlertType identifies how the alert was triggered
type PanicAlertType string

const (
	PanicTypeVolumeButton PanicAlertType = "volume_button"
	PanicTypeAppButton    PanicAlertType = "app_button"
)

// PanicAlert is an emergency signal raised by a trip participant.
// Raising one never blocks on notification delivery.
type PanicAlert struct {
	ID                       uuid.UUID      `json:"id" db:"id"`
	TripID                   uuid.UUID      `json:"trip_id" db:"trip_id"`
	UserID                   uuid.UUID      `json:"user_id" db:"user_id"`
	AlertType                PanicAlertType `json:"alert_type" db:"alert_type"`
	Location                 *Coordinates   `json:"location,omitempty" db:"location"`
	IsResolved               bool           `json:"is_resolved" db:"is_resolved"`
	ResolvedBy               uuid.NullUUID  `json:"resolved_by,omitempty" db:"resolved_by"`
	ResolvedAt               sql.NullTime   `json:"resolved_at,omitempty" db:"resolved_at"`
	AdminNotes               sql.NullString `json:"admin_notes,omitempty" db:"admin_notes"`
	EmergencyContactNotified bool           `json:"emergency_contact_notified" db:"emergency_contact_notified"`
	CreatedAt                time.Time      `json:"created_at" db:"created_at"`
}

// PanicAlertCreate carries the participant input for a new alert
type PanicAlertCreate struct {
	TripID   uuid.UUID    `json:"trip_id" validate:"required"`
	Location *Coordinates `json:"location,omitempty"`
}

// PanicResolve carries the admin input closing an alert
type PanicResolve struct {
	AdminNotes string `json:"admin_notes"`
}
