package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus represents the passenger's verdict on a route change
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// RouteChangeRequest is a driver-proposed mid-trip route modification
// that requires passenger consent. It is resolved exactly once.
type RouteChangeRequest struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	TripID         uuid.UUID      `json:"trip_id" db:"trip_id"`
	DriverID       uuid.UUID      `json:"driver_id" db:"driver_id"`
	OriginalRoute  string         `json:"original_route" db:"original_route"`
	NewRoute       string         `json:"new_route" db:"new_route"`
	Reason         string         `json:"reason" db:"reason"`
	ApprovalStatus ApprovalStatus `json:"approval_status" db:"approval_status"`
	AdminNotified  bool           `json:"admin_notified" db:"admin_notified"`
	RespondedAt    sql.NullTime   `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}

// RouteChangeCreate carries the driver input for a new route change request
type RouteChangeCreate struct {
	TripID        uuid.UUID `json:"trip_id" validate:"required"`
	OriginalRoute string    `json:"original_route"`
	NewRoute      string    `json:"new_route" validate:"required"`
	Reason        string    `json:"reason" validate:"required"`
}
