package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)

// User account statuses
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// Driver availability states
const (
	DriverStatusAvailable = "available"
	DriverStatusBusy      = "busy"
	DriverStatusOffline   = "offline"
)

// User represents a platform account (passenger, driver or admin)
type User struct {
	ID                    uuid.UUID      `json:"id" db:"id"`
	Email                 string         `json:"email" db:"email"`
	Phone                 string         `json:"phone" db:"phone"`
	FirstName             string         `json:"first_name" db:"first_name"`
	LastName              string         `json:"last_name" db:"last_name"`
	Role                  string         `json:"role" db:"role"`
	Status                string         `json:"status" db:"status"`
	DriverStatus          sql.NullString `json:"driver_status,omitempty" db:"driver_status"`
	EmergencyContactName  sql.NullString `json:"emergency_contact_name,omitempty" db:"emergency_contact_name"`
	EmergencyContactPhone sql.NullString `json:"emergency_contact_phone,omitempty" db:"emergency_contact_phone"`
	CreatedAt             time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the user's full name as shown in notifications
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// DeviceToken represents one registered push-notification device token
type DeviceToken struct {
	Token      string    `json:"token" db:"token"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	DeviceType string    `json:"device_type" db:"device_type"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	LastUsedAt time.Time `json:"last_used_at" db:"last_used_at"`
}
