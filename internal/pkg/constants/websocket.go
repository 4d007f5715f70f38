package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Outbound delivery
	EventNotification = "notification"

	// Driver position relay
	EventLocationUpdate = "location_update"

	// Ephemeral signals
	EventRouteChangeResponse = "route_change_response"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
)
