package constants

// NATS Subjects
const (
	// Trip lifecycle
	SubjectTripRequested = "trip.requested"
	SubjectTripAccepted  = "trip.accepted"
	SubjectTripArrived   = "trip.arrived"
	SubjectTripStarted   = "trip.started"
	SubjectTripCompleted = "trip.completed"
	SubjectTripCancelled = "trip.cancelled"

	// Route changes
	SubjectRouteChangeRequested = "route.change_requested"
	SubjectRouteChangeResolved  = "route.change_resolved"

	// Panic alerts
	SubjectPanicRaised   = "panic.raised"
	SubjectPanicResolved = "panic.resolved"
)
