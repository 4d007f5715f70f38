package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blincar/blincar/internal/pkg/models"
	natspkg "github.com/blincar/blincar/internal/pkg/nats"
)

// EventGateway publishes domain events onto the message bus for
// downstream consumers. Publishing is best-effort from the caller's
// point of view; failures are reported, never retried here.
type EventGateway struct {
	client *natspkg.Client
}

// NewEventGateway creates a new domain event gateway
func NewEventGateway(client *natspkg.Client) *EventGateway {
	return &EventGateway{
		client: client,
	}
}

// PublishEvent publishes a domain event to the given subject
func (g *EventGateway) PublishEvent(_ context.Context, subject string, event models.DomainEvent) error {
	if !g.client.IsConnected() {
		return fmt.Errorf("message bus is not connected")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal domain event: %w", err)
	}

	return g.client.Publish(subject, data)
}
