package ports

import (
	"context"

	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/events"
)

// NetworkStore owns the single social network instance.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation.
// Implementations serialise access: Update callbacks run exclusively,
// View callbacks may run alongside other views but never alongside an update.
type NetworkStore interface {
	// Update runs fn with exclusive access to the network
	Update(ctx context.Context, fn func(network *aggregates.Network) error) error

	// View runs fn with read access to the network. fn must not mutate it.
	View(ctx context.Context, fn func(network *aggregates.Network) error) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
