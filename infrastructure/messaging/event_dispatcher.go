package messaging

import (
	"context"
	"fmt"
	"sync"

	"socialgraph/domain/events"

	"go.uber.org/zap"
)

// EventHandler reacts to a published domain event
type EventHandler func(ctx context.Context, event events.DomainEvent) error

// EventDispatcher publishes domain events to in-process subscribers.
// It implements ports.EventPublisher.
type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	all      []EventHandler
	logger   *zap.Logger
}

// NewEventDispatcher creates a new event dispatcher
func NewEventDispatcher(logger *zap.Logger) *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]EventHandler),
		logger:   logger,
	}
}

// Subscribe registers handler for one event type
func (d *EventDispatcher) Subscribe(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// SubscribeAll registers handler for every event type
func (d *EventDispatcher) SubscribeAll(handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, handler)
}

// Publish dispatches a single event to its subscribers
func (d *EventDispatcher) Publish(ctx context.Context, event events.DomainEvent) error {
	d.mu.RLock()
	handlers := make([]EventHandler, 0, len(d.all)+len(d.handlers[event.GetEventType()]))
	handlers = append(handlers, d.all...)
	handlers = append(handlers, d.handlers[event.GetEventType()]...)
	d.mu.RUnlock()

	failures := 0
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			failures++
			d.logger.Warn("Event handler failed",
				zap.String("eventType", event.GetEventType()),
				zap.String("eventID", event.GetEventID()),
				zap.Error(err),
			)
		}
	}

	d.logger.Debug("Event dispatched",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
		zap.Int("handlers", len(handlers)),
	)

	if failures > 0 {
		return fmt.Errorf("%d of %d handlers failed for %s", failures, len(handlers), event.GetEventType())
	}
	return nil
}

// PublishBatch dispatches events in order; every event is attempted
func (d *EventDispatcher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	var firstErr error
	for _, event := range batch {
		if err := d.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LogEvents returns a handler that writes every event to logger
func LogEvents(logger *zap.Logger) EventHandler {
	return func(ctx context.Context, event events.DomainEvent) error {
		fields := []zap.Field{
			zap.String("eventType", event.GetEventType()),
			zap.String("eventID", event.GetEventID()),
			zap.Int("version", event.GetVersion()),
		}
		switch e := event.(type) {
		case events.PersonAdded:
			fields = append(fields, zap.String("person", e.Name))
		case events.FriendshipFormed:
			fields = append(fields, zap.String("person_a", e.PersonA), zap.String("person_b", e.PersonB))
		}
		logger.Info("Domain event", fields...)
		return nil
	}
}
