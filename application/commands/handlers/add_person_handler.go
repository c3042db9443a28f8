package handlers

import (
	"context"

	"socialgraph/application/commands"
	"socialgraph/application/ports"
	"socialgraph/domain/core/aggregates"
	"socialgraph/domain/events"
	pkgerrors "socialgraph/pkg/errors"

	"go.uber.org/zap"
)

// AddPersonHandler handles person registration commands
type AddPersonHandler struct {
	store     ports.NetworkStore
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewAddPersonHandler creates a new add person handler
func NewAddPersonHandler(
	store ports.NetworkStore,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *AddPersonHandler {
	return &AddPersonHandler{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the add person command.
// A duplicate name is logged and returned so callers can report it; the network is unchanged.
func (h *AddPersonHandler) Handle(ctx context.Context, cmd commands.AddPersonCommand) error {
	var pending []events.DomainEvent

	err := h.store.Update(ctx, func(network *aggregates.Network) error {
		if _, err := network.AddPerson(cmd.Name); err != nil {
			return err
		}
		pending = network.GetUncommittedEvents()
		network.MarkEventsAsCommitted()
		return nil
	})
	if err != nil {
		switch {
		case pkgerrors.IsDuplicatePerson(err):
			h.logger.Warn("Duplicate person ignored", zap.String("person", cmd.Name))
		case pkgerrors.IsInternal(err):
			h.logger.Error("Failed to add person", zap.String("person", cmd.Name), zap.Error(err))
		}
		return err
	}

	h.logger.Debug("Person added", zap.String("person", cmd.Name))

	return publishEvents(ctx, h.publisher, h.logger, pending)
}

// publishEvents hands committed events to the publisher.
// A publish failure is logged but does not undo the state change.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, pending []events.DomainEvent) error {
	if len(pending) == 0 {
		return nil
	}
	if err := publisher.PublishBatch(ctx, pending); err != nil {
		logger.Error("Failed to publish events",
			zap.Int("count", len(pending)),
			zap.Error(err),
		)
	}
	return nil
}
