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

// AddFriendshipHandler handles friendship commands
type AddFriendshipHandler struct {
	store     ports.NetworkStore
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewAddFriendshipHandler creates a new add friendship handler
func NewAddFriendshipHandler(
	store ports.NetworkStore,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *AddFriendshipHandler {
	return &AddFriendshipHandler{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the add friendship command
func (h *AddFriendshipHandler) Handle(ctx context.Context, cmd commands.AddFriendshipCommand) error {
	var pending []events.DomainEvent

	err := h.store.Update(ctx, func(network *aggregates.Network) error {
		if err := network.AddFriendship(cmd.PersonA, cmd.PersonB); err != nil {
			return err
		}
		pending = network.GetUncommittedEvents()
		network.MarkEventsAsCommitted()
		return nil
	})
	if err != nil {
		switch {
		case pkgerrors.IsMissingPerson(err):
			h.logger.Warn("Friendship not created",
				zap.String("person_a", cmd.PersonA),
				zap.String("person_b", cmd.PersonB),
				zap.Any("missing", pkgerrors.GetAppError(err).Details["missing"]),
			)
		case pkgerrors.IsInternal(err):
			h.logger.Error("Failed to add friendship",
				zap.String("person_a", cmd.PersonA),
				zap.String("person_b", cmd.PersonB),
				zap.Error(err),
			)
		}
		return err
	}

	if len(pending) == 0 {
		h.logger.Debug("Friendship already exists",
			zap.String("person_a", cmd.PersonA),
			zap.String("person_b", cmd.PersonB),
		)
		return nil
	}

	return publishEvents(ctx, h.publisher, h.logger, pending)
}
