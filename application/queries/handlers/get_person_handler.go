package handlers

import (
	"context"

	"socialgraph/application/ports"
	"socialgraph/application/queries"
	"socialgraph/domain/core/aggregates"

	"go.uber.org/zap"
)

// GetPersonHandler handles person lookups
type GetPersonHandler struct {
	store  ports.NetworkStore
	logger *zap.Logger
}

// NewGetPersonHandler creates a new get person handler
func NewGetPersonHandler(store ports.NetworkStore, logger *zap.Logger) *GetPersonHandler {
	return &GetPersonHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the get person query
func (h *GetPersonHandler) Handle(ctx context.Context, query queries.GetPersonQuery) (*queries.GetPersonResult, error) {
	var result *queries.GetPersonResult

	err := h.store.View(ctx, func(network *aggregates.Network) error {
		person, err := network.Lookup(query.Name)
		if err != nil {
			return err
		}
		result = &queries.GetPersonResult{
			Name:        person.Name(),
			Friends:     person.Friends(),
			FriendCount: person.FriendCount(),
		}
		return nil
	})
	if err != nil {
		h.logger.Debug("Person lookup failed", zap.String("person", query.Name), zap.Error(err))
		return nil, err
	}

	return result, nil
}
