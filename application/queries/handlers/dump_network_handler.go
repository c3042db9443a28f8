package handlers

import (
	"context"

	"socialgraph/application/ports"
	"socialgraph/application/queries"
	"socialgraph/domain/core/aggregates"

	"go.uber.org/zap"
)

// DumpNetworkHandler handles full network dumps
type DumpNetworkHandler struct {
	store  ports.NetworkStore
	logger *zap.Logger
}

// NewDumpNetworkHandler creates a new dump network handler
func NewDumpNetworkHandler(store ports.NetworkStore, logger *zap.Logger) *DumpNetworkHandler {
	return &DumpNetworkHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the dump network query
func (h *DumpNetworkHandler) Handle(ctx context.Context, query queries.DumpNetworkQuery) (*queries.DumpNetworkResult, error) {
	var result *queries.DumpNetworkResult

	err := h.store.View(ctx, func(network *aggregates.Network) error {
		result = &queries.DumpNetworkResult{
			NetworkID:       network.ID().String(),
			People:          window(network.Dump(), query.Offset, query.Limit),
			PersonCount:     network.PersonCount(),
			FriendshipCount: network.FriendshipCount(),
			CreatedAt:       network.CreatedAt(),
			UpdatedAt:       network.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Network dumped",
		zap.Int("people", result.PersonCount),
		zap.Int("returned", len(result.People)),
	)

	return result, nil
}

func window(all []aggregates.Connection, offset, limit int) []aggregates.Connection {
	if offset >= len(all) {
		return []aggregates.Connection{}
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return all[offset:end]
}
