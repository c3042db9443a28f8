package handlers

import (
	"fmt"
	"io"
	"net/http"

	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	"socialgraph/pkg/common"
	"socialgraph/pkg/errors"

	"go.uber.org/zap"
)

// NetworkHandler serves dumps of the whole network
type NetworkHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *errors.ErrorHandler
	logger       *zap.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(queryBus *querybus.QueryBus, errorHandler *errors.ErrorHandler, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetNetwork handles GET /network
func (h *NetworkHandler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	params, result, ok := h.dump(w, r)
	if !ok {
		return
	}

	common.RespondWithMeta(w, http.StatusOK, result, &common.MetaInfo{
		RequestID:  common.ExtractRequestID(r),
		Pagination: common.BuildPaginationMeta(params, result.PersonCount),
	})
}

// GetNetworkText handles GET /network/text, one "X is friends with: ..." line per person
func (h *NetworkHandler) GetNetworkText(w http.ResponseWriter, r *http.Request) {
	_, result, ok := h.dump(w, r)
	if !ok {
		return
	}

	err := common.RespondText(w, http.StatusOK, func(out io.Writer) error {
		for _, connection := range result.People {
			if _, err := fmt.Fprintln(out, connection.String()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		h.logger.Warn("Failed to write network dump", zap.Error(err))
	}
}

func (h *NetworkHandler) dump(w http.ResponseWriter, r *http.Request) (common.PaginationParams, *queries.DumpNetworkResult, bool) {
	params, err := common.ExtractPaginationParams(r)
	if err != nil {
		h.errorHandler.Handle(w, r, errors.NewValidationError(err.Error()))
		return params, nil, false
	}

	raw, err := h.queryBus.Ask(r.Context(), queries.DumpNetworkQuery{Offset: params.Offset, Limit: params.Limit})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return params, nil, false
	}

	result, ok := raw.(*queries.DumpNetworkResult)
	if !ok {
		h.errorHandler.Handle(w, r, errors.NewInternalError("unexpected dump result"))
		return params, nil, false
	}
	return params, result, true
}
