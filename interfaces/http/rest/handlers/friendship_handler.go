package handlers

import (
	"net/http"

	"socialgraph/application/commands"
	"socialgraph/application/commands/bus"
	"socialgraph/pkg/common"
	"socialgraph/pkg/errors"
	"socialgraph/pkg/utils"

	"go.uber.org/zap"
)

// FriendshipHandler handles friendship-related HTTP requests
type FriendshipHandler struct {
	commandBus   *bus.CommandBus
	errorHandler *errors.ErrorHandler
	logger       *zap.Logger
}

// NewFriendshipHandler creates a new friendship handler
func NewFriendshipHandler(commandBus *bus.CommandBus, errorHandler *errors.ErrorHandler, logger *zap.Logger) *FriendshipHandler {
	return &FriendshipHandler{
		commandBus:   commandBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// AddFriendshipRequest represents the request body for connecting two people
type AddFriendshipRequest struct {
	PersonA string `json:"a" validate:"required,max=256"`
	PersonB string `json:"b" validate:"required,max=256"`
}

// FriendshipResponse echoes the connected pair
type FriendshipResponse struct {
	PersonA string `json:"a"`
	PersonB string `json:"b"`
}

// AddFriendship handles POST /friendships
func (h *FriendshipHandler) AddFriendship(w http.ResponseWriter, r *http.Request) {
	var req AddFriendshipRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		h.errorHandler.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	cmd := commands.AddFriendshipCommand{PersonA: req.PersonA, PersonB: req.PersonB}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, FriendshipResponse(req))
}
