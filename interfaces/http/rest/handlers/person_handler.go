package handlers

import (
	"net/http"
	"net/url"

	"socialgraph/application/commands"
	"socialgraph/application/commands/bus"
	"socialgraph/application/queries"
	querybus "socialgraph/application/queries/bus"
	"socialgraph/pkg/common"
	"socialgraph/pkg/errors"
	"socialgraph/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *errors.ErrorHandler
	logger       *zap.Logger
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *errors.ErrorHandler,
	logger *zap.Logger,
) *PersonHandler {
	return &PersonHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// AddPersonRequest represents the request body for registering a person
type AddPersonRequest struct {
	Name string `json:"name" validate:"required,max=256"`
}

// AddPerson handles POST /people
func (h *PersonHandler) AddPerson(w http.ResponseWriter, r *http.Request) {
	var req AddPersonRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		h.errorHandler.HandleStatus(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.AddPersonCommand{Name: req.Name}); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("Person added via API", zap.String("person", req.Name))

	common.RespondJSON(w, http.StatusCreated, queries.GetPersonResult{
		Name:    req.Name,
		Friends: []string{},
	})
}

// GetPerson handles GET /people/{name}
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	name, err := nameParam(r)
	if err != nil {
		h.errorHandler.Handle(w, r, errors.NewValidationError("name is not a valid path segment"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetPersonQuery{Name: name})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// nameParam returns the decoded {name} segment. chi routes on RawPath when the
// path holds escapes such as %2F, and then hands back the still-escaped value.
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
