package order_assignment_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/internal/service/assignment"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log       handlerLogger
	engine    Engine
	registry  Registry
	navigator Navigator
	statuses  Statuses
}

func New(log handlerLogger, engine Engine, registry Registry, navigator Navigator, statuses Statuses) *Handler {
	return &Handler{
		log:       log,
		engine:    engine,
		registry:  registry,
		navigator: navigator,
		statuses:  statuses,
	}
}

// ServeHTTP отправляет частичное назначение. Параметр mine указывает область списка,
// из которой пришел пользователь: в ней заказ обновляется сразу, в остальных перечитывается.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := actor.FromContext(r.Context())
	if !user.Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", h.navigator.BackPathFor(user))
		return
	}
	if !h.navigator.CanAssign(user) {
		response.PageError(w, h.log, http.StatusForbidden, "role cannot assign resources", h.navigator.BackPathFor(user))
		return
	}

	mine := false
	if raw := r.URL.Query().Get("mine"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, h.log, http.StatusBadRequest, "invalid mine parameter")
			return
		}
		mine = v
	}

	var req dto.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	orderID := mux.Vars(r)["id"]
	sel := entities.Selections{
		VehicleID: req.VehicleId,
		DriverID:  req.DriverId,
		TrailerID: req.TrailerId,
	}

	result, err := h.engine.Assign(r.Context(), orderID, sel, user.ID)
	if err != nil {
		var submissionErr *assignment.SubmissionError
		switch {
		case errors.Is(err, assignment.ErrUnauthenticated):
			response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", h.navigator.BackPathFor(user))
		case errors.Is(err, assignment.ErrNothingToAssign):
			response.Error(w, h.log, http.StatusBadRequest, "select at least one resource")
		case errors.Is(err, assignment.ErrInvalidOrderID):
			response.Error(w, h.log, http.StatusBadRequest, "invalid order id")
		case errors.As(err, &submissionErr):
			response.Error(w, h.log, http.StatusBadGateway, submissionErr.Message)
		default:
			h.log.Error("assignment: unexpected error",
				logger.NewField("order", orderID),
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.registry.AssignmentSucceeded(h.navigator.ScopeFor(user, mine), orderID, sel.Normalized(), result.Order)

	res := dto.AssignmentResponse{
		RequestId:    result.RequestID,
		NeedsRefetch: result.NeedsRefetch,
	}
	if result.Order != nil {
		order := response.Order(*result.Order, h.statuses.Resolve(result.Order.Status))
		res.Order = &order
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
