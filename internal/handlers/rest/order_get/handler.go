package order_get

import (
	"errors"
	"net/http"
	"strings"

	"dashboard/internal/gateway/rest/backend"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log       handlerLogger
	gateway   Gateway
	navigator Navigator
	statuses  Statuses
}

func New(log handlerLogger, gateway Gateway, navigator Navigator, statuses Statuses) *Handler {
	return &Handler{
		log:       log,
		gateway:   gateway,
		navigator: navigator,
		statuses:  statuses,
	}
}

// ServeHTTP всегда читает заказ с бэкенда: страница заказа должна показывать актуальные данные,
// а не снимок рабочего набора.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := actor.FromContext(r.Context())
	backPath := h.navigator.BackPathFor(user)
	if !user.Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", backPath)
		return
	}

	orderID := strings.TrimSpace(mux.Vars(r)["id"])
	if orderID == "" {
		response.PageError(w, h.log, http.StatusNotFound, "order not found", backPath)
		return
	}

	order, err := h.gateway.GetOrderByID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrNotFound):
			response.PageError(w, h.log, http.StatusNotFound, "order not found", backPath)
		case errors.Is(err, backend.ErrForbidden):
			response.PageError(w, h.log, http.StatusForbidden, "access to order denied", backPath)
		default:
			h.log.Warn("order: fetch failed",
				logger.NewField("order", orderID),
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusBadGateway, "failed to load order")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.OrderResponse{
		Order:     response.Order(*order, h.statuses.Resolve(order.Status)),
		Editable:  h.navigator.CanEdit(*order, user),
		CanAssign: h.navigator.CanAssign(user),
	})
}
