package orders_get

import (
	"errors"
	"net/http"
	"strconv"

	"dashboard/internal/gateway/rest/backend"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/internal/service/reconciler"
	"dashboard/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	orders    Orders
	navigator Navigator
	statuses  Statuses
}

func New(log handlerLogger, orders Orders, navigator Navigator, statuses Statuses) *Handler {
	return &Handler{
		log:       log,
		orders:    orders,
		navigator: navigator,
		statuses:  statuses,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := actor.FromContext(r.Context())
	if !user.Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", h.navigator.BackPathFor(user))
		return
	}

	mine, err := queryBool(r, "mine")
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid mine parameter")
		return
	}
	reload, err := queryBool(r, "reload")
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid reload parameter")
		return
	}

	scope := h.navigator.ScopeFor(user, mine)

	view, err := h.orders.View(r.Context(), scope, reload)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrForbidden):
			response.PageError(w, h.log, http.StatusForbidden, "access to orders denied", h.navigator.BackPathFor(user))
		case errors.Is(err, reconciler.ErrClosed):
			response.Error(w, h.log, http.StatusServiceUnavailable, "service is shutting down")
		default:
			h.log.Warn("orders: load working set",
				logger.NewField("scope", scope.Key()),
				logger.NewField("error", err),
			)
			response.Error(w, h.log, http.StatusBadGateway, "failed to load orders")
		}
		return
	}

	orders := make([]dto.Order, 0, len(view.Orders))
	for _, o := range view.Orders {
		orders = append(orders, response.Order(o, h.statuses.Resolve(o.Status)))
	}

	res := dto.OrdersResponse{
		Scope:  view.Scope.Key(),
		Orders: orders,
	}
	if view.Notice != reconciler.NoticeNone {
		notice := dto.OrdersResponseNotice(view.Notice.String())
		res.Notice = &notice
	}
	if !view.LoadedAt.IsZero() {
		loadedAt := view.LoadedAt
		res.LoadedAt = &loadedAt
	}

	response.JSON(w, h.log, http.StatusOK, res)
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
