package orders_stats_get

import (
	"errors"
	"net/http"
	"strconv"

	"dashboard/internal/gateway/rest/backend"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
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

// ServeHTTP считает статистику по уже загруженному рабочему набору, без похода за отдельным эндпоинтом.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := actor.FromContext(r.Context())
	if !user.Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", h.navigator.BackPathFor(user))
		return
	}

	var mine bool
	if raw := r.URL.Query().Get("mine"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, h.log, http.StatusBadRequest, "invalid mine parameter")
			return
		}
		mine = parsed
	}

	scope := h.navigator.ScopeFor(user, mine)

	view, err := h.orders.View(r.Context(), scope, false)
	if err != nil {
		if errors.Is(err, backend.ErrForbidden) {
			response.PageError(w, h.log, http.StatusForbidden, "access to orders denied", h.navigator.BackPathFor(user))
			return
		}
		h.log.Warn("orders stats: load working set",
			logger.NewField("scope", scope.Key()),
			logger.NewField("error", err),
		)
		response.Error(w, h.log, http.StatusBadGateway, "failed to load orders")
		return
	}

	counts := h.statuses.Tally(view.Orders)
	stats := make([]dto.StatusCount, 0, len(counts))
	for _, c := range counts {
		stats = append(stats, dto.StatusCount{
			Status: response.StatusDescriptor(c.Descriptor),
			Count:  c.Count,
		})
	}

	response.JSON(w, h.log, http.StatusOK, dto.OrdersStatsResponse{
		Total: len(view.Orders),
		Stats: stats,
	})
}
