package order_history_get

import (
	"errors"
	"net/http"

	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/internal/service/history"
	"dashboard/internal/service/navigation"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log    handlerLogger
	ledger Ledger
}

func New(log handlerLogger, ledger Ledger) *Handler {
	return &Handler{
		log:    log,
		ledger: ledger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !actor.FromContext(r.Context()).Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", navigation.LoginPath)
		return
	}

	orderID := mux.Vars(r)["id"]

	entries, err := h.ledger.History(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, history.ErrInvalidOrderID) {
			response.Error(w, h.log, http.StatusBadRequest, "invalid order id")
			return
		}

		h.log.Warn("history: fetch failed",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		response.Error(w, h.log, http.StatusBadGateway, "failed to load assignment history")
		return
	}

	res := dto.HistoryResponse{Entries: make([]dto.HistoryEntry, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.HistoryEntry{
			Id:           e.ID,
			Action:       e.Action,
			ResourceName: e.ResourceName,
			ActorName:    e.ActorName,
			OccurredAt:   e.OccurredAt,
			OldValue:     e.OldValue,
			NewValue:     e.NewValue,
		})
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
