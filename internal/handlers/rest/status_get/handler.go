package status_get

import (
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/handlers/rest/response"

	"github.com/gorilla/mux"
)

type Handler struct {
	log      handlerLogger
	statuses Statuses
}

func New(log handlerLogger, statuses Statuses) *Handler {
	return &Handler{
		log:      log,
		statuses: statuses,
	}
}

// ServeHTTP всегда отвечает 200: неизвестный статус отдается с дефолтным оформлением.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := entities.OrderStatus(mux.Vars(r)["status"])

	response.JSON(w, h.log, http.StatusOK, response.StatusDescriptor(h.statuses.Resolve(raw)))
}
