package statuses_get

import (
	"net/http"

	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := actor.FromContext(r.Context())

	response.JSON(w, h.log, http.StatusOK, dto.StatusesResponse{
		Role:     user.Role.String(),
		Statuses: response.StatusDescriptors(h.statuses.ViewFor(user.Role)),
	})
}
