package order_submissions_get

import (
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/internal/service/journal"
	"dashboard/internal/service/navigation"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	journal Journal
}

func New(log handlerLogger, journal Journal) *Handler {
	return &Handler{
		log:     log,
		journal: journal,
	}
}

// ServeHTTP отдает локальный журнал попыток назначения, отправленных этим сервисом.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !actor.FromContext(r.Context()).Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", navigation.LoginPath)
		return
	}

	orderID := mux.Vars(r)["id"]

	submissions, err := h.journal.ListByOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, journal.ErrInvalidOrderID) {
			response.Error(w, h.log, http.StatusBadRequest, "invalid order id")
			return
		}

		h.log.Error("submissions: list failed",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SubmissionsResponse{Submissions: make([]dto.Submission, 0, len(submissions))}
	for _, s := range submissions {
		res.Submissions = append(res.Submissions, toSubmission(s))
	}

	response.JSON(w, h.log, http.StatusOK, res)
}

func toSubmission(s entities.Submission) dto.Submission {
	return dto.Submission{
		Id:         s.ID,
		RequestId:  s.RequestID,
		OrderId:    s.OrderID,
		ActorId:    s.ActorID,
		VehicleId:  s.Selections.VehicleID,
		DriverId:   s.Selections.DriverID,
		TrailerId:  s.Selections.TrailerID,
		Outcome:    dto.SubmissionOutcome(s.Outcome.String()),
		Message:    s.Message,
		Superseded: s.Superseded,
		CreatedAt:  s.CreatedAt,
	}
}
