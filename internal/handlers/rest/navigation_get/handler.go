package navigation_get

import (
	"net/http"

	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
)

type Handler struct {
	log       handlerLogger
	navigator Navigator
}

func New(log handlerLogger, navigator Navigator) *Handler {
	return &Handler{
		log:       log,
		navigator: navigator,
	}
}

// ServeHTTP не требует аутентификации: неизвестная роль получает пустое меню и /login.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := actor.FromContext(r.Context())

	items := h.navigator.MenuFor(user.Role)
	menu := make([]dto.MenuItem, 0, len(items))
	for _, item := range items {
		menu = append(menu, dto.MenuItem{Label: item.Label, Path: item.Path})
	}

	response.JSON(w, h.log, http.StatusOK, dto.NavigationResponse{
		Role:        user.Role.String(),
		LandingPath: h.navigator.LandingPathFor(user.Role),
		Menu:        menu,
	})
}
