package response

import (
	"encoding/json"
	"net/http"

	"dashboard/internal/generated/dto"
	"dashboard/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response",
			logger.NewField("error", err),
		)
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

// PageError - ошибка уровня страницы: фронт уводит пользователя на back_path.
func PageError(w http.ResponseWriter, log errorLogger, status int, message, backPath string) {
	JSON(w, log, status, dto.ErrorResponse{
		Message:  message,
		BackPath: &backPath,
	})
}
