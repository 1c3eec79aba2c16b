package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound  = errors.New("backend: not found")
	ErrForbidden = errors.New("backend: forbidden")
)

// APIError - ответ бэкенда с не-2xx кодом. Message и ErrorText берутся из полей
// "message" и "error" тела ответа, если они там были.
type APIError struct {
	StatusCode int
	Message    string
	ErrorText  string
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.ErrorText
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, detail)
}

func classify(apiErr *APIError) error {
	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, apiErr)
	default:
		return apiErr
	}
}
