package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает контекст запроса. Отправка назначения отвязана от него
// внутри сервиса назначения, поэтому таймаут здесь не обрывает уже ушедший POST.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
