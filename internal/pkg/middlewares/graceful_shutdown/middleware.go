package graceful_shutdown

import (
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы, как только выставлен флаг остановки.
// Запросы, начатые раньше, дорабатывают под контролем http.Server.Shutdown.
func Middleware(isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"message":"service is shutting down"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
