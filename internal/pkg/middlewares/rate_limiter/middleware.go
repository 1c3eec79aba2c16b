package rate_limiter

import (
	"net/http"
	"strconv"

	"dashboard/internal/pkg/middlewares/metrics"
	"dashboard/pkg/logger"
)

const rejectedBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// limit попадает только в заголовок X-RateLimit-Limit, сам лимитер настраивается снаружи.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(limit)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectedBody)); err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				)
			}
		})
	}
}
