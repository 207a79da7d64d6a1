package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/platform/logger"
)

// ErrorWriter renders a request error. The transport maps model.ErrRateLimited to 429.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// RateLimit rejects requests through reject once the shared token bucket is empty.
func RateLimit(limiter *rate.Limiter, reject ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn(r.Context(), "rate limited",
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
				)

				w.Header().Set("Retry-After", "1")
				reject(w, r, model.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
