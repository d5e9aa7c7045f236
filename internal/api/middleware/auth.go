package middleware

import (
	"net/http"

	"github.com/mcubed/cubed/internal/api/apierr"
	"github.com/mcubed/cubed/internal/middleware"
	"github.com/mcubed/cubed/internal/services/auth"
)

// Auth rejects requests without a valid session with a JSON 401
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := middleware.SessionToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if _, err := authService.ValidateSession(token); err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(middleware.WithSessionToken(r.Context(), token)))
		})
	}
}

// RateLimit throttles a route per client IP, answering 429 in the API error shape
func RateLimit(limiter *middleware.IPLimiter) func(http.Handler) http.Handler {
	return middleware.RateLimit(limiter, func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewRateLimitedError())
	})
}
