package middleware

import (
	"context"
	"net/http"

	"github.com/mcubed/cubed/internal/middleware"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/services/auth"
)

type contextKey string

const (
	stateContextKey contextKey = "sessionState"
)

// GetState retrieves the session state loaded by State or Auth
func GetState(ctx context.Context) model.SessionState {
	state, _ := ctx.Value(stateContextKey).(model.SessionState)
	return state
}

// State loads the session state into the context without requiring a login
func State(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := authService.CurrentState(r.Context(), middleware.SessionToken(r))
			ctx := context.WithValue(r.Context(), stateContextKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Auth returns middleware that requires a valid session.
// Redirects to the login page if there is none.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := middleware.SessionToken(r)
			if _, err := authService.ValidateSession(token); err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := middleware.WithSessionToken(r.Context(), token)
			ctx = context.WithValue(ctx, stateContextKey, model.SessionState{HasAdminAccount: true, IsLoggedIn: true})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
