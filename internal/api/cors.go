package api

import (
	"net/http"

	corslib "github.com/rs/cors"
)

// CORS lets a separately served client call the API with the session cookie.
// With no allowed origins the handler is returned unchanged.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return next
	}

	c := corslib.New(corslib.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(next)
}
