package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcubed/cubed/internal/middleware"
)

// Logging creates logging middleware for the page routes
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
