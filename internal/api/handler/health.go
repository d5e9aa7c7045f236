package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mcubed/cubed/internal/api/response"
	"github.com/mcubed/cubed/internal/model"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		timeout: 2 * time.Second,
	}
}

// Health handles GET /health. An unconfigured store is reported but still healthy, since
// the service runs in that mode by choice.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	err := h.store.Ping(ctx)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok", Store: "ok"})
	case errors.Is(err, model.ErrStoreNotConfigured):
		response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok", Store: "not configured"})
	default:
		response.JSON(w, http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Store: "unavailable"})
	}
}
