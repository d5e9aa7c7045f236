package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcubed/cubed/internal/api/apierr"
	"github.com/mcubed/cubed/internal/api/handler"
	"github.com/mcubed/cubed/internal/api/middleware"
	sharedmw "github.com/mcubed/cubed/internal/middleware"
	"github.com/mcubed/cubed/internal/services/auth"
	"github.com/mcubed/cubed/internal/services/lineup"
	"github.com/mcubed/cubed/internal/services/wheel"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	LineupController *lineup.Controller
	WheelController  *wheel.Controller
	Store            handler.Pinger

	// LoginRatePerMinute caps login and createPassword attempts per client IP.
	// Zero disables the limit.
	LoginRatePerMinute int
}

// NewRouter creates a new API router with all JSON routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	lineupHandler := handler.NewLineupHandler(cfg.LineupController)
	wheelHandler := handler.NewWheelHandler(cfg.WheelController)
	healthHandler := handler.NewHealthHandler(cfg.Store)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Session routes (no auth required to log in)
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.LoginRatePerMinute > 0 {
		limiter := sharedmw.NewIPLimiter(cfg.LoginRatePerMinute, time.Minute)
		limit = func(h http.HandlerFunc) http.Handler { return middleware.RateLimit(limiter)(h) }
	}
	r.Handle("/login/json", limit(authHandler.Login)).Methods(http.MethodPost)
	r.Handle("/createPassword/json", limit(authHandler.CreatePassword)).Methods(http.MethodPost)
	r.HandleFunc("/state/json", authHandler.State).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Everything else requires a session
	protected := r.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/changePassword/json", authHandler.ChangePassword).Methods(http.MethodPost)

	// Lineup routes
	protected.HandleFunc("/lineup/alternateNames/list/json", lineupHandler.ListAlternateNames).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/alternateNames/get/json", lineupHandler.GetAlternateName).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/alternateNames/resolve/json", lineupHandler.ResolveName).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/missingNames/list/json", lineupHandler.ListMissingNames).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/missingNames/report/json", lineupHandler.ReportMissingName).Methods(http.MethodPost)

	// Wheel routes
	protected.HandleFunc("/wheel/categories/list/json", wheelHandler.ListCategories).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/get/json", wheelHandler.GetCategory).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/delete/json", wheelHandler.DeleteCategory).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/{categoryID}/words/list/json", wheelHandler.ListCategoryWords).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/words/list/json", wheelHandler.ListWords).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/words/get/json", wheelHandler.GetWord).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/words/delete/json", wheelHandler.DeleteWord).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/words/approveMany/json", wheelHandler.ApproveMany).Methods(http.MethodPost)
	protected.HandleFunc("/wheel/words/duplicates/json", wheelHandler.ListDuplicateWords).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/words/unverified/json", wheelHandler.ListUnverifiedWords).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	return r
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, &apierr.StatusError{
		Status:   http.StatusNotFound,
		APIError: apierr.APIError{Code: apierr.CodeNotFound, Message: "Not found"},
	})
}
