package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcubed/cubed/internal/services/auth"
	"github.com/mcubed/cubed/internal/services/lineup"
	"github.com/mcubed/cubed/internal/services/wheel"
	"github.com/mcubed/cubed/internal/web/handler"
	"github.com/mcubed/cubed/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	LineupController *lineup.Controller
	WheelController  *wheel.Controller
	StaticDir        string // Path to the client bundle

	// API handles every request no page route matches
	API http.Handler
}

// NewRouter creates a new web router with all page and form routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	stateMiddleware := middleware.State(cfg.AuthService)
	authMiddleware := middleware.Auth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	pageHandler := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler()
	lineupHandler := handler.NewLineupHandler(cfg.LineupController)
	wheelHandler := handler.NewWheelHandler(cfg.WheelController)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public pages
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(stateMiddleware)
	public.HandleFunc("/", pageHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/createPassword", authHandler.CreatePasswordPage).Methods(http.MethodGet)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Protected pages (require a session)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	protected.HandleFunc("/changePassword", pageHandler.Shell("Change Password")).Methods(http.MethodGet)

	// Lineup pages
	protected.HandleFunc("/lineup/alternateNames/list", pageHandler.Shell("Alternate Names")).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/alternateNames/edit", pageHandler.Shell("Edit Alternate Name")).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/alternateNames/edit", lineupHandler.EditAlternateName).Methods(http.MethodPost)
	protected.HandleFunc("/lineup/alternateNames/delete", lineupHandler.DeleteAlternateName).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/missingNames/list", pageHandler.Shell("Missing Names")).Methods(http.MethodGet)
	protected.HandleFunc("/lineup/missingNames/delete", lineupHandler.DeleteMissingNames).Methods(http.MethodGet)

	// Wheel pages
	protected.HandleFunc("/wheel/categories/list", pageHandler.Shell("Categories")).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/edit", pageHandler.Shell("Edit Category")).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/edit", wheelHandler.EditCategory).Methods(http.MethodPost)
	protected.HandleFunc("/wheel/categories/{categoryID}/list", pageHandler.Shell("Category Words")).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/{categoryID}/words/edit", pageHandler.Shell("Edit Word")).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/categories/{categoryID}/words/edit", wheelHandler.EditWord).Methods(http.MethodPost)
	protected.HandleFunc("/wheel/duplicates/list", pageHandler.Shell("Duplicate Words")).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/unverified/list", pageHandler.Shell("Unverified Words")).Methods(http.MethodGet)
	protected.HandleFunc("/wheel/words/edit", pageHandler.Shell("Edit Word")).Methods(http.MethodGet)

	if cfg.API != nil {
		r.NotFoundHandler = cfg.API
	}

	return r
}
