package handler

import (
	"net/http"

	"github.com/mcubed/cubed/internal/web/middleware"
)

// HomePath is where a logged-in admin lands
const HomePath = "/lineup/alternateNames/list"

// PageHandler serves the client shell for the page routes
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home redirects to the first list page, or to whichever auth page applies
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r.Context())
	switch {
	case state.IsLoggedIn:
		http.Redirect(w, r, HomePath, http.StatusSeeOther)
	case !state.HasAdminAccount && state.ServerError == "":
		http.Redirect(w, r, "/createPassword", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

// Shell returns a handler rendering the client shell under the given title
func (h *PageHandler) Shell(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderShell(w, r, title)
	}
}
