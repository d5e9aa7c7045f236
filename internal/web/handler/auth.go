package handler

import (
	"net/http"

	sharedmw "github.com/mcubed/cubed/internal/middleware"
	"github.com/mcubed/cubed/internal/web/middleware"
)

// AuthHandler handles the login, bootstrap and logout pages
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginPage renders the login page. With no admin account yet it sends the
// visitor to create one instead.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r.Context())
	if state.IsLoggedIn {
		http.Redirect(w, r, HomePath, http.StatusSeeOther)
		return
	}
	if !state.HasAdminAccount && state.ServerError == "" {
		http.Redirect(w, r, "/createPassword", http.StatusSeeOther)
		return
	}

	renderShell(w, r, "Login")
}

// CreatePasswordPage renders the admin bootstrap page while no admin exists
func (h *AuthHandler) CreatePasswordPage(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r.Context())
	if state.IsLoggedIn {
		http.Redirect(w, r, HomePath, http.StatusSeeOther)
		return
	}
	if state.HasAdminAccount {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	renderShell(w, r, "Create Password")
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sharedmw.ClearSessionCookie(w)
	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
