package handler

import (
	"net/http"

	"github.com/mcubed/cubed/internal/api/request"
	"github.com/mcubed/cubed/internal/api/response"
	"github.com/mcubed/cubed/internal/middleware"
	"github.com/mcubed/cubed/internal/services/auth"
)

// AuthHandler handles the admin session endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /login/json
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.startSession(w, r, session, http.StatusOK)
}

// CreatePassword handles POST /createPassword/json
func (h *AuthHandler) CreatePassword(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePasswordRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.CreatePassword(r.Context(), req.Password, req.ConfirmPassword)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.startSession(w, r, session, http.StatusCreated)
}

// ChangePassword handles POST /changePassword/json
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req request.ChangePasswordRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		WriteError(w, err)
		return
	}

	state := h.authService.CurrentState(r.Context(), middleware.GetSessionToken(r.Context()))
	response.JSON(w, http.StatusOK, response.SessionResponse{SessionState: state})
}

// State handles GET /state/json
func (h *AuthHandler) State(w http.ResponseWriter, r *http.Request) {
	state := h.authService.CurrentState(r.Context(), middleware.SessionToken(r))
	response.JSON(w, http.StatusOK, response.SessionResponse{SessionState: state})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, session *auth.Session, status int) {
	middleware.SetSessionCookie(w, r, session.Token, session.ExpiresAt, h.authService.SessionDuration())
	response.JSON(w, status, response.SessionResponseFromSession(session))
}
