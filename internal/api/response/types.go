package response

import (
	"time"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/services/auth"
)

// SessionResponse is the response for login and password endpoints
type SessionResponse struct {
	model.SessionState
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// SessionResponseFromSession creates a logged-in SessionResponse from an issued session
func SessionResponseFromSession(s *auth.Session) SessionResponse {
	return SessionResponse{
		SessionState: model.SessionState{HasAdminAccount: true, IsLoggedIn: true},
		Token:        s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// HealthResponse reports liveness and store reachability
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// ApproveManyResponse reports which word ids could not be approved
type ApproveManyResponse struct {
	Message string   `json:"message,omitempty"`
	Failed  []string `json:"failed"`
}
