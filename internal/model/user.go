package model

// AdminUsername is the only account name the system knows
const AdminUsername = "admin"

// User is the administrative account
type User struct {
	ID       string `json:"id,omitempty" bson:"_id,omitempty"`
	Username string `json:"username,omitempty" bson:"username,omitempty"`
	Password string `json:"-" bson:"password,omitempty"` // bcrypt hash
}

// SessionState is derived per request and never persisted
type SessionState struct {
	HasAdminAccount bool   `json:"hasAdminAccount"`
	IsLoggedIn      bool   `json:"isLoggedIn"`
	ServerError     string `json:"serverError,omitempty"`
}
