package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/services/auth"
)

// APIError is the uniform error body
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAdminExists        = "ADMIN_EXISTS"
	CodeNotFound           = "NOT_FOUND"
	CodeStoreNotConfigured = "STORE_NOT_CONFIGURED"
	CodePersistenceFailed  = "PERSISTENCE_FAILED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// StatusError combines an HTTP status code with an APIError
type StatusError struct {
	Status   int
	APIError APIError
}

// Error implements error interface
func (e *StatusError) Error() string {
	return e.APIError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	se := Resolve(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(se.Status)
	_ = json.NewEncoder(w).Encode(se.APIError)
}

// Resolve maps an error onto its status and client-safe body
func Resolve(err error) *StatusError {
	// Errors that already carry a status keep it
	var se *StatusError
	if errors.As(err, &se) {
		return se
	}

	var (
		perr *model.PersistenceError
		verr *model.ValidationError
	)
	switch {
	case errors.Is(err, model.ErrStoreNotConfigured):
		return &StatusError{http.StatusServiceUnavailable, APIError{CodeStoreNotConfigured, "The specified database is not valid. Ensure the correct configurations have been specified."}}
	case errors.As(err, &perr):
		return &StatusError{http.StatusInternalServerError, APIError{CodePersistenceFailed, perr.Message}}
	case errors.As(err, &verr):
		return &StatusError{http.StatusBadRequest, APIError{CodeValidationFailed, verr.Message}}
	case errors.Is(err, model.ErrNotFound):
		return &StatusError{http.StatusNotFound, APIError{CodeNotFound, "The specified record was not found."}}
	case errors.Is(err, model.ErrMissingID):
		return &StatusError{http.StatusBadRequest, APIError{CodeInvalidRequest, "An id must be specified."}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &StatusError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "The password specified is incorrect."}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &StatusError{http.StatusUnauthorized, APIError{CodeUnauthorized, "You must be logged in to access this resource."}}
	case errors.Is(err, auth.ErrAdminExists):
		return &StatusError{http.StatusConflict, APIError{CodeAdminExists, "An admin account already exists."}}

	default:
		return &StatusError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &StatusError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &StatusError{http.StatusUnauthorized, APIError{CodeUnauthorized, "You must be logged in to access this resource."}}
}

// NewRateLimitedError creates a too-many-requests error
func NewRateLimitedError() error {
	return &StatusError{http.StatusTooManyRequests, APIError{CodeRateLimited, "Too many attempts. Try again later."}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &StatusError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
