package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/services/auth"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"store not configured", model.ErrStoreNotConfigured, http.StatusServiceUnavailable, CodeStoreNotConfigured, ""},
		{"persistence", &model.PersistenceError{Op: "getAll", Message: "Cannot read all the records.", Err: errors.New("dial tcp: refused")},
			http.StatusInternalServerError, CodePersistenceFailed, "Cannot read all the records."},
		{"validation", model.NewValidationError("A category name must be specified."), http.StatusBadRequest, CodeValidationFailed, "A category name must be specified."},
		{"wrapped not found", fmt.Errorf("lookup: %w", model.ErrNotFound), http.StatusNotFound, CodeNotFound, ""},
		{"bad password", auth.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, ""},
		{"no session", auth.ErrInvalidSession, http.StatusUnauthorized, CodeUnauthorized, ""},
		{"admin exists", auth.ErrAdminExists, http.StatusConflict, CodeAdminExists, ""},
		{"explicit status", NewInvalidRequestError("bad sort"), http.StatusBadRequest, CodeInvalidRequest, "bad sort"},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, CodeInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := Resolve(tt.err)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, tt.code, se.APIError.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, se.APIError.Message)
			}
		})
	}
}

func TestWriteErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, &model.PersistenceError{Message: "Cannot delete all the records.", Err: errors.New("secret connection string")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "secret")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Cannot delete all the records.", body["message"])
}
