package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes a 200 response with an empty JSON object, for operations with nothing to return
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, struct{}{})
}
