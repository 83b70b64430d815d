package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an error body. Descriptions are omitted for 5xx statuses so
// internal details never leak to callers.
func WriteError(w http.ResponseWriter, status int, code, description string) {
	body := ErrorResponse{Error: code}
	if status < http.StatusInternalServerError {
		body.ErrorDescription = description
	}
	WriteJSON(w, status, body)
}
