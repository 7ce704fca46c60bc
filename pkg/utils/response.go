package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every handler returns on error paths and on admin
// operations: a success flag, a human-readable message and a machine code.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{
		Success: false,
		Message: message,
		Code:    http.StatusText(status),
	})
}
