package handler

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the envelope every gateway endpoint answers with.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Fixed client-facing messages. Internal error detail stays in the logs.
const (
	msgMissingFields = "Required fields are missing"
	msgServerError   = "Something went wrong, please try again later"
)

func writeSuccess(w http.ResponseWriter, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(apiResponse{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{Success: false, Message: message})
}
