package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fjod/go_storefront/internal/checkout"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// FieldErrorsResponse carries per-field validation problems
type FieldErrorsResponse struct {
	Errors checkout.FieldErrors `json:"errors"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func respondFieldErrors(w http.ResponseWriter, fe checkout.FieldErrors) {
	respondJSON(w, http.StatusUnprocessableEntity, FieldErrorsResponse{Errors: fe})
}
