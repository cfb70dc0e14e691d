package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"recommender/internal/manager"
	"recommender/internal/validation"
	"recommender/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps service errors to HTTP status codes. Unknown errors map to fallback.
func statusFor(err error, fallback int) int {
	var verr validation.Errors
	switch {
	case err == nil:
		return http.StatusOK
	case manager.IsSessionNotFound(err):
		return http.StatusNotFound
	case manager.IsSubmitInFlight(err):
		return http.StatusConflict
	case manager.IsValidation(err), errors.As(err, &verr):
		return http.StatusBadRequest
	case manager.IsGeneratorUnavailable(err):
		return http.StatusServiceUnavailable
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return fallback
}
