package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
)

var errInvalidBody = errors.New("invalid request body")

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse represents a plain status message
// swagger:model MessageResponse
type MessageResponse struct {
	// Status message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its HTTP status.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrInvalidParameters):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrDuplicateUsername):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotAuthenticated):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrClassifier):
		logger.Log.Errorw("classifier error", "err", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: services.ErrClassifier.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// decodeParameters reads a JSON object of feature values. Numbers are
// kept as json.Number so that validation sees the literal input.
func decodeParameters(r *http.Request) (map[string]any, error) {
	var raw map[string]any

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return nil, errInvalidBody
	}
	return raw, nil
}
