// Package handler provides the HTTP handlers behind the browser UI.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-mentor/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response body", "error", err)
	}
}

// writeError maps an application error onto the HTTP surface. Internal faults
// are logged server-side and reported with a generic message so storage
// details never leak to the browser.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErr *core.ValidationError
	var internalErr *core.InternalError
	var malformedErr *core.MalformedResponseError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.Is(err, core.ErrMissingCredentials), errors.Is(err, core.ErrAuth):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrSafetyBlocked):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrRateLimit):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
	case errors.As(err, &malformedErr), errors.Is(err, core.ErrEmptyResponse), errors.Is(err, core.ErrUpstream):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.As(err, &internalErr):
		logger.Error("internal error", "error", internalErr.Err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	default:
		logger.Error("unclassified error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
