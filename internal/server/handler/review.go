package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-mentor/internal/core"
)

// ReviewHandler proxies review requests to the generative service so the API
// credential stays on the server.
type ReviewHandler struct {
	reviewer core.ReviewService
	logger   *slog.Logger
}

// NewReviewHandler creates the review handler.
func NewReviewHandler(reviewer core.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewer: reviewer, logger: logger}
}

// Review handles POST /api/review.
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req core.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, core.NewValidationError("body", "must be valid JSON"))
		return
	}

	result, err := h.reviewer.Review(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
