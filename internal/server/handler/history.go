package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-mentor/internal/core"
	"github.com/sevigo/code-mentor/internal/storage"
)

// HistoryHandler persists and lists review history records.
type HistoryHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewHistoryHandler creates the history handler.
func NewHistoryHandler(store storage.Store, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, logger: logger}
}

type createHistoryRequest struct {
	OriginalCode string           `json:"originalCode"`
	ImprovedCode string           `json:"improvedCode"`
	Language     string           `json:"language"`
	Complexity   *core.Complexity `json:"complexity"`
}

type createHistoryResponse struct {
	Success  bool `json:"success"`
	Inserted bool `json:"inserted"`
}

// Create handles POST /api/history. A repeat of an already-recorded pair
// answers success with inserted=false.
func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, core.NewValidationError("body", "must be valid JSON"))
		return
	}

	entry := core.HistoryEntry{
		OriginalCode: req.OriginalCode,
		ImprovedCode: req.ImprovedCode,
		Language:     req.Language,
	}
	if req.Complexity != nil {
		entry.Complexity = *req.Complexity
	}

	inserted, err := h.store.Record(r.Context(), entry)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, createHistoryResponse{Success: true, Inserted: inserted})
}

// List handles GET /api/history: the most recent records, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context(), storage.MaxListLimit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
