package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-mentor/internal/core"
)

// ChatHandler forwards follow-up questions, replaying the caller-owned
// transcript on every request.
type ChatHandler struct {
	assistant core.FollowUpService
	logger    *slog.Logger
}

// NewChatHandler creates the chat handler.
func NewChatHandler(assistant core.FollowUpService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{assistant: assistant, logger: logger}
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST /api/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req core.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, core.NewValidationError("body", "must be valid JSON"))
		return
	}

	answer, err := h.assistant.Ask(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}
