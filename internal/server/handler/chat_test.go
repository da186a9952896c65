package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-mentor/internal/core"
)

type fakeFollowUpService struct {
	answer  string
	err     error
	lastReq core.ChatRequest
}

func (f *fakeFollowUpService) Ask(_ context.Context, req core.ChatRequest) (string, error) {
	f.lastReq = req
	return f.answer, f.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Ask(rec, req)
	return rec
}

func TestChatHandler(t *testing.T) {
	svc := &fakeFollowUpService{answer: "Use a map instead of a slice."}
	h := NewChatHandler(svc, discardLogger())

	body := `{
		"question": "Why is the lookup slow?",
		"code": "function f(){}",
		"history": [
			{"role": "user", "text": "earlier question"},
			{"role": "model", "text": "earlier answer"}
		]
	}`
	rec := postChat(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Use a map instead of a slice.", resp.Answer)

	require.Len(t, svc.lastReq.History, 2)
	assert.Equal(t, core.RoleModel, svc.lastReq.History[1].Role)
	assert.Equal(t, "function f(){}", svc.lastReq.Code)
}

func TestChatHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "empty question", err: core.NewValidationError("question", "must not be empty"), wantStatus: http.StatusBadRequest},
		{name: "missing credentials", err: core.ErrMissingCredentials, wantStatus: http.StatusUnauthorized},
		{name: "rate limited", err: core.ErrRateLimit, wantStatus: http.StatusTooManyRequests},
		{name: "upstream failure", err: core.ErrUpstream, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewChatHandler(&fakeFollowUpService{err: tt.err}, discardLogger())
			rec := postChat(t, h, `{"question":"x"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestChatHandler_BadJSON(t *testing.T) {
	h := NewChatHandler(&fakeFollowUpService{}, discardLogger())
	rec := postChat(t, h, `{"question"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
