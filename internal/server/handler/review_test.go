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

type fakeReviewService struct {
	result  *core.ReviewResult
	err     error
	lastReq core.ReviewRequest
}

func (f *fakeReviewService) Review(_ context.Context, req core.ReviewRequest) (*core.ReviewResult, error) {
	f.lastReq = req
	return f.result, f.err
}

func postReview(t *testing.T, h *ReviewHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Review(rec, req)
	return rec
}

func TestReviewHandler(t *testing.T) {
	svc := &fakeReviewService{
		result: &core.ReviewResult{
			Language:      "python",
			OptimizedCode: "print(1)",
			Explanation:   "nothing to change",
			OverallScore:  9,
		},
	}
	h := NewReviewHandler(svc, discardLogger())

	rec := postReview(t, h, `{"code":"print(1)","mode":"interview","targetLanguage":"none"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "print(1)", svc.lastReq.Code)
	assert.Equal(t, core.ModeInterview, svc.lastReq.Mode)

	var result core.ReviewResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "python", result.Language)
	assert.InDelta(t, 9.0, result.OverallScore, 0.001)
}

func TestReviewHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: core.NewValidationError("code", "must not be empty"), wantStatus: http.StatusBadRequest},
		{name: "missing credentials", err: core.ErrMissingCredentials, wantStatus: http.StatusUnauthorized},
		{name: "auth rejected", err: core.ErrAuth, wantStatus: http.StatusUnauthorized},
		{name: "safety blocked", err: core.ErrSafetyBlocked, wantStatus: http.StatusUnprocessableEntity},
		{name: "rate limited", err: core.ErrRateLimit, wantStatus: http.StatusTooManyRequests},
		{name: "malformed response", err: &core.MalformedResponseError{Reason: "missing complexity"}, wantStatus: http.StatusBadGateway},
		{name: "empty response", err: core.ErrEmptyResponse, wantStatus: http.StatusBadGateway},
		{name: "upstream failure", err: core.ErrUpstream, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReviewHandler(&fakeReviewService{err: tt.err}, discardLogger())
			rec := postReview(t, h, `{"code":"x"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReviewHandler_BadJSON(t *testing.T) {
	h := NewReviewHandler(&fakeReviewService{}, discardLogger())
	rec := postReview(t, h, `{"code": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
