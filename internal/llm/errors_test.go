package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/sevigo/code-mentor/internal/core"
)

func TestClassifyServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "structured 401",
			err:  genai.APIError{Code: 401, Message: "API key not valid", Status: "UNAUTHENTICATED"},
			want: core.ErrAuth,
		},
		{
			name: "structured 403",
			err:  genai.APIError{Code: 403, Message: "permission denied", Status: "PERMISSION_DENIED"},
			want: core.ErrAuth,
		},
		{
			name: "structured 429",
			err:  genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"},
			want: core.ErrRateLimit,
		},
		{
			name: "substring api key",
			err:  errors.New("rpc failed: API key expired"),
			want: core.ErrAuth,
		},
		{
			name: "substring safety",
			err:  errors.New("candidate blocked due to SAFETY"),
			want: core.ErrSafetyBlocked,
		},
		{
			name: "substring quota",
			err:  errors.New("you have exhausted your quota for today"),
			want: core.ErrRateLimit,
		},
		{
			name: "anything else is upstream",
			err:  errors.New("connection reset by peer"),
			want: core.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyServiceError(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
