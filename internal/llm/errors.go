package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/sevigo/code-mentor/internal/core"
)

// classifyServiceError maps a raw Gemini API failure onto the application's
// error taxonomy. The structured status code on genai.APIError is preferred;
// substring matching on the message is a best-effort fallback only and may
// misclassify unusual upstream errors.
func classifyServiceError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %s", core.ErrAuth, apiErr.Message)
		case apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED":
			return fmt.Errorf("%w: %s", core.ErrRateLimit, apiErr.Message)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "permission denied"):
		return fmt.Errorf("%w: %v", core.ErrAuth, err)
	case strings.Contains(msg, "safety") ||
		strings.Contains(msg, "blocked") ||
		strings.Contains(msg, "prohibited content"):
		return fmt.Errorf("%w: %v", core.ErrSafetyBlocked, err)
	case strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "too many requests"):
		return fmt.Errorf("%w: %v", core.ErrRateLimit, err)
	}

	return fmt.Errorf("%w: %v", core.ErrUpstream, err)
}
