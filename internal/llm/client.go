package llm

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/core"
)

// Generator abstracts the generative backend so the review and follow-up
// services can be tested without network access.
type Generator interface {
	// GenerateJSON sends a single prompt and asks the service for a JSON
	// payload matching schema. It returns the raw payload text.
	GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error)

	// GenerateChat sends a multi-turn transcript with an optional system
	// instruction and returns the answer text, which may be empty.
	GenerateChat(ctx context.Context, model, system string, contents []*genai.Content) (string, error)
}

// GeminiClient is the production Generator backed by the Gemini API.
type GeminiClient struct {
	client *genai.Client
	logger *slog.Logger
}

// NewGeminiClient creates the Gemini-backed generator. A missing API key is
// not a startup error: the client is created in a degraded state and every
// generation attempt fails with ErrMissingCredentials before any network
// call, so the history endpoints keep working without a credential.
func NewGeminiClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*GeminiClient, error) {
	if cfg.AI.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, review and chat requests will fail until it is configured")
		return &GeminiClient{logger: logger}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiClient{client: client, logger: logger}, nil
}

// GenerateJSON runs one structured-output generation. Reviews favour latency
// over deliberation, so the thinking budget is pinned to zero.
func (c *GeminiClient) GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	if c.client == nil {
		return "", core.ErrMissingCredentials
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", classifyServiceError(err)
	}
	if reason := blockReason(resp); reason != "" {
		return "", fmt.Errorf("%w: %s", core.ErrSafetyBlocked, reason)
	}

	text := resp.Text()
	if text == "" {
		return "", core.ErrEmptyResponse
	}
	return text, nil
}

// GenerateChat runs one conversational generation over the full transcript.
// An empty answer is returned as-is; the caller decides on a fallback.
func (c *GeminiClient) GenerateChat(ctx context.Context, model, system string, contents []*genai.Content) (string, error) {
	if c.client == nil {
		return "", core.ErrMissingCredentials
	}

	genCfg := &genai.GenerateContentConfig{}
	if system != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		return "", classifyServiceError(err)
	}
	if reason := blockReason(resp); reason != "" {
		return "", fmt.Errorf("%w: %s", core.ErrSafetyBlocked, reason)
	}

	return resp.Text(), nil
}

// blockReason reports the content-policy block reason, if any.
func blockReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.PromptFeedback == nil {
		return ""
	}
	return string(resp.PromptFeedback.BlockReason)
}

var _ Generator = (*GeminiClient)(nil)
