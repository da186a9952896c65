package llm

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/core"
)

// followUpFallback is returned when the service produces no answer text at
// all; the UI shows it verbatim.
const followUpFallback = "I couldn't come up with an answer to that. Could you rephrase the question?"

// followUpPromptData is the type-safe input for the followup template.
type followUpPromptData struct {
	Code     string
	ErrorLog string
}

// Assistant answers follow-up questions about reviewed code. It holds no
// session state: the caller owns the transcript and replays it on every call.
type Assistant struct {
	gen          Generator
	prompts      *PromptManager
	defaultModel string
	logger       *slog.Logger
}

// NewAssistant creates the follow-up service.
func NewAssistant(gen Generator, prompts *PromptManager, cfg *config.Config, logger *slog.Logger) *Assistant {
	return &Assistant{
		gen:          gen,
		prompts:      prompts,
		defaultModel: cfg.AI.DefaultModel,
		logger:       logger,
	}
}

// Ask sends the system instruction, the full prior transcript and the new
// question as one request and returns the single answer text.
func (a *Assistant) Ask(ctx context.Context, req core.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", core.NewValidationError("question", "must not be empty")
	}

	system, err := a.prompts.Render(FollowUpPrompt, followUpPromptData{
		Code:     req.Code,
		ErrorLog: req.ErrorLog,
	})
	if err != nil {
		return "", &core.InternalError{Err: err}
	}

	model := a.defaultModel
	if req.Model != "" {
		model = req.Model
	}
	model = ResolveModel(model)

	contents := buildTranscript(req.History, req.Question)

	a.logger.Info("dispatching follow-up question",
		"model", model,
		"prior_turns", len(req.History),
	)

	answer, err := a.gen.GenerateChat(ctx, model, system, contents)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		a.logger.Warn("follow-up answer was empty, using fallback", "model", model)
		return followUpFallback, nil
	}
	return answer, nil
}

// buildTranscript converts the caller-owned transcript plus the new question
// into service contents, preserving order and truncating nothing.
func buildTranscript(history []core.ChatMessage, question string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == core.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))
	return contents
}

var _ core.FollowUpService = (*Assistant)(nil)
