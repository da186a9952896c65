package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/core"
)

// reviewPromptData is the type-safe input for the code_review template.
type reviewPromptData struct {
	Code                 string
	SourceLanguage       string
	TargetLanguage       string
	AutoDetect           bool
	Convert              bool
	ModeInstruction      string
	StyleInstruction     string
	VerbosityInstruction string
	ToneInstruction      string
	ErrorLog             string
	HouseStyle           string
}

// Reviewer builds review prompts, dispatches them to the generative service
// and validates the structured response. One call makes exactly one attempt;
// retrying is the caller's decision.
type Reviewer struct {
	gen          Generator
	prompts      *PromptManager
	defaultModel string
	logger       *slog.Logger
}

// NewReviewer creates the review service.
func NewReviewer(gen Generator, prompts *PromptManager, cfg *config.Config, logger *slog.Logger) *Reviewer {
	return &Reviewer{
		gen:          gen,
		prompts:      prompts,
		defaultModel: cfg.AI.DefaultModel,
		logger:       logger,
	}
}

// Review runs one code review. Cross-language conversion is requested only
// when a target language is set, is not the "none" sentinel, and differs from
// the declared source language.
func (r *Reviewer) Review(ctx context.Context, req core.ReviewRequest) (*core.ReviewResult, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, core.NewValidationError("code", "must not be empty")
	}

	source := req.SourceLanguage
	if source == "" {
		source = core.SourceLanguageAuto
	}

	target := strings.TrimSpace(req.TargetLanguage)
	convert := target != "" &&
		!strings.EqualFold(target, core.TargetLanguageNone) &&
		!strings.EqualFold(target, source)

	data := reviewPromptData{
		Code:                 req.Code,
		SourceLanguage:       source,
		TargetLanguage:       target,
		AutoDetect:           source == core.SourceLanguageAuto,
		Convert:              convert,
		ModeInstruction:      modeInstruction(req.Mode),
		StyleInstruction:     styleInstruction(req.Style),
		VerbosityInstruction: verbosityInstruction(req.Verbosity),
		ToneInstruction:      toneInstruction(req.Tone),
		ErrorLog:             req.ErrorLog,
		HouseStyle:           req.HouseStyle,
	}

	prompt, err := r.prompts.Render(CodeReviewPrompt, data)
	if err != nil {
		return nil, &core.InternalError{Err: err}
	}

	model := r.defaultModel
	if req.Model != "" {
		model = req.Model
	}
	model = ResolveModel(model)

	r.logger.Info("dispatching review request",
		"model", model,
		"mode", string(req.Mode),
		"convert", convert,
		"code_bytes", len(req.Code),
	)

	raw, err := r.gen.GenerateJSON(ctx, model, prompt, reviewResponseSchema())
	if err != nil {
		return nil, err
	}

	result, err := parseReviewResult(raw)
	if err != nil {
		r.logger.Error("review response failed schema validation", "model", model, "error", err)
		return nil, err
	}

	return result, nil
}

var _ core.ReviewService = (*Reviewer)(nil)
