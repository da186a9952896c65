package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/db"
	"github.com/sevigo/code-mentor/internal/llm"
	"github.com/sevigo/code-mentor/internal/logger"
	"github.com/sevigo/code-mentor/internal/storage"
)

// cliEnv bundles the components a CLI command needs. Logs go to stderr so
// stdout stays clean for rendered output.
type cliEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    storage.Store
	reviewer *llm.Reviewer
	cleanup  func()
}

func newCLIEnv(ctx context.Context) (*cliEnv, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: "warn", Format: cfg.Log.Format}, os.Stderr)

	database, cleanup, err := db.NewDatabase(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := storage.NewStore(database, log)

	prompts, err := llm.NewPromptManager()
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	gen, err := llm.NewGeminiClient(ctx, cfg, log)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &cliEnv{
		cfg:      cfg,
		logger:   log,
		store:    store,
		reviewer: llm.NewReviewer(gen, prompts, cfg, log),
		cleanup:  cleanup,
	}, nil
}
