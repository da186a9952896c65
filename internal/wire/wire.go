//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/code-mentor/internal/app"
	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/core"
	"github.com/sevigo/code-mentor/internal/db"
	"github.com/sevigo/code-mentor/internal/llm"
	"github.com/sevigo/code-mentor/internal/server"
	"github.com/sevigo/code-mentor/internal/storage"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		db.NewDatabase,
		storage.NewStore,
		llm.NewPromptManager,
		llm.NewReviewer,
		llm.NewAssistant,
		wire.Bind(new(core.ReviewService), new(*llm.Reviewer)),
		wire.Bind(new(core.FollowUpService), new(*llm.Assistant)),
		provideGenerator,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
		provideDBConfig,
	)
	return &app.App{}, nil, nil
}
