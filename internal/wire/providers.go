package wire

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/llm"
	"github.com/sevigo/code-mentor/internal/logger"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}
}

func provideLogWriter() io.Writer {
	return os.Stdout
}

func provideSlogLogger(cfg logger.Config, output io.Writer) *slog.Logger {
	l := logger.New(cfg, output)
	slog.SetDefault(l)
	return l
}

func provideDBConfig(cfg *config.Config) *config.DBConfig {
	return &cfg.DB
}

func provideGenerator(ctx context.Context, cfg *config.Config, log *slog.Logger) (llm.Generator, error) {
	return llm.NewGeminiClient(ctx, cfg, log)
}
