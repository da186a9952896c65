// Package app orchestrates the main components of the application: the
// configuration, the HTTP server and the logger.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/code-mentor/internal/config"
	"github.com/sevigo/code-mentor/internal/server"
)

// App holds the main application components.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	server *server.Server
	logger *slog.Logger
}

// NewApp assembles the application from its wired dependencies.
func NewApp(ctx context.Context, cfg *config.Config, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		server: srv,
		logger: logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting code-mentor",
		"server_port", a.cfg.Server.Port,
		"db_path", a.cfg.DB.Path,
		"default_model", a.cfg.AI.DefaultModel,
	)
	return a.server.Start()
}

// Stop shuts the application down cleanly. The database connection is closed
// by the injector's cleanup function after Stop returns.
func (a *App) Stop() error {
	a.logger.Info("shutting down code-mentor")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("code-mentor stopped successfully")
	return nil
}
