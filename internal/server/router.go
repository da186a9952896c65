package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-mentor/internal/core"
	"github.com/sevigo/code-mentor/internal/server/handler"
	"github.com/sevigo/code-mentor/internal/storage"
)

// NewRouter creates and configures the HTTP router with middleware and API routes.
func NewRouter(store storage.Store, reviewer core.ReviewService, assistant core.FollowUpService, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Generation calls can be slow; the timeout bounds them rather than the
	// history endpoints, which answer in milliseconds.
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		historyHandler := handler.NewHistoryHandler(store, logger)
		r.Post("/history", historyHandler.Create)
		r.Get("/history", historyHandler.List)

		reviewHandler := handler.NewReviewHandler(reviewer, logger)
		r.Post("/review", reviewHandler.Review)

		chatHandler := handler.NewChatHandler(assistant, logger)
		r.Post("/chat", chatHandler.Ask)
	})

	return r
}
