package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api/handlers"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api/middleware"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

func NewRouter(services *service.Services, repos *repository.Repositories) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	queryHandler := handlers.NewQueryHandler(services.Dispatch)
	chatHandler := handlers.NewChatHandler(services.Chat)
	championHandler := handlers.NewChampionHandler(repos.Champion, services.Lookup)
	snapshotHandler := handlers.NewSnapshotHandler(services.Snapshot)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Structured intents, no LLM involved
		r.Post("/query", queryHandler.Handle)

		// Natural-language chat
		r.Post("/chat", chatHandler.Ask)
		r.Get("/ws", chatHandler.Websocket)

		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/{name}", championHandler.Get)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", snapshotHandler.GetAll)
			r.Get("/{index}/analysis", snapshotHandler.Analyze)
		})
	})

	return r
}
