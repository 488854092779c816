package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/api"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/config"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/llm"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/repository/postgres"
	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Snapshot the entity names for fuzzy resolution. The store is immutable
	// after loading, so this happens once.
	resolver, err := service.NewNameResolver(context.Background(), repos.Entity)
	if err != nil {
		log.Fatalf("failed to build name resolver: %v", err)
	}

	// Load game snapshots; the server still answers fact queries without them
	snapshots, err := service.LoadSnapshotFile(cfg.SnapshotFile)
	if err != nil {
		log.Printf("WARN: no game snapshots loaded: %v", err)
	} else {
		log.Printf("Loaded %d game snapshot(s) from %s", len(snapshots), cfg.SnapshotFile)
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Initialize services
	services := service.NewServices(repos, resolver, snapshots, llmClient, cfg.HistoryWindow)

	// Initialize router
	router := api.NewRouter(services, repos)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
