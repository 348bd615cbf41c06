package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alphadash/dashboard/internal/backend"
	"github.com/alphadash/dashboard/internal/config"
	"github.com/alphadash/dashboard/internal/database"
	"github.com/alphadash/dashboard/internal/session"
	"github.com/alphadash/dashboard/internal/web"
	"github.com/alphadash/dashboard/internal/web/templates"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open session store
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate session store: %v", err)
	}

	log.Printf("Connected to session store: %s", cfg.Database.Path)

	// Session manager
	key, err := session.LoadKey(cfg.Session.Key)
	if err != nil {
		log.Fatalf("Failed to load session key: %v", err)
	}
	sessions := session.NewManager(db, key, cfg.Session.TTL)

	// Purge expired sessions periodically
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		purged, err := sessions.PurgeExpired()
		if err != nil {
			log.Printf("Failed to purge expired sessions: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("Purged %d expired sessions", purged)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule session purge: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Remote portfolio API client
	client := backend.NewClient(cfg.API.BaseURL)
	log.Printf("Using portfolio API at %s", cfg.API.BaseURL)

	// Templates and router
	renderer, err := templates.New()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	router := web.NewRouter(client, sessions, renderer, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
