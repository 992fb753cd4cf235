// Package main is the entry point for the Vitrine content backend.
// It loads configuration, opens the collection files, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"vitrine/internal/auth"
	"vitrine/internal/config"
	"vitrine/internal/handlers"
	"vitrine/internal/mailer"
	"vitrine/internal/router"
	"vitrine/internal/storage"
	"vitrine/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"data_dir", cfg.DataDir,
		"admin_mode", cfg.AdminMode,
	)

	// Open the collection files, creating empty ones on first run.
	blogCol, err := storage.NewCollection(cfg.DataDir, "blogs")
	if err != nil {
		slog.Error("failed to open blogs collection", "error", err)
		os.Exit(1)
	}
	productCol, err := storage.NewCollection(cfg.DataDir, "products")
	if err != nil {
		slog.Error("failed to open products collection", "error", err)
		os.Exit(1)
	}
	contactCol, err := storage.NewCollection(cfg.DataDir, "contacts")
	if err != nil {
		slog.Error("failed to open contacts collection", "error", err)
		os.Exit(1)
	}

	blogs := store.NewBlogStore(blogCol)
	products := store.NewProductStore(productCol)
	contacts := store.NewContactStore(contactCol)

	// Select the credential store: a fixed configured pair, or the
	// file-backed identity created through the one-time setup flow.
	var creds auth.CredentialStore
	if cfg.AdminMode == config.AdminModeSetup {
		fileStore, err := auth.NewFileStore(filepath.Join(cfg.DataDir, "admin.json"))
		if err != nil {
			slog.Error("failed to open admin file", "error", err)
			os.Exit(1)
		}
		creds = fileStore
	} else {
		creds = auth.NewStaticStore(cfg.AdminUsername, cfg.AdminPassword)
	}
	tokens := auth.NewTokenStore()

	// SMTP is optional; without it the career endpoint reports the
	// feature disabled instead of failing requests.
	var mail *mailer.Mailer
	if cfg.MailConfigured() {
		mail = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, cfg.MailTo)
		slog.Info("smtp mailer configured", "host", cfg.SMTPHost, "to", cfg.MailTo)
	} else {
		slog.Warn("smtp not configured, career applications disabled")
	}

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(blogs, products, contacts)
	authHandlers := handlers.NewAuth(creds, tokens)
	publicHandlers := handlers.NewPublic(blogs, products, contacts, mail)

	// Set up the Chi router with all middleware and routes.
	r := router.New(tokens, adminHandlers, authHandlers, publicHandlers, cfg.CORSOrigins)

	// Create the HTTP server with sensible timeouts. WriteTimeout allows
	// for the SMTP round trip on the career application endpoint.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
