// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/xvmee/portfolio/docs" // Import generated swagger docs
	"github.com/xvmee/portfolio/internal/api"
	"github.com/xvmee/portfolio/internal/auth"
	"github.com/xvmee/portfolio/internal/config"
	"github.com/xvmee/portfolio/internal/eventprocessor"
	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/store"
	"github.com/xvmee/portfolio/internal/supervisor"
	"github.com/xvmee/portfolio/internal/supervisor/services"
	"github.com/xvmee/portfolio/internal/upload"
	ws "github.com/xvmee/portfolio/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the application and blocks until a shutdown signal arrives.
//
//nolint:gocyclo // Sequential setup steps
func run(cfg *config.Config) error {
	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("session_store", cfg.Security.SessionStore).
		Bool("demo_data", cfg.IsProduction()).
		Msg("Configuration loaded")

	if cfg.ShouldWarnAboutSessionSecret() {
		logging.Warn().Msg("SESSION_SECRET is the built-in default; set a unique secret before exposing this server")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS_ORIGINS allows any origin in production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sessions
	sessionStore, closeSessions, err := auth.OpenSessionStore(auth.SessionStoreType(cfg.Security.SessionStore), cfg.Security.SessionStorePath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := closeSessions(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	signer, err := auth.NewCookieSigner(cfg.Security.SessionSecret)
	if err != nil {
		return fmt.Errorf("create cookie signer: %w", err)
	}
	sessionConfig := auth.DefaultSessionManagerConfig()
	sessionConfig.SessionTTL = cfg.Security.SessionTimeout
	sessionConfig.SlidingSession = cfg.Security.SlidingSession
	sessionConfig.CookieSecure = cfg.IsProduction()
	sessions := auth.NewSessionManager(sessionStore, signer, sessionConfig)

	// Portfolio data and the admin account
	st := store.NewMemoryStore(store.Options{
		DataFile: cfg.Storage.DataFile,
		Demo:     cfg.IsProduction(),
	})

	admin, err := auth.SeedAdmin(ctx, st, cfg.Security.AdminUsername, cfg.Security.AdminPassword, auth.DefaultBcryptCost)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	logging.Info().Int("user_id", admin.ID).Str("username", admin.Username).Msg("Admin user ready")

	authn, err := auth.NewAuthenticator(st, auth.DefaultBcryptCost)
	if err != nil {
		return fmt.Errorf("create authenticator: %w", err)
	}

	saver, err := upload.New(cfg.IsProduction(), cfg.Storage.UploadsDir, cfg.Storage.MaxUploadBytes)
	if err != nil {
		return fmt.Errorf("prepare uploads: %w", err)
	}

	// Events and live updates
	pubsub := eventprocessor.NewPubSub(eventprocessor.DefaultPubSubConfig(), nil)
	defer func() {
		if err := pubsub.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event pub/sub")
		}
	}()

	publisher, err := eventprocessor.NewPublisher(pubsub,
		eventprocessor.NewCircuitBreaker(eventprocessor.DefaultCircuitBreakerConfig("portfolio-events")))
	if err != nil {
		return fmt.Errorf("create event publisher: %w", err)
	}
	defer func() { _ = publisher.Close() }()

	wsHub := ws.NewHub()

	forwarder, err := eventprocessor.NewForwarder(pubsub, wsHub, st)
	if err != nil {
		return fmt.Errorf("create event forwarder: %w", err)
	}

	// HTTP
	handler := api.NewHandler(st, sessions, authn, saver, cfg, wsHub)
	handler.SetEventPublisher(publisher)
	handler.SetAuditLogger(logging.NewAuditLogger())

	router := api.NewRouter(handler, sessions, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewSessionCleanupService(sessionStore, services.DefaultSessionCleanupInterval))
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddMessagingService(forwarder)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// The tree returns once ctx is canceled or the root supervisor gives up.
	serveErr := <-errCh

	var treeErr error
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		treeErr = fmt.Errorf("supervisor tree: %w", serveErr)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return treeErr
}
