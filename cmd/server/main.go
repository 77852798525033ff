package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityguide/internal/auth"
	"cityguide/internal/config"
	"cityguide/internal/event"
	"cityguide/internal/service"
	"cityguide/internal/storage/postgres"
	"cityguide/internal/transport/graphql"
	httpTransport "cityguide/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Run the application
	if err := run(cfg, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("connecting to database")
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	logger.Info("database connected")

	if cfg.MigrationURL != "" {
		logger.Info("running migrations")
		if err := postgres.RunMigrations(cfg.MigrationURL, cfg.DatabaseURL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	repos := db.Repositories()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		SecretKey: cfg.JWTSecretKey,
		TokenTTL:  cfg.TokenTTL,
		Issuer:    "cityguide",
	})

	// Initialize event publisher
	var publisher event.Publisher
	if cfg.IsDevelopment() {
		publisher = event.NewLoggingPublisher(logger)
	} else {
		// TODO: Real message broker
		publisher = event.NewLoggingPublisher(logger)
	}
	defer publisher.Close()

	cityService := service.NewCityService(repos.Cities, publisher)
	poiService := service.NewPoiService(repos.Pois, repos.Cities, repos.Types, repos.Tags, publisher)
	typeService := service.NewTypeService(repos.Types, publisher)
	tagService := service.NewTagService(repos.Tags, publisher)
	roleService := service.NewRoleService(repos.Roles, publisher)
	userService := service.NewUserService(repos.Users, repos.Roles, publisher)
	authService := service.NewAuthService(repos.Users, jwtManager, publisher)

	resolver := graphql.NewResolver(
		cityService,
		poiService,
		typeService,
		tagService,
		roleService,
		userService,
		authService,
	)

	errChan := make(chan error, 1)

	httpServer := httpTransport.NewServer(resolver, authService, logger)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		logger.Info("starting HTTP server", "addr", addr)
		if err := httpServer.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", "signal", sig)
	case err := <-errChan:
		logger.Error("server error", "error", err)
		return err
	}

	logger.Info("initiating graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	logger.Info("shutdown complete")
	return nil
}
