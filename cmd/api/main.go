package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transaction-anonymizer/config"
	httpHandler "transaction-anonymizer/internal/adapter/http/handler"
	"transaction-anonymizer/internal/adapter/storage/corpusfile"
	"transaction-anonymizer/internal/adapter/storage/memory"
	pgStorage "transaction-anonymizer/internal/adapter/storage/postgres"
	redisStorage "transaction-anonymizer/internal/adapter/storage/redis"
	"transaction-anonymizer/internal/core/ports"
	"transaction-anonymizer/internal/service"
	"transaction-anonymizer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Storage.Backend).
		Msg("Starting Transaction Corpus API")

	ctx := context.Background()

	var (
		repo           ports.CorpusRepository
		healthCheckers []ports.HealthChecker
	)

	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		repo = pgStorage.NewCorpusRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))

	default:
		envelopes, err := corpusfile.LoadCorpus(cfg.Corpus.DataFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Corpus.DataFile).Msg("Failed to load anonymized corpus")
		}
		log.Info().Int("envelopes", len(envelopes)).Str("file", cfg.Corpus.DataFile).Msg("Corpus loaded")

		repo = memory.New(envelopes)
	}

	// Redis is optional: without it the API runs with rate limiting disabled.
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Host != "" {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
		} else {
			defer rdb.Close()
			log.Info().Msg("Redis connected")
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
			healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		}
	}

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, tokenSvc)
	analyzer := service.NewRelationshipAnalyzer()
	corpusSvc := service.NewCorpusService(repo, analyzer)
	mappingsProvider := corpusfile.NewMappingsProvider(cfg.Corpus.MappingsFile)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:          authSvc,
		CorpusSvc:        corpusSvc,
		MappingsProvider: mappingsProvider,
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		HealthCheckers:   healthCheckers,
		Logger:           log,
		MinDelay:         cfg.API.MinDelay,
		MaxDelay:         cfg.API.MaxDelay,
		DefaultPageSize:  cfg.API.DefaultPageSize,
		MaxPageSize:      cfg.API.MaxPageSize,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
