// Package main is the entry point for the fare search orchestration service.
//
//	@title						Fare Search Orchestration API
//	@version					1.0.0
//	@description				A bounded concurrent fare search service that fans out single-day searches across dates, destinations, and batches, with a TTL response cache in front of the upstream search API.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/fare-search/fare-search-orchestration-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
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

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/fare-search/fare-search-orchestration-service/docs"

	farehttp "github.com/fare-search/fare-search-orchestration-service/internal/adapter/http"
	"github.com/fare-search/fare-search-orchestration-service/internal/adapter/http/middleware"
	"github.com/fare-search/fare-search-orchestration-service/internal/adapter/upstream/kiwi"
	"github.com/fare-search/fare-search-orchestration-service/internal/cache"
	"github.com/fare-search/fare-search-orchestration-service/internal/config"
	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
	"github.com/fare-search/fare-search-orchestration-service/internal/infrastructure/retry"
	"github.com/fare-search/fare-search-orchestration-service/internal/infrastructure/timeutil"
	"github.com/fare-search/fare-search-orchestration-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Int("cache_capacity", cfg.Cache.Capacity).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes wires the cache, upstream client, use case, and handler, then
// registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	responseCache := cache.MustNew[[]domain.Offer](cfg.Cache.Capacity, cfg.Cache.TTL, timeutil.NewRealClock())

	upstream := kiwi.NewClient(kiwi.Options{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Retry: retry.Config{
			MaxAttempts:  cfg.Upstream.RetryMax,
			InitialDelay: cfg.Upstream.RetryInitial,
			MaxDelay:     retry.UpstreamConfig.MaxDelay,
			Multiplier:   retry.UpstreamConfig.Multiplier,
			JitterFactor: retry.UpstreamConfig.JitterFactor,
		},
	}, log.Logger)

	ucConfig := &usecase.Config{
		MaxFanOut:     cfg.Search.MaxFanOut,
		MaxConcurrent: cfg.Search.MaxConcurrent,
	}
	fareUseCase := usecase.NewFareSearchUseCase(upstream, responseCache, ucConfig, log.Logger)

	handler := farehttp.NewFareHandler(fareUseCase, upstream)
	farehttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
