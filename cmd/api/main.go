package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/evelinastr/trainingclub/internal/adapters/cache"
	"github.com/evelinastr/trainingclub/internal/adapters/database"
	"github.com/evelinastr/trainingclub/internal/api/handlers"
	"github.com/evelinastr/trainingclub/internal/api/middleware"
	"github.com/evelinastr/trainingclub/internal/api/routes"
	"github.com/evelinastr/trainingclub/internal/application/services"
	"github.com/evelinastr/trainingclub/internal/domain/providers"
	redisclient "github.com/evelinastr/trainingclub/internal/infrastructure/clients/redis"
	"github.com/evelinastr/trainingclub/internal/infrastructure/clients/sqlite"
	"github.com/evelinastr/trainingclub/internal/infrastructure/observability"
	"github.com/evelinastr/trainingclub/pkg/config"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client and schema
	dbClient, err := sqlite.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SQLite client")
	}
	defer dbClient.Close()

	if err := database.InitSchema(ctx, dbClient); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}
	log.Info().Str("path", cfg.Database.Path).Msg("SQLite client initialized")

	// Redis is optional; the application works without response caching.
	var cacheProvider providers.CacheProvider
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without response cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(dbClient)
	exerciseAdapter := database.NewExerciseAdapter(dbClient)
	commentAdapter := database.NewCommentAdapter(dbClient)
	sessionAdapter := database.NewSessionAdapter(dbClient)
	bookingAdapter := database.NewBookingAdapter(dbClient)

	// Initialize services
	userService := services.NewUserService(userAdapter)
	commentService := services.NewCommentService(commentAdapter)
	sessionService := services.NewSessionService(sessionAdapter)
	bookingService := services.NewBookingService(bookingAdapter)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseAdapter)
	commentHandler := handlers.NewCommentHandler(commentService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	bookingHandler := handlers.NewBookingHandler(bookingService, metrics)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(
		userHandler,
		exerciseHandler,
		commentHandler,
		sessionHandler,
		bookingHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
