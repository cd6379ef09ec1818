// @title           Itinerary Timeline API
// @version         1.0
// @description     Stores itinerary days and renders them as timelines with map, booking and guide links.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripdeck/itinerary-timeline/internal/api"
	"github.com/tripdeck/itinerary-timeline/internal/api/handler"
	"github.com/tripdeck/itinerary-timeline/internal/api/view"
	"github.com/tripdeck/itinerary-timeline/internal/core/service"
	"github.com/tripdeck/itinerary-timeline/internal/core/timeline"
	"github.com/tripdeck/itinerary-timeline/internal/infrastructure/db/mongo"
	"github.com/tripdeck/itinerary-timeline/internal/infrastructure/db/redis"
	"github.com/tripdeck/itinerary-timeline/internal/infrastructure/queue"
	"github.com/tripdeck/itinerary-timeline/internal/pkg/config"
	"github.com/tripdeck/itinerary-timeline/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "itinerary-timeline"})
		bootLog.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "itinerary-timeline",
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, itinerary creation will reject every token")
	}

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	repo := mongo.NewItineraryRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create itinerary indexes")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	cache := redis.NewRenderCache(rdb, cfg.Timeline.RenderCacheTTL)

	// --- Core ---
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse timeline templates")
	}
	links := timeline.Links{
		MapsBaseURL:     cfg.Timeline.MapsBaseURL,
		BookingURL:      cfg.Timeline.BookingURL,
		GuidePathPrefix: cfg.Timeline.GuidePathPrefix,
	}
	svc := service.NewItineraryService(repo, renderer, cache, links, log.With().Str("component", "itinerary_service").Logger())

	warmer := queue.NewWarmer(cfg.Timeline.WarmupWorkers, svc, log.With().Str("component", "warmer").Logger())
	warmer.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Service: svc,
		Warmer:  warmer,
		Readiness: map[string]handler.Pinger{
			"mongodb": handler.MongoPinger(db),
			"redis":   handler.RedisPinger(rdb),
		},
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})
	e.Server.ReadHeaderTimeout = 2 * time.Second
	e.Server.ReadTimeout = 7 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 120 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close Redis client")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to disconnect from MongoDB")
	}

	log.Info().Msg("server stopped")
}
