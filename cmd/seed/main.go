// Command seed loads itinerary fixtures from YAML files into MongoDB.
//
//	seed fixtures/rome.yaml [more.yaml ...]
//
// Connection settings are read from the same environment as the server.
// Itineraries are upserted by id, so running seed twice is harmless.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripdeck/itinerary-timeline/internal/infrastructure/db/mongo"
	"github.com/tripdeck/itinerary-timeline/internal/infrastructure/fixture"
	"github.com/tripdeck/itinerary-timeline/internal/pkg/config"
	"github.com/tripdeck/itinerary-timeline/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s FILE.yaml [FILE.yaml ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "seed"})
		bootLog.Fatal().Err(err).Msg("configuration error")
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "seed",
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	repo := mongo.NewItineraryRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create itinerary indexes")
	}

	total := 0
	for _, path := range flag.Args() {
		its, err := fixture.LoadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("failed to load fixture")
		}
		if err := fixture.Seed(ctx, repo, its, time.Now().UTC()); err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("failed to seed fixture")
		}
		log.Info().Str("file", path).Int("itineraries", len(its)).Msg("fixture seeded")
		total += len(its)
	}

	log.Info().Int("itineraries", total).Msg("seed complete")
}
