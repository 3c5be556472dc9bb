package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/edvin/catalog/internal/config"
	"github.com/edvin/catalog/internal/core"
	"github.com/edvin/catalog/internal/db"
	"github.com/edvin/catalog/internal/logging"
	"github.com/edvin/catalog/internal/seed"
)

func main() {
	file := flag.String("f", "seeds/products.yaml", "Seed file to load")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall timeout")
	drop := flag.Bool("drop", false, "Drop the products collection before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.MongoURI == "" {
		fmt.Fprintln(os.Stderr, "error: MONGO_URI is required")
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	f, err := seed.Load(*file)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load seed file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := db.NewMongoClient(ctx, cfg.MongoURI, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer client.Disconnect(context.Background())

	coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)

	if *drop {
		logger.Warn().Str("collection", cfg.MongoCollection).Msg("dropping collection")
		if err := coll.Drop(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to drop collection")
		}
	}

	if _, err := db.EnsureIndexes(ctx, coll.Indexes()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	res, err := seed.Run(ctx, core.NewProductService(coll), f, logger)
	if err != nil {
		logger.Fatal().Err(err).Int("created", res.Created).Msg("seeding failed")
	}
	logger.Info().Int("created", res.Created).Int("skipped", res.Skipped).Str("file", *file).Msg("seeding complete")
}
