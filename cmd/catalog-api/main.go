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

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/edvin/catalog/internal/api"
	"github.com/edvin/catalog/internal/config"
	"github.com/edvin/catalog/internal/db"
	"github.com/edvin/catalog/internal/logging"
	"github.com/edvin/catalog/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	client, err := db.NewMongoClient(connectCtx, cfg.MongoURI, metrics.NewPoolMonitor(prometheus.DefaultRegisterer))
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	coll := database.Collection(cfg.MongoCollection)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	names, err := db.EnsureIndexes(indexCtx, coll.Indexes())
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure indexes")
	}
	logger.Info().Strs("indexes", names).Msg("product indexes ready")

	srv := api.NewServer(logger, coll, client, database.Collection(cfg.AuditCollection), cfg)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         cfg.HTTPListenAddr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	servers := []*http.Server{httpServer}
	if cfg.MetricsListenAddr != "" {
		servers = append(servers, metrics.NewServer(cfg.MetricsListenAddr))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		s := s
		g.Go(func() error {
			logger.Info().Str("addr", s.Addr).Msg("starting HTTP server")
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", s.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Str("addr", s.Addr).Msg("shutdown failed")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server failed")
	}
}
