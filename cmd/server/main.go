// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

// Package main is the entry point for the KisanSahayak server.
//
// KisanSahayak answers crop suitability, rotation, fertilizer, seed
// variety, and market questions for Indian farmers, resolving each query
// to one of the twelve agro-ecological zones and scoring the GAEZ
// reference data stored in an embedded DuckDB database.
//
// Components start in this order:
//
//  1. Configuration: layered load via koanf (defaults, config.yaml, env)
//  2. Logging: zerolog, JSON or console format
//  3. Store: DuckDB with schema creation and reference data seeding
//  4. Providers: zone resolver, market prices, response cache
//  5. Supervision tree: suture root with data and api layers
//  6. HTTP server: chi router under /api/v1 plus /metrics
//
// Shutdown on SIGINT or SIGTERM cancels the supervision tree, drains
// in-flight requests within server.shutdown_timeout, checkpoints the
// store, and closes the database.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/api"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/cache"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/detection"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/market"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/recommend"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/storage"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/supervisor"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/supervisor/services"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Msg("Starting KisanSahayak")

	store, err := storage.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close store")
		}
	}()

	resolver := zone.NewResolver(store)

	var prices market.Provider = market.NewStaticProvider()
	if cfg.Market.RemoteEnabled {
		prices = market.NewRemoteProvider(&cfg.Market, prices)
		logging.Info().Str("base_url", cfg.Market.BaseURL).Msg("Remote market provider enabled")
	}

	var respCache *cache.Cache
	if cfg.Cache.Enabled {
		respCache = cache.New(cfg.Cache.TTL, "recommendation")
		defer respCache.Close()
	}

	aggregator := recommend.NewAggregator(resolver, store, store, prices, respCache)

	handler := api.NewHandler(api.Dependencies{
		Aggregator:   aggregator,
		Resolver:     resolver,
		Zones:        store,
		Applications: store,
		Soil:         store,
		Detections:   detection.NewService(store),
		Market:       prices,
		Store:        store,
	})
	router := api.NewRouter(handler, &cfg.Server)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		return fmt.Errorf("build supervision tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddDataService(services.NewCheckpointService(store, 0))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")

	err = tree.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("supervision tree: %w", err)
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
