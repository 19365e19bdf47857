// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/agronomy"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/detection"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/fertilizer"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/market"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/recommend"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/rotation"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/scheme"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/seed"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/zone"
)

// ZoneStore serves zone reference lookups.
type ZoneStore interface {
	ZoneByCode(ctx context.Context, code string) (*zone.Zone, error)
	Zones(ctx context.Context) ([]zone.Zone, error)
}

// ApplicationStore persists and serves fertilizer application logs.
type ApplicationStore interface {
	SaveApplication(ctx context.Context, a *fertilizer.Application) (string, error)
	ApplicationsByCrop(ctx context.Context, cropID string) ([]fertilizer.Application, error)
	ApplicationsByFarmer(ctx context.Context, farmerID string) ([]fertilizer.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

// SoilStore persists and serves soil health cards.
type SoilStore interface {
	SoilSnapshot(ctx context.Context, farmerID string) (*agronomy.SoilHealthSnapshot, error)
	SaveSoilSnapshot(ctx context.Context, snap *agronomy.SoilHealthSnapshot) error
}

// Pinger reports store liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies wires a Handler.
type Dependencies struct {
	Aggregator   *recommend.Aggregator
	Resolver     *zone.Resolver
	Zones        ZoneStore
	Applications ApplicationStore
	Soil         SoilStore
	Detections   *detection.Service
	Market       market.Provider
	Store        Pinger
}

// Handler holds the HTTP handlers for every route.
type Handler struct {
	aggregator   *recommend.Aggregator
	resolver     *zone.Resolver
	zones        ZoneStore
	applications ApplicationStore
	soil         SoilStore
	detections   *detection.Service
	market       market.Provider
	store        Pinger

	calculator     *fertilizer.Calculator
	seeds          *seed.Catalog
	rotationEngine *rotation.Engine
	rotationRanker *rotation.Ranker
	schemeRanker   *scheme.Ranker

	startedAt time.Time
}

// NewHandler creates a Handler from its dependencies.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		aggregator:     deps.Aggregator,
		resolver:       deps.Resolver,
		zones:          deps.Zones,
		applications:   deps.Applications,
		soil:           deps.Soil,
		detections:     deps.Detections,
		market:         deps.Market,
		store:          deps.Store,
		calculator:     fertilizer.NewCalculator(),
		seeds:          seed.NewCatalog(),
		rotationEngine: rotation.NewEngine(),
		rotationRanker: rotation.NewRanker(),
		schemeRanker:   scheme.NewRanker(),
		startedAt:      time.Now(),
	}
}

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Store         string `json:"store"`
}

// Health reports liveness and store connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := healthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Store:         "ok",
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			status.Status = "degraded"
			status.Store = "unreachable"
			writeJSON(w, r, http.StatusServiceUnavailable, status)
			return
		}
	}

	writeJSON(w, r, http.StatusOK, status)
}
