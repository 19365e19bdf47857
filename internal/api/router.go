// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
)

// Router assembles the HTTP surface from the handlers and the server
// configuration.
type Router struct {
	handler *Handler
	cfg     *config.ServerConfig
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, cfg *config.ServerConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the chi mux with the full middleware stack and every
// route mounted under /api/v1.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger())
	r.Use(chimiddleware.Recoverer)
	r.Use(NewCORS(rt.cfg))
	r.Use(NewRateLimit(rt.cfg))
	r.Use(chimiddleware.Timeout(rt.cfg.Timeout))

	h := rt.handler

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/crops", h.RecommendCrops)
			r.Post("/climate-risk", h.ClimateRisk)
			r.Post("/rotation", h.RecommendRotation)
		})

		r.Route("/rotation", func(r chi.Router) {
			r.Get("/patterns", h.RotationPatterns)
			r.Get("/schedule", h.RotationSchedule)
		})

		r.Route("/fertilizer", func(r chi.Router) {
			r.Post("/recommendations", h.FertilizerPlan)
			r.Post("/applications", h.RecordApplication)
			r.Delete("/applications/{id}", h.DeleteApplication)
			r.Get("/tracking", h.FertilizerTracking)
		})

		r.Route("/soil-cards", func(r chi.Router) {
			r.Post("/", h.SaveSoilCard)
			r.Get("/{farmerID}", h.GetSoilCard)
		})

		r.Route("/zones", func(r chi.Router) {
			r.Get("/", h.ListZones)
			r.Get("/resolve", h.ResolveZone)
			r.Get("/{code}", h.GetZone)
		})

		r.Get("/market/prices", h.MarketPrices)
		r.Get("/seeds/varieties", h.SeedVarieties)

		r.Post("/schemes/rank", h.RankSchemes)
		r.Post("/search/rank", h.RankSearchResults)

		r.Route("/detections", func(r chi.Router) {
			r.Post("/", h.RecordDetection)
			r.Get("/", h.ListDetections)
			r.Get("/{id}", h.GetDetection)
			r.Delete("/{id}", h.DeleteDetection)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
