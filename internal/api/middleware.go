// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

// RequestID assigns a uuid to every request, exposing it via the
// X-Request-ID header and the logging context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = logging.GenerateRequestID()
			}
			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r.WithContext(logging.ContextWithRequestID(r.Context(), id)))
		})
	}
}

// RequestLogger emits one structured log line per finished request and
// feeds the Prometheus request metrics.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.TrackActiveRequest(true)
			defer metrics.TrackActiveRequest(false)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			endpoint := routePattern(r)
			metrics.RecordAPIRequest(r.Method, endpoint, strconv.Itoa(status), duration)

			event := logging.CtxInfo(r.Context())
			if status >= http.StatusInternalServerError {
				event = logging.CtxError(r.Context())
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Dur("duration", duration).
				Str("remote", r.RemoteAddr).
				Msg("HTTP request")
		})
	}
}

// routePattern returns the chi route pattern so metric labels stay
// low-cardinality ("/api/v1/zones/{code}", not every concrete code).
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// NewCORS builds the CORS handler from the configured origins.
func NewCORS(cfg *config.ServerConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         86400,
	})
}

// NewRateLimit builds the per-IP rate limiter.
func NewRateLimit(cfg *config.ServerConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED",
				"too many requests, slow down", nil)
		}),
	)
}
