// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package market

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
	"github.com/puja809/kisan-sahayak-ai-sub000/internal/metrics"
)

// maxErrorBodySize limits how much of an error response body is read
// for diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// RemoteProvider fetches snapshots from an AGMARKNET-style price API.
// Calls run through an outbound rate limiter and a circuit breaker;
// any failure falls back to the static tables so recommendations never
// lose their market signal entirely.
type RemoteProvider struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	cb       *gobreaker.CircuitBreaker[*Snapshot]
	limiter  *rate.Limiter
	fallback Provider
	name     string
}

// remoteResponse is the price API envelope.
type remoteResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    *Snapshot `json:"data"`
}

// NewRemoteProvider creates a price API client with circuit breaker
// protection. Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewRemoteProvider(cfg *config.MarketConfig, fallback Provider) *RemoteProvider {
	cbName := "agmarknet-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := breakerStateString(from)
			toStr := breakerStateString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}

	return &RemoteProvider{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
		cb:       cb,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		fallback: fallback,
		name:     cbName,
	}
}

// Snapshot fetches one crop's market picture from the remote API,
// falling back to the static tables on any failure.
func (p *RemoteProvider) Snapshot(ctx context.Context, cropCode, state string) (*Snapshot, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	snapshot, err := p.cb.Execute(func() (*Snapshot, error) {
		return p.fetch(ctx, cropCode, state)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(p.name, "rejected").Inc()
			logging.Warn().Err(err).Str("crop", cropCode).Msg("[CIRCUIT BREAKER] Request rejected, using static prices")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(p.name, "failure").Inc()
			counts := p.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(p.name).Set(float64(counts.ConsecutiveFailures))
			logging.Warn().Err(err).Str("crop", cropCode).Msg("Price API failed, using static prices")
		}
		return p.fallback.Snapshot(ctx, cropCode, state)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(p.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(p.name).Set(0)

	return snapshot, nil
}

// Snapshots fetches several crops, each falling back independently.
func (p *RemoteProvider) Snapshots(ctx context.Context, cropCodes []string, state string) (map[string]*Snapshot, error) {
	snapshots := make(map[string]*Snapshot, len(cropCodes))
	for _, code := range cropCodes {
		s, err := p.Snapshot(ctx, code, state)
		if err != nil {
			return nil, err
		}
		snapshots[code] = s
	}
	return snapshots, nil
}

func (p *RemoteProvider) fetch(ctx context.Context, cropCode, state string) (*Snapshot, error) {
	params := url.Values{}
	params.Set("crop", cropCode)
	params.Set("state", state)
	if p.apiKey != "" {
		params.Set("apikey", p.apiKey)
	}
	reqURL := fmt.Sprintf("%s/api/v1/prices?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create price request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("price request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var envelope remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode price response: %w", err)
	}
	if !envelope.Success || envelope.Data == nil {
		return nil, fmt.Errorf("price API returned unsuccessful response: %s", envelope.Message)
	}

	return envelope.Data, nil
}

// readBodyForError reads at most maxErrorBodySize of a response body
// for error reporting.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

func breakerStateFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func breakerStateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
