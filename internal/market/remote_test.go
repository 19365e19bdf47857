// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/config"
)

func remoteConfig(baseURL string) *config.MarketConfig {
	return &config.MarketConfig{
		RemoteEnabled:     true,
		BaseURL:           baseURL,
		APIKey:            "test-key",
		TimeoutSeconds:    5,
		RequestsPerMinute: 600,
	}
}

func TestRemoteProviderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("crop"); got != "RICE" {
			t.Errorf("crop param = %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"crop_code":"RICE","crop_name":"Rice","current_price":2350,"trend":"UP"}}`))
	}))
	defer server.Close()

	p := NewRemoteProvider(remoteConfig(server.URL), NewStaticProvider())

	s, err := p.Snapshot(context.Background(), "RICE", "Punjab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CurrentPrice != 2350 {
		t.Errorf("price = %v, want remote 2350", s.CurrentPrice)
	}
	if s.Trend != TrendUp {
		t.Errorf("trend = %v, want UP", s.Trend)
	}
}

func TestRemoteProviderFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewRemoteProvider(remoteConfig(server.URL), NewStaticProvider())

	s, err := p.Snapshot(context.Background(), "RICE", "Punjab")
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	// Static table price, not a remote one.
	if s.CurrentPrice != 2200 {
		t.Errorf("price = %v, want static 2200", s.CurrentPrice)
	}
}

func TestRemoteProviderFallsBackOnUnsuccessfulEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"no data for crop"}`))
	}))
	defer server.Close()

	p := NewRemoteProvider(remoteConfig(server.URL), NewStaticProvider())

	s, err := p.Snapshot(context.Background(), "WHEAT", "Haryana")
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if s.CurrentPrice != 2500 {
		t.Errorf("price = %v, want static 2500", s.CurrentPrice)
	}
}

func TestRemoteProviderCircuitOpensAndKeepsServing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewRemoteProvider(remoteConfig(server.URL), NewStaticProvider())
	ctx := context.Background()

	// Trip the breaker: 60% failure rate over at least 10 requests.
	for i := 0; i < 12; i++ {
		if _, err := p.Snapshot(ctx, "MAIZE", "Karnataka"); err != nil {
			t.Fatalf("request %d: fallback should absorb failures: %v", i, err)
		}
	}

	if state := p.cb.State(); state != gobreaker.StateOpen {
		t.Errorf("breaker state = %v, want Open", state)
	}

	// Open circuit still serves from the static tables.
	s, err := p.Snapshot(ctx, "MAIZE", "Karnataka")
	if err != nil {
		t.Fatalf("open circuit should fall back: %v", err)
	}
	if s.CurrentPrice != 2100 {
		t.Errorf("price = %v, want static 2100", s.CurrentPrice)
	}
}

func TestRemoteProviderSnapshots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		crop := r.URL.Query().Get("crop")
		_, _ = w.Write([]byte(`{"success":true,"data":{"crop_code":"` + crop + `","current_price":3000}}`))
	}))
	defer server.Close()

	p := NewRemoteProvider(remoteConfig(server.URL), NewStaticProvider())

	snapshots, err := p.Snapshots(context.Background(), []string{"RICE", "WHEAT"}, "Punjab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snapshots))
	}
	for code, s := range snapshots {
		if s.CropCode != code || s.CurrentPrice != 3000 {
			t.Errorf("%s snapshot = %+v", code, s)
		}
	}
}
