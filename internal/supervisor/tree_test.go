// KisanSahayak - Agronomic Recommendation Engine for Indian Farmers
// Copyright 2026 Puja S. (puja809)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/puja809/kisan-sahayak-ai-sub000

package supervisor

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/puja809/kisan-sahayak-ai-sub000/internal/logging"
)

func testLogger() *slog.Logger {
	return slog.New(logging.NewSlogHandler())
}

func TestDefaultTreeConfig(t *testing.T) {
	cfg := DefaultTreeConfig()
	if cfg.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %v, want 5.0", cfg.FailureThreshold)
	}
	if cfg.FailureDecay != 30.0 {
		t.Errorf("FailureDecay = %v, want 30.0", cfg.FailureDecay)
	}
	if cfg.FailureBackoff != 15*time.Second {
		t.Errorf("FailureBackoff = %v, want 15s", cfg.FailureBackoff)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestNewTreeAppliesDefaults(t *testing.T) {
	tree, err := NewTree(testLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if tree.config.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %v, want default 5.0", tree.config.FailureThreshold)
	}
	if tree.config.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 10s", tree.config.ShutdownTimeout)
	}
	if tree.Root() == nil {
		t.Fatal("Root() returned nil")
	}
}

func TestTreeRunsServices(t *testing.T) {
	tree, err := NewTree(testLogger(), DefaultTreeConfig())
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	apiSvc := NewMockService("api-service")
	dataSvc := NewMockService("data-service")
	tree.AddAPIService(apiSvc)
	tree.AddDataService(dataSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for apiSvc.StartCount() == 0 || dataSvc.StartCount() == 0 {
		select {
		case <-deadline:
			t.Fatalf("services did not start: api=%d data=%d",
				apiSvc.StartCount(), dataSvc.StartCount())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}

	if apiSvc.StopCount() == 0 {
		t.Error("api service never stopped")
	}
	if dataSvc.StopCount() == 0 {
		t.Error("data service never stopped")
	}
}

func TestTreeRestartsFailingService(t *testing.T) {
	cfg := DefaultTreeConfig()
	cfg.FailureBackoff = 10 * time.Millisecond

	tree, err := NewTree(testLogger(), cfg)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	svc := NewMockService("flaky")
	svc.SetFailCount(2)
	tree.AddDataService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(3 * time.Second)
	for svc.StartCount() < 3 {
		select {
		case <-deadline:
			t.Fatalf("service restarted %d times, want >= 3", svc.StartCount())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
}

func TestTreeRemoveAPIService(t *testing.T) {
	tree, err := NewTree(testLogger(), DefaultTreeConfig())
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	svc := NewMockService("removable")
	token := tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for svc.StartCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("service did not start")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := tree.RemoveAPIService(token); err != nil {
		t.Fatalf("RemoveAPIService: %v", err)
	}
	deadline = time.After(2 * time.Second)
	for svc.StopCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("removed service never stopped")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	<-errCh
}
